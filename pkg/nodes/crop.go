package nodes

import "github.com/connormcn37/pipe-graph/pkg/domain"

// Crop copies a rectangle of the frame on input 0 into a new frame. The
// rectangle is clamped to the source bounds; an empty intersection, like
// any non-image input, yields Void.
type Crop struct {
	x      int
	y      int
	width  int
	height int
}

// NewCrop creates a crop stage for the given rectangle.
func NewCrop(x, y, width, height int) *Crop {
	return &Crop{x: x, y: y, width: width, height: height}
}

// Process returns the cropped frame.
func (c *Crop) Process(in []domain.Signal) domain.Signal {
	if len(in) == 0 {
		return domain.Void()
	}
	src, ok := in[0].Frame()
	if !ok {
		return domain.Void()
	}

	x0, y0 := c.x, c.y
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	x1, y1 := c.x+c.width, c.y+c.height
	if x1 > src.Width() {
		x1 = src.Width()
	}
	if y1 > src.Height() {
		y1 = src.Height()
	}
	if x0 >= x1 || y0 >= y1 {
		return domain.Void()
	}

	w, h, ch := x1-x0, y1-y0, src.Channels()
	data := make([]byte, w*h*ch)
	rowLen := w * ch
	for row := 0; row < h; row++ {
		srcOff := ((y0+row)*src.Width() + x0) * ch
		copy(data[row*rowLen:(row+1)*rowLen], src.Data()[srcOff:srcOff+rowLen])
	}

	frame, err := domain.NewFrame(w, h, ch, data)
	if err != nil {
		return domain.Void()
	}
	return domain.Image(frame)
}
