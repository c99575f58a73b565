package domain

import "fmt"

// Frame is an immutable pixel buffer: row-major rows of interleaved
// channels, one byte per channel, so len(Data()) == Width*Height*Channels.
//
// Frames are shared by reference, never copied. The same *Frame may be
// aliased by stored node outputs, tick snapshots, and in-flight computes
// at once, so nothing may write into its bytes after construction; a
// transform that changes pixel content must allocate a new Frame
// (copy-on-write). Enforcement is by contract: Frame exposes no mutating
// method, and Data returns the backing slice for reading only.
type Frame struct {
	width    int
	height   int
	channels int
	data     []byte
}

// NewFrame constructs a frame from raw bytes. It takes ownership of data;
// the caller must not retain or modify the slice afterwards.
func NewFrame(width, height, channels int, data []byte) (*Frame, error) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%dx%d", ErrInvalidFrame, width, height, channels)
	}
	if want := width * height * channels; len(data) != want {
		return nil, fmt.Errorf("%w: %d bytes for %dx%dx%d, want %d",
			ErrInvalidFrame, len(data), width, height, channels, want)
	}
	return &Frame{width: width, height: height, channels: channels, data: data}, nil
}

// NewUniformFrame constructs a frame with every byte set to value.
func NewUniformFrame(width, height, channels int, value byte) (*Frame, error) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%dx%d", ErrInvalidFrame, width, height, channels)
	}
	data := make([]byte, width*height*channels)
	if value != 0 {
		for i := range data {
			data[i] = value
		}
	}
	return &Frame{width: width, height: height, channels: channels, data: data}, nil
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.height }

// Channels returns the number of interleaved channels per pixel.
func (f *Frame) Channels() int { return f.channels }

// Size returns the total byte length of the pixel data.
func (f *Frame) Size() int { return len(f.data) }

// Data returns the backing pixel slice. Callers must treat it as
// read-only: the slice is shared with every Signal referencing this frame.
func (f *Frame) Data() []byte { return f.data }

// At returns the byte at pixel (x, y), channel c. Out-of-range
// coordinates read as zero.
func (f *Frame) At(x, y, c int) byte {
	if x < 0 || x >= f.width || y < 0 || y >= f.height || c < 0 || c >= f.channels {
		return 0
	}
	return f.data[(y*f.width+x)*f.channels+c]
}

// Clone returns a deep copy with its own byte allocation. It is the
// starting point for transforms that need to derive new pixel content.
func (f *Frame) Clone() *Frame {
	data := make([]byte, len(f.data))
	copy(data, f.data)
	return &Frame{width: f.width, height: f.height, channels: f.channels, data: data}
}

// String describes the frame geometry for logs and diagnostics.
func (f *Frame) String() string {
	return fmt.Sprintf("frame %dx%dx%d (%d bytes)", f.width, f.height, f.channels, len(f.data))
}
