package nodes

import "github.com/connormcn37/pipe-graph/pkg/domain"

// ChannelClear zeroes one channel of the frame on input 0, producing a
// new frame. A channel index outside the source's range yields Void.
type ChannelClear struct {
	channel int
}

// NewChannelClear creates a channel-zeroing stage.
func NewChannelClear(channel int) *ChannelClear {
	return &ChannelClear{channel: channel}
}

// Process returns the frame with the selected channel zeroed.
func (cc *ChannelClear) Process(in []domain.Signal) domain.Signal {
	if len(in) == 0 {
		return domain.Void()
	}
	src, ok := in[0].Frame()
	if !ok {
		return domain.Void()
	}
	ch := src.Channels()
	if cc.channel < 0 || cc.channel >= ch {
		return domain.Void()
	}

	data := make([]byte, src.Size())
	copy(data, src.Data())
	for i := cc.channel; i < len(data); i += ch {
		data[i] = 0
	}

	frame, err := domain.NewFrame(src.Width(), src.Height(), ch, data)
	if err != nil {
		return domain.Void()
	}
	return domain.Image(frame)
}

// ChannelSplit extracts one channel of the frame on input 0 into a
// single-channel frame of the same dimensions.
type ChannelSplit struct {
	channel int
}

// NewChannelSplit creates a channel-extraction stage.
func NewChannelSplit(channel int) *ChannelSplit {
	return &ChannelSplit{channel: channel}
}

// Process returns the extracted channel as a 1-channel frame.
func (cs *ChannelSplit) Process(in []domain.Signal) domain.Signal {
	if len(in) == 0 {
		return domain.Void()
	}
	src, ok := in[0].Frame()
	if !ok {
		return domain.Void()
	}
	ch := src.Channels()
	if cs.channel < 0 || cs.channel >= ch {
		return domain.Void()
	}

	pixels := src.Width() * src.Height()
	data := make([]byte, pixels)
	srcData := src.Data()
	for p := 0; p < pixels; p++ {
		data[p] = srcData[p*ch+cs.channel]
	}

	frame, err := domain.NewFrame(src.Width(), src.Height(), 1, data)
	if err != nil {
		return domain.Void()
	}
	return domain.Image(frame)
}

// ChannelMerge interleaves N single-channel frames of equal dimensions
// into one N-channel frame, input order deciding channel order. Any Void
// input, channel count other than one, or dimension mismatch yields Void.
type ChannelMerge struct{}

// NewChannelMerge creates a channel-interleaving stage.
func NewChannelMerge() ChannelMerge {
	return ChannelMerge{}
}

// Process returns the merged frame.
func (ChannelMerge) Process(in []domain.Signal) domain.Signal {
	if len(in) == 0 {
		return domain.Void()
	}
	planes := make([]*domain.Frame, len(in))
	for i, sig := range in {
		f, ok := sig.Frame()
		if !ok || f.Channels() != 1 {
			return domain.Void()
		}
		if i > 0 && (f.Width() != planes[0].Width() || f.Height() != planes[0].Height()) {
			return domain.Void()
		}
		planes[i] = f
	}

	w, h, n := planes[0].Width(), planes[0].Height(), len(planes)
	data := make([]byte, w*h*n)
	for p := 0; p < w*h; p++ {
		for c, plane := range planes {
			data[p*n+c] = plane.Data()[p]
		}
	}

	frame, err := domain.NewFrame(w, h, n, data)
	if err != nil {
		return domain.Void()
	}
	return domain.Image(frame)
}
