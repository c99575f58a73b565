package ansi

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/connormcn37/pipe-graph/pkg/domain"
)

// RenderFrame produces a terminal preview of a frame using the detected
// color profile of the running terminal.
func RenderFrame(frame *domain.Frame) string {
	return Render(frame, termenv.ColorProfile())
}

// Render draws a frame with half-block characters, packing two pixel
// rows into each text line: the upper pixel colors the foreground of a
// "▀" rune, the lower pixel its background. Single-channel frames render
// as grayscale; frames with three or more channels use the first three
// as RGB. Colors degrade with the given profile.
func Render(frame *domain.Frame, profile termenv.Profile) string {
	if frame == nil {
		return ""
	}

	var sb strings.Builder
	for y := 0; y < frame.Height(); y += 2 {
		for x := 0; x < frame.Width(); x++ {
			block := termenv.String("▀").Foreground(profile.Color(pixelHex(frame, x, y)))
			if y+1 < frame.Height() {
				block = block.Background(profile.Color(pixelHex(frame, x, y+1)))
			}
			sb.WriteString(block.String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// pixelHex returns the hex color of one pixel.
func pixelHex(frame *domain.Frame, x, y int) string {
	var r, g, b byte
	if frame.Channels() >= 3 {
		r = frame.At(x, y, 0)
		g = frame.At(x, y, 1)
		b = frame.At(x, y, 2)
	} else {
		v := frame.At(x, y, 0)
		r, g, b = v, v, v
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
