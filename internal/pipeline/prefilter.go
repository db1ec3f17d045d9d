package pipeline

import (
	"github.com/anthonynsimon/bild/effect"

	"github.com/ironsheep/chart-tools/internal/imaging"
)

// despeckle runs a median filter over a luminance buffer to knock out
// the isolated dark specks flatbed scanners leave on the bed glass.
// Radius <= 0 returns the buffer untouched.
func despeckle(buf *imaging.GrayBuffer, radius int) *imaging.GrayBuffer {
	if radius <= 0 {
		return buf
	}

	med := effect.Median(buf.ToGray(), float64(radius))
	out := &imaging.GrayBuffer{
		Pix: make([]uint8, buf.W*buf.H),
		W:   buf.W,
		H:   buf.H,
	}
	for i := range out.Pix {
		out.Pix[i] = med.Pix[i*4]
	}
	return out
}
