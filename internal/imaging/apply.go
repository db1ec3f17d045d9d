package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/chart-tools/internal/detection"
)

// ApplyCrop extracts the crop rectangle from an image. The rectangle is
// expected to come from ComponentCrop and therefore to be in bounds; it
// is intersected with the image bounds anyway so a stale rectangle can
// never panic.
func ApplyCrop(img image.Image, r CropRect) *image.NRGBA {
	return imaging.Crop(img, r.Rect().Add(img.Bounds().Min))
}

// ApplyMask returns a copy of the image with every pixel outside the
// keep mask cleared to full transparency. The mask must match the image
// dimensions; pixels the mask cannot answer for (when it is smaller)
// are cleared as well.
//
// The input image is never modified.
func ApplyMask(img image.Image, m *detection.Mask) *image.NRGBA {
	out := imaging.Clone(img)
	w := out.Bounds().Dx()
	h := out.Bounds().Dy()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.At(x, y) {
				continue
			}
			i := y*out.Stride + x*4
			out.Pix[i] = 0
			out.Pix[i+1] = 0
			out.Pix[i+2] = 0
			out.Pix[i+3] = 0
		}
	}
	return out
}
