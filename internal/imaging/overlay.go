package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// overlayBorder is the outline thickness of overlay rectangles in pixels.
const overlayBorder = 3

// OverlayRects draws the detected crop rectangles onto a copy of the
// scan for visual verification of a split. Each rectangle gets its own
// hue, stepped around the color wheel by the golden angle so neighboring
// discs never share similar colors.
func OverlayRects(img image.Image, rects []CropRect) *image.NRGBA {
	out := imaging.Clone(img)
	for i, r := range rects {
		drawRectOutline(out, r.Rect(), overlayColor(i))
	}
	return out
}

// overlayColor returns the outline color for the i-th region.
func overlayColor(i int) color.NRGBA {
	c := colorful.Hsv(float64((i*137)%360), 0.85, 0.95)
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func drawRectOutline(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for t := 0; t < overlayBorder; t++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			setPixel(img, x, r.Min.Y+t, c)
			setPixel(img, x, r.Max.Y-1-t, c)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			setPixel(img, r.Min.X+t, y, c)
			setPixel(img, r.Max.X-1-t, y, c)
		}
	}
}

func setPixel(img *image.NRGBA, x, y int, c color.NRGBA) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return
	}
	i := (y-img.Rect.Min.Y)*img.Stride + (x-img.Rect.Min.X)*4
	img.Pix[i] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}
