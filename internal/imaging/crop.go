package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/chart-tools/internal/detection"
)

// CropRect is a crop rectangle in full-resolution image coordinates.
// It is always fully contained within the bounds it was clamped against:
// X and Y are non-negative and width/height are at least one pixel.
type CropRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect returns the rectangle in image.Rectangle form.
func (r CropRect) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func (r CropRect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// PaddingExceedsImageError reports a padding value so large that the
// padded region collapses to the clamp floor. ComponentCrop itself never
// returns it: the documented policy is to clamp, because padding is a
// user-tunable convenience and must never crash the pipeline. Strict
// callers surface it through ValidatePadding instead of silently
// clamping.
type PaddingExceedsImageError struct {
	Padding int
	Width   int
	Height  int
}

func (e *PaddingExceedsImageError) Error() string {
	return fmt.Sprintf("padding %dpx exceeds image bounds %dx%d", e.Padding, e.Width, e.Height)
}

// ValidatePadding returns a PaddingExceedsImageError when the padding
// consumes half or more of either image dimension. Callers that prefer a
// hard failure over clamping run this before ComponentCrop.
func ValidatePadding(padding, imgWidth, imgHeight int) error {
	if padding*2 >= imgWidth || padding*2 >= imgHeight {
		return &PaddingExceedsImageError{Padding: padding, Width: imgWidth, Height: imgHeight}
	}
	return nil
}

// ComponentCrop converts a detected component into a padded crop
// rectangle in full-resolution coordinates.
//
// The component's analysis-space bounds are divided by scale and rounded
// to the nearest integer, expanded by padding on all four sides, then
// clamped to [0, imgWidth) x [0, imgHeight). If clamping would leave a
// non-positive width or height (pathological padding or a component
// rounded past the edge), both dimensions floor at one pixel.
func ComponentCrop(c detection.Component, scale float64, padding, imgWidth, imgHeight int) CropRect {
	return PadClamp(ComponentRect(c, scale), padding, imgWidth, imgHeight)
}

// ComponentRect maps a component's analysis-space bounding box to a
// full-resolution rectangle (exclusive max, image.Rectangle convention)
// by dividing by scale and rounding to the nearest integer. No clamping
// is applied; callers that trimmed the analysis region offset the result
// before clamping with PadClamp.
func ComponentRect(c detection.Component, scale float64) image.Rectangle {
	if scale <= 0 {
		scale = 1
	}
	return image.Rect(
		roundDiv(c.MinX, scale),
		roundDiv(c.MinY, scale),
		roundDiv(c.MaxX, scale)+1,
		roundDiv(c.MaxY, scale)+1,
	)
}

// PadClamp expands a full-resolution rectangle by padding on all four
// sides and clamps it to [0, imgWidth) x [0, imgHeight). A rectangle
// that clamping would leave empty floors at one pixel instead of
// failing.
func PadClamp(r image.Rectangle, padding, imgWidth, imgHeight int) CropRect {
	if padding < 0 {
		padding = 0
	}

	x0 := r.Min.X - padding
	y0 := r.Min.Y - padding
	x1 := r.Max.X - 1 + padding
	y1 := r.Max.Y - 1 + padding

	if x0 < 0 {
		x0 = 0
	}
	if x0 > imgWidth-1 {
		x0 = imgWidth - 1
	}
	if y0 < 0 {
		y0 = 0
	}
	if y0 > imgHeight-1 {
		y0 = imgHeight - 1
	}
	if x1 > imgWidth-1 {
		x1 = imgWidth - 1
	}
	if y1 > imgHeight-1 {
		y1 = imgHeight - 1
	}
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	return CropRect{X: x0, Y: y0, Width: x1 - x0 + 1, Height: y1 - y0 + 1}
}

// roundDiv maps an analysis coordinate back to full resolution.
func roundDiv(v int, scale float64) int {
	return int(float64(v)/scale + 0.5)
}
