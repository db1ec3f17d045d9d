package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestOverlayRects_DrawsBorder(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 30, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
		}
	}

	out := OverlayRects(img, []CropRect{{X: 5, Y: 5, Width: 10, Height: 10}})

	// The top-left of the rectangle outline is recolored.
	if got := out.NRGBAAt(5, 5); got.R == 10 && got.G == 10 && got.B == 10 {
		t.Errorf("outline corner not drawn: %+v", got)
	}
	// Pixels well inside the rectangle keep the original color.
	if got := out.NRGBAAt(10, 10); got.R != 10 || got.G != 10 || got.B != 10 {
		t.Errorf("interior recolored: %+v", got)
	}
	// The source image is untouched.
	if got := img.NRGBAAt(5, 5); got.R != 10 {
		t.Errorf("input was modified: %+v", got)
	}
}

func TestOverlayRects_DistinctColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	rects := []CropRect{
		{X: 1, Y: 1, Width: 10, Height: 10},
		{X: 20, Y: 20, Width: 10, Height: 10},
	}
	out := OverlayRects(img, rects)

	a := out.NRGBAAt(1, 1)
	b := out.NRGBAAt(20, 20)
	if a == b {
		t.Errorf("adjacent regions share a color: %+v", a)
	}
}

func TestOverlayRects_OutOfRangeRect(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	// Must clip, not panic.
	OverlayRects(img, []CropRect{{X: 8, Y: 8, Width: 50, Height: 50}})
}
