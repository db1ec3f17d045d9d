package imaging

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestChartFilename(t *testing.T) {
	date := time.Date(2024, 3, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		index int
		ext   string
		want  string
	}{
		{1, "png", "chart_2024-03-17_01.png"},
		{12, ".jpg", "chart_2024-03-17_12.jpg"},
		{3, "webp", "chart_2024-03-17_03.webp"},
	}
	for _, tt := range tests {
		if got := ChartFilename(date, tt.index, tt.ext); got != tt.want {
			t.Errorf("ChartFilename(%d, %q): got %q, want %q", tt.index, tt.ext, got, tt.want)
		}
	}
}

func TestSave_RoundTripPNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(2, 2, color.NRGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := Save(img, path, 90); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cache := NewImageCache()
	loaded, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Bounds().Dx() != 4 || loaded.Bounds().Dy() != 4 {
		t.Errorf("dimensions: got %dx%d, want 4x4", loaded.Bounds().Dx(), loaded.Bounds().Dy())
	}
	r, _, _, a := loaded.At(2, 2).RGBA()
	if r == 0 || a == 0 {
		t.Errorf("pixel (2,2) lost: r=%d a=%d", r, a)
	}
}

func TestSave_JPEG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := Save(img, path, 0); err != nil {
		t.Fatalf("Save with out-of-range quality must fall back to the default: %v", err)
	}
	if stat, err := os.Stat(path); err != nil || stat.Size() == 0 {
		t.Errorf("output file missing or empty: %v", err)
	}
}

func TestSave_UnsupportedExtension(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	path := filepath.Join(t.TempDir(), "out.xyz")
	if err := Save(img, path, 90); err == nil {
		t.Error("unsupported extension must error")
	}
}
