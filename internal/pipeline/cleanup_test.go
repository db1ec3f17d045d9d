package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/ironsheep/chart-tools/internal/detection"
	"github.com/ironsheep/chart-tools/internal/imaging"
)

// fillDisc paints a filled circle of the given radius.
func fillDisc(buf *imaging.GrayBuffer, cx, cy, r int, v uint8) {
	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				buf.Pix[y*buf.W+x] = v
			}
		}
	}
}

func cleanupOptions() Options {
	opts := DefaultOptions()
	opts.FragmentRemovalRadiusPx = 2
	opts.MinKeptAreaPx = 10
	opts.DespeckleRadius = 0
	return opts
}

func TestCleanup_KeepsDiscDropsSpeck(t *testing.T) {
	buf := scanBuffer(t, 60, 60, 220)
	fillDisc(buf, 30, 30, 20, 40)
	fillRect(buf, 5, 5, 6, 6, 40) // detached speck

	res, err := Cleanup(buf, cleanupOptions())
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	if res.Threshold != 41 {
		t.Errorf("threshold: got %d, want 41", res.Threshold)
	}

	if !res.Mask.At(30, 30) {
		t.Error("disc center must be kept")
	}
	if !res.Mask.At(30, 11) {
		t.Error("disc interior near the rim must be kept")
	}
	if res.Mask.At(5, 5) {
		t.Error("detached speck must be cleared")
	}
	if res.Mask.At(0, 0) {
		t.Error("background must be cleared")
	}

	// A filled circle's footprint is symmetric, so the centroid is the
	// circle center.
	if math.Abs(res.CentroidX-30) > 0.01 || math.Abs(res.CentroidY-30) > 0.01 {
		t.Errorf("centroid: got (%v,%v), want (30,30)", res.CentroidX, res.CentroidY)
	}

	if res.Island.Area < 1200 || res.Island.Area > 1320 {
		t.Errorf("island area: got %d, want about pi*20^2", res.Island.Area)
	}

	if res.GuideX != 30 || res.GuideY != 30 {
		t.Errorf("guides: got (%d,%d), want (30,30)", res.GuideX, res.GuideY)
	}
}

func TestCleanup_UniformInputFails(t *testing.T) {
	buf := scanBuffer(t, 40, 40, 220)

	_, err := Cleanup(buf, cleanupOptions())
	var ncErr *detection.NoComponentsFoundError
	if !errors.As(err, &ncErr) {
		t.Errorf("uniform input: got %v, want *NoComponentsFoundError", err)
	}
}

func TestCleanup_MinKeptAreaFails(t *testing.T) {
	buf := scanBuffer(t, 40, 40, 220)
	fillDisc(buf, 20, 20, 5, 40) // about 81 pixels

	opts := cleanupOptions()
	opts.MinKeptAreaPx = 500

	_, err := Cleanup(buf, opts)
	var ncErr *detection.NoComponentsFoundError
	if !errors.As(err, &ncErr) {
		t.Errorf("undersized island: got %v, want *NoComponentsFoundError", err)
	}
}

func TestCleanupEllipse(t *testing.T) {
	opts := DefaultOptions()
	opts.EllipsePaddingPx = 5

	m, err := CleanupEllipse(41, 41, opts)
	if err != nil {
		t.Fatalf("CleanupEllipse: %v", err)
	}
	if !m.At(20, 20) {
		t.Error("center must be kept")
	}
	if m.At(0, 0) {
		t.Error("corner must be cleared")
	}
	if m.CountForeground() == 0 {
		t.Error("mask must never be all background")
	}
}

func TestCleanupEllipse_StrictPadding(t *testing.T) {
	opts := DefaultOptions()
	opts.EllipsePaddingPx = 25

	// Default policy clamps to a one-pixel radius.
	m, err := CleanupEllipse(40, 40, opts)
	if err != nil {
		t.Fatalf("clamping policy must not fail: %v", err)
	}
	if m.CountForeground() == 0 {
		t.Error("clamped mask must not be all background")
	}

	opts.StrictPadding = true
	_, err = CleanupEllipse(40, 40, opts)
	var padErr *imaging.PaddingExceedsImageError
	if !errors.As(err, &padErr) {
		t.Fatalf("strict policy: got %v, want *PaddingExceedsImageError", err)
	}
	if padErr.Padding != 25 {
		t.Errorf("Padding: got %d, want 25", padErr.Padding)
	}
}

func TestCleanupEllipse_InvalidDimensions(t *testing.T) {
	_, err := CleanupEllipse(0, 40, DefaultOptions())
	if err == nil {
		t.Error("zero width must error")
	}
	if _, err := CleanupEllipse(40, -1, DefaultOptions()); err == nil {
		t.Error("negative height must error")
	}
}
