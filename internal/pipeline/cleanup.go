package pipeline

import (
	"fmt"

	"github.com/ironsheep/chart-tools/internal/detection"
	"github.com/ironsheep/chart-tools/internal/imaging"
)

// CleanupResult is the outcome of background cleanup on a single cropped
// disc.
type CleanupResult struct {
	// Mask marks the pixels to keep (1) or clear to transparency (0),
	// at the full resolution of the input.
	Mask *detection.Mask `json:"-"`

	// Island is the kept region's footprint in the input mask.
	Island detection.Component `json:"island"`

	// CentroidX and CentroidY locate the kept island's centroid, the
	// reference point for rotation alignment.
	CentroidX float64 `json:"centroid_x"`
	CentroidY float64 `json:"centroid_y"`

	// GuideX and GuideY are the image midpoint, where the host places
	// its center guides.
	GuideX int `json:"guide_x"`
	GuideY int `json:"guide_y"`

	// Threshold is the binarization threshold that was applied,
	// after bias.
	Threshold int `json:"threshold"`
}

// Cleanup strips the background from a single cropped disc image,
// keeping only the largest connected island of disc content.
//
// The whole stage runs at the input's full resolution; a disc crop is
// already small enough that downscaling would only blur the edge the
// mask is meant to preserve.
func Cleanup(src imaging.PixelBuffer, opts Options) (*CleanupResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("cleanup: %w", err)
	}

	buf, err := imaging.Materialize(src)
	if err != nil {
		return nil, fmt.Errorf("cleanup: input stage: %w", err)
	}
	buf = despeckle(buf, opts.DespeckleRadius)

	threshold := detection.OtsuThreshold(detection.HistogramOf(buf.Pix), opts.ThresholdBias)
	mask := detection.Binarize(buf.Pix, buf.W, buf.H, uint8(threshold))

	islands, err := detection.CleanIslands(mask, opts.FragmentRemovalRadiusPx, opts.MinKeptAreaPx)
	if err != nil {
		return nil, fmt.Errorf("cleanup: island stage (radius=%d, min_area=%d): %w",
			opts.FragmentRemovalRadiusPx, opts.MinKeptAreaPx, err)
	}

	return &CleanupResult{
		Mask:      islands.Mask,
		Island:    islands.Island,
		CentroidX: islands.CentroidX,
		CentroidY: islands.CentroidY,
		GuideX:    buf.W / 2,
		GuideY:    buf.H / 2,
		Threshold: threshold,
	}, nil
}

// CleanupEllipse builds the simple shape-aware keep mask for a disc that
// is known to be approximately circular: everything outside the ellipse
// inscribed in the image bounds inset by EllipsePaddingPx is cleared.
// Oversized padding clamps to a one-pixel radius rather than producing
// an empty mask, unless StrictPadding is set, in which case it is an
// error like in Split.
func CleanupEllipse(width, height int, opts Options) (*detection.Mask, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("cleanup: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("cleanup: input stage: %w", &imaging.InvalidBufferError{Width: width, Height: height})
	}
	if opts.StrictPadding {
		if err := imaging.ValidatePadding(opts.EllipsePaddingPx, width, height); err != nil {
			return nil, fmt.Errorf("cleanup: %w", err)
		}
	}
	return detection.InscribedEllipseMask(width, height, opts.EllipsePaddingPx), nil
}
