package pipeline

import (
	"fmt"
	"image"

	"github.com/ironsheep/chart-tools/internal/detection"
	"github.com/ironsheep/chart-tools/internal/imaging"
)

// SplitResult is the outcome of locating discs in a scan.
type SplitResult struct {
	// Rects are the padded crop rectangles in full-resolution scan
	// coordinates, ordered top-to-bottom then left-to-right.
	Rects []imaging.CropRect `json:"rects"`

	// Threshold is the binarization threshold that was applied,
	// after bias.
	Threshold int `json:"threshold"`

	// Scale is the analysis scale the discs were detected at.
	Scale float64 `json:"scale"`
}

// Split locates every disc in a scan and returns one crop rectangle per
// disc.
//
// Stages: edge trim -> downscale -> despeckle -> histogram -> Otsu
// threshold -> binarize -> label -> filter -> padded clamped crops.
// Any stage failure aborts this scan only and is returned with the
// stage named, so the caller can retry with adjusted parameters.
func Split(src imaging.PixelBuffer, opts Options) (*SplitResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("split: %w", err)
	}

	full, err := imaging.Materialize(src)
	if err != nil {
		return nil, fmt.Errorf("split: input stage: %w", err)
	}

	trimmed, err := full.Sub(image.Rect(
		opts.EdgeTrimLeft,
		opts.EdgeTrimTop,
		full.W-opts.EdgeTrimRight,
		full.H-opts.EdgeTrimBottom,
	))
	if err != nil {
		return nil, fmt.Errorf("split: edge trim stage: %w", err)
	}

	if opts.StrictPadding {
		if err := imaging.ValidatePadding(opts.SplitPaddingPx, full.W, full.H); err != nil {
			return nil, fmt.Errorf("split: %w", err)
		}
	}

	scale := imaging.AnalysisScale(trimmed.W, trimmed.H)
	analysis := despeckle(imaging.Downscale(trimmed, scale), opts.DespeckleRadius)

	threshold := detection.OtsuThreshold(detection.HistogramOf(analysis.Pix), opts.ThresholdBias)
	mask := detection.Binarize(analysis.Pix, analysis.W, analysis.H, uint8(threshold))

	comps := detection.FindComponents(mask)
	minArea := int(opts.MinComponentAreaFraction * float64(analysis.W*analysis.H))
	if minArea < 1 {
		minArea = 1
	}
	kept, err := detection.SplitFilter(comps, minArea)
	if err != nil {
		return nil, fmt.Errorf("split: region filter stage: %w", err)
	}

	offset := image.Pt(opts.EdgeTrimLeft, opts.EdgeTrimTop)
	rects := make([]imaging.CropRect, len(kept))
	for i, c := range kept {
		rects[i] = imaging.PadClamp(
			imaging.ComponentRect(c, scale).Add(offset),
			opts.SplitPaddingPx,
			full.W,
			full.H,
		)
	}

	return &SplitResult{Rects: rects, Threshold: threshold, Scale: scale}, nil
}
