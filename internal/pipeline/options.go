package pipeline

import "fmt"

// Options carries every parameter that affects segmentation output.
// There is no ambient configuration; a zero value is not usable, start
// from DefaultOptions.
type Options struct {
	// SplitPaddingPx is the margin, in full-resolution pixels, added
	// around each detected disc when building crop rectangles.
	SplitPaddingPx int `json:"split_padding_px"`

	// ThresholdBias shifts the automatic Otsu threshold. Zero means
	// fully automatic. Positive values classify more pixels as
	// foreground (useful for faint discs), negative values fewer.
	ThresholdBias int `json:"threshold_bias"`

	// EdgeTrimLeft/Right/Top/Bottom discard pixels from the scan's
	// outer edge before analysis, removing scanner-bed shadows and
	// roller marks. Trims apply to analysis only; reported crop
	// rectangles are in untrimmed coordinates.
	EdgeTrimLeft   int `json:"edge_trim_left"`
	EdgeTrimRight  int `json:"edge_trim_right"`
	EdgeTrimTop    int `json:"edge_trim_top"`
	EdgeTrimBottom int `json:"edge_trim_bottom"`

	// MinComponentAreaFraction is the noise floor for split mode as a
	// fraction of the analysis area. Components smaller than this are
	// scan specks, not discs.
	MinComponentAreaFraction float64 `json:"min_component_area_fraction"`

	// EllipsePaddingPx is the inset of the inscribed ellipse used by
	// the ellipse cleanup mode.
	EllipsePaddingPx int `json:"ellipse_padding_px"`

	// FragmentRemovalRadiusPx is the structuring radius of the opening
	// pass in island cleanup. Zero disables the opening (every island
	// competes as-is).
	FragmentRemovalRadiusPx int `json:"fragment_removal_radius_px"`

	// MinKeptAreaPx is the sanity floor for the kept island, in
	// full-resolution pixels. A survivor below it means the threshold
	// ate the disc and cleanup fails rather than returning an
	// all-background mask.
	MinKeptAreaPx int `json:"min_kept_area_px"`

	// DespeckleRadius is the median-filter radius applied to the
	// analysis image before thresholding. Zero disables despeckling.
	DespeckleRadius int `json:"despeckle_radius"`

	// StrictPadding makes oversized padding an error instead of
	// silently clamping the crop rectangle.
	StrictPadding bool `json:"strict_padding"`
}

// DefaultOptions returns the documented defaults. They were tuned on
// representative 300-600 dpi flatbed scans; callers working with other
// material should expect to adjust the padding and radius values.
func DefaultOptions() Options {
	return Options{
		SplitPaddingPx:           20,
		ThresholdBias:            0,
		MinComponentAreaFraction: 0.001,
		EllipsePaddingPx:         20,
		FragmentRemovalRadiusPx:  10,
		MinKeptAreaPx:            64,
		DespeckleRadius:          2,
	}
}

// Validate reports the first invalid parameter, if any.
func (o Options) Validate() error {
	if o.SplitPaddingPx < 0 {
		return fmt.Errorf("split_padding_px must be >= 0, got %d", o.SplitPaddingPx)
	}
	if o.EllipsePaddingPx < 0 {
		return fmt.Errorf("ellipse_padding_px must be >= 0, got %d", o.EllipsePaddingPx)
	}
	if o.EdgeTrimLeft < 0 || o.EdgeTrimRight < 0 || o.EdgeTrimTop < 0 || o.EdgeTrimBottom < 0 {
		return fmt.Errorf("edge trims must be >= 0")
	}
	if o.MinComponentAreaFraction <= 0 || o.MinComponentAreaFraction >= 1 {
		return fmt.Errorf("min_component_area_fraction must be in (0, 1), got %g", o.MinComponentAreaFraction)
	}
	if o.FragmentRemovalRadiusPx < 0 {
		return fmt.Errorf("fragment_removal_radius_px must be >= 0, got %d", o.FragmentRemovalRadiusPx)
	}
	if o.MinKeptAreaPx < 0 {
		return fmt.Errorf("min_kept_area_px must be >= 0, got %d", o.MinKeptAreaPx)
	}
	if o.DespeckleRadius < 0 {
		return fmt.Errorf("despeckle_radius must be >= 0, got %d", o.DespeckleRadius)
	}
	return nil
}

// SetEdgeTrim sets all four edge trims to the same value.
func (o *Options) SetEdgeTrim(px int) {
	o.EdgeTrimLeft = px
	o.EdgeTrimRight = px
	o.EdgeTrimTop = px
	o.EdgeTrimBottom = px
}
