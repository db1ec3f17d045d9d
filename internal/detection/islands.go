package detection

// IslandResult is the outcome of background cleanup on a single disc.
type IslandResult struct {
	// Mask marks the pixels to keep: 1 = part of the kept island's
	// original footprint, 0 = clear to background. Same dimensions as
	// the input mask.
	Mask *Mask

	// Island is the kept region as found in the input mask, before the
	// opening pass. Its bounding box is the disc's true extent.
	Island Component

	// CentroidX and CentroidY are the mean coordinates of the kept
	// island's foreground pixels. Callers use this as the rotation
	// alignment reference point.
	CentroidX float64
	CentroidY float64
}

// CleanIslands removes disconnected fragments from a disc foreground
// mask, keeping only the largest connected island.
//
// The opening pass (erode then dilate by radius) exists purely to decide
// which island survives: it severs one-pixel bridges and wipes out
// speckles thinner than the structuring element, so the survivor chosen
// on the opened mask is the disc body rather than a speck that happens
// to touch it. The returned mask is then built from the survivor's
// footprint in the *input* mask, so the disc's true edge is never
// trimmed by the morphology.
//
// Selection ties break like SelectLargest: largest area, then smallest
// MinY, then smallest MinX.
//
// Returns a NoComponentsFoundError when the opening erases everything or
// the surviving island's footprint is smaller than minKeptArea. Callers
// must not apply an all-background mask; the error is the signal to
// retry with different parameters.
//
// Running CleanIslands on its own output (a single clean island that
// survives the opening) returns that mask unchanged.
func CleanIslands(m *Mask, radius, minKeptArea int) (*IslandResult, error) {
	labels, comps := labelComponents(m)
	if len(comps) == 0 {
		return nil, &NoComponentsFoundError{Stage: "island cleanup", MinArea: minKeptArea}
	}

	opened := Open(m, radius)
	openedLabels, openedComps := labelComponents(opened)
	ki := selectLargestIndex(openedComps)
	if ki < 0 {
		// The opening erased every island; the fragments were all
		// thinner than the structuring element.
		return nil, &NoComponentsFoundError{Stage: "island cleanup", MinArea: minKeptArea}
	}

	// Opening is anti-extensive, so every opened pixel is also set in
	// the input mask and maps to exactly one original label.
	origLabel := int32(0)
	for i, l := range openedLabels {
		if l == int32(ki+1) {
			origLabel = labels[i]
			break
		}
	}

	island := comps[origLabel-1]
	if island.Area < minKeptArea {
		return nil, &NoComponentsFoundError{Stage: "island cleanup", MinArea: minKeptArea}
	}

	keep := NewMask(m.Width, m.Height)
	sumX, sumY := 0, 0
	for i, l := range labels {
		if l != origLabel {
			continue
		}
		keep.Pix[i] = 1
		sumX += i % m.Width
		sumY += i / m.Width
	}

	return &IslandResult{
		Mask:      keep,
		Island:    island,
		CentroidX: float64(sumX) / float64(island.Area),
		CentroidY: float64(sumY) / float64(island.Area),
	}, nil
}

// selectLargestIndex returns the index of the component SelectLargest
// would pick, or -1 for an empty slice.
func selectLargestIndex(comps []Component) int {
	best := -1
	for i, c := range comps {
		if best < 0 {
			best = i
			continue
		}
		b := comps[best]
		switch {
		case c.Area > b.Area:
			best = i
		case c.Area == b.Area && c.MinY < b.MinY:
			best = i
		case c.Area == b.Area && c.MinY == b.MinY && c.MinX < b.MinX:
			best = i
		}
	}
	return best
}
