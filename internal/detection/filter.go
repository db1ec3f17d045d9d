package detection

import "sort"

// SplitFilter discards components below minArea (scan specks and dust)
// and returns the survivors sorted by (MinY, MinX) ascending: top to
// bottom, then left to right. That reading order is what downstream
// naming expects when several discs share one scan.
//
// Returns a NoComponentsFoundError if nothing survives the floor.
func SplitFilter(comps []Component, minArea int) ([]Component, error) {
	kept := make([]Component, 0, len(comps))
	for _, c := range comps {
		if c.Area >= minArea {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return nil, &NoComponentsFoundError{Stage: "split filter", MinArea: minArea}
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].MinY != kept[j].MinY {
			return kept[i].MinY < kept[j].MinY
		}
		return kept[i].MinX < kept[j].MinX
	})
	return kept, nil
}

// SelectLargest returns the component with the largest area. Ties on
// area break to the smallest MinY, then the smallest MinX, so the choice
// is deterministic regardless of the labeling order.
//
// Returns a NoComponentsFoundError if comps is empty.
func SelectLargest(comps []Component) (Component, error) {
	i := selectLargestIndex(comps)
	if i < 0 {
		return Component{}, &NoComponentsFoundError{Stage: "largest island selection"}
	}
	return comps[i], nil
}
