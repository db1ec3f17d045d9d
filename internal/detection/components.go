package detection

// Component is a 4-connected foreground region of a mask.
//
// Bounding box coordinates are inclusive on all four edges and expressed
// in the coordinate space of the mask the component was found in (for the
// split pipeline that is analysis space, not full resolution).
type Component struct {
	MinX int `json:"min_x"` // Left edge (inclusive)
	MinY int `json:"min_y"` // Top edge (inclusive)
	MaxX int `json:"max_x"` // Right edge (inclusive)
	MaxY int `json:"max_y"` // Bottom edge (inclusive)

	// Area is the number of foreground pixels in the region. Always > 0
	// and never larger than the bounding box area.
	Area int `json:"area"`
}

// Width returns the bounding box width in pixels.
func (c Component) Width() int { return c.MaxX - c.MinX + 1 }

// Height returns the bounding box height in pixels.
func (c Component) Height() int { return c.MaxY - c.MinY + 1 }

// Diameter returns the larger of the bounding box width and height.
func (c Component) Diameter() int {
	w, h := c.Width(), c.Height()
	if w > h {
		return w
	}
	return h
}

// FindComponents labels all 4-connected foreground regions of a mask.
//
// Every foreground pixel is visited exactly once, so the cost is linear in
// the pixel count. For a fixed mask the same set of components (bounding
// boxes and areas) is always produced; the order of the returned slice is
// scan order and callers that need a particular order must sort themselves
// (see SplitFilter and SelectLargest).
//
// The partition property holds: the component areas sum to the mask's
// foreground pixel count.
func FindComponents(m *Mask) []Component {
	_, comps := labelComponents(m)
	return comps
}

// labelComponents runs the flood fill and additionally returns a per-pixel
// label map: labels[i] is 1+index into the component slice, or 0 for
// background. The island cleaner uses the map to recover a component's
// exact footprint.
func labelComponents(m *Mask) ([]int32, []Component) {
	labels := make([]int32, len(m.Pix))
	comps := make([]Component, 0, 8)

	// Reused across fills to keep allocation flat on noisy masks.
	stack := make([]int, 0, 256)

	for start, v := range m.Pix {
		if v == 0 || labels[start] != 0 {
			continue
		}

		label := int32(len(comps) + 1)
		c := Component{
			MinX: start % m.Width,
			MaxX: start % m.Width,
			MinY: start / m.Width,
			MaxY: start / m.Width,
		}

		// Iterative flood fill over flat indices; a recursive fill would
		// overflow the goroutine stack on large discs.
		stack = append(stack[:0], start)
		labels[start] = label

		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			x := idx % m.Width
			y := idx / m.Width
			c.Area++
			if x < c.MinX {
				c.MinX = x
			}
			if x > c.MaxX {
				c.MaxX = x
			}
			if y < c.MinY {
				c.MinY = y
			}
			if y > c.MaxY {
				c.MaxY = y
			}

			if x > 0 && m.Pix[idx-1] != 0 && labels[idx-1] == 0 {
				labels[idx-1] = label
				stack = append(stack, idx-1)
			}
			if x < m.Width-1 && m.Pix[idx+1] != 0 && labels[idx+1] == 0 {
				labels[idx+1] = label
				stack = append(stack, idx+1)
			}
			if y > 0 && m.Pix[idx-m.Width] != 0 && labels[idx-m.Width] == 0 {
				labels[idx-m.Width] = label
				stack = append(stack, idx-m.Width)
			}
			if y < m.Height-1 && m.Pix[idx+m.Width] != 0 && labels[idx+m.Width] == 0 {
				labels[idx+m.Width] = label
				stack = append(stack, idx+m.Width)
			}
		}

		comps = append(comps, c)
	}

	return labels, comps
}
