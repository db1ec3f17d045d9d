package detection

// InscribedEllipseMask builds a keep mask for a disc whose shape is known
// to be approximately circular: foreground strictly inside the ellipse
// inscribed in the image bounds inset by padding on every side,
// background outside.
//
// This is the cheap alternative to CleanIslands when full island
// analysis is unnecessary. Padding at or beyond half of either dimension
// is clamped so the ellipse always keeps at least a one-pixel radius;
// degenerate input never yields a zero-area mask.
func InscribedEllipseMask(width, height, padding int) *Mask {
	if padding < 0 {
		padding = 0
	}

	rx := float64(width-2*padding) / 2
	ry := float64(height-2*padding) / 2
	if rx < 1 {
		rx = 1
	}
	if ry < 1 {
		ry = 1
	}
	cx := float64(width-1) / 2
	cy := float64(height-1) / 2

	m := NewMask(width, height)
	for y := 0; y < height; y++ {
		dy := (float64(y) - cy) / ry
		for x := 0; x < width; x++ {
			dx := (float64(x) - cx) / rx
			if dx*dx+dy*dy < 1 {
				m.Pix[y*width+x] = 1
			}
		}
	}
	return m
}
