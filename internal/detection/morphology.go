package detection

// Morphological erosion, dilation and opening over binary masks using a
// square (2r+1)x(2r+1) structuring element. The square element is
// iterated as r passes of a 3x3 element, which is equivalent for flat
// elements and keeps every pass a simple neighborhood scan.
//
// These operate directly on in-memory mask arrays; no host selection
// primitives are involved, so the behavior is identical everywhere and
// testable in isolation.

// Erode shrinks the foreground boundary inward by radius pixels. A
// foreground pixel survives only if every pixel of the structuring
// element around it is also foreground; pixels beyond the mask edge
// count as background, so foreground touching the border erodes too.
//
// radius <= 0 returns an unmodified copy.
func Erode(m *Mask, radius int) *Mask {
	out := m.Clone()
	for i := 0; i < radius; i++ {
		out = erodeOnce(out)
	}
	return out
}

// Dilate grows the foreground boundary outward by radius pixels, the
// exact dual of Erode. radius <= 0 returns an unmodified copy.
func Dilate(m *Mask, radius int) *Mask {
	out := m.Clone()
	for i := 0; i < radius; i++ {
		out = dilateOnce(out)
	}
	return out
}

// Open erodes then dilates by the same radius. Thin protrusions,
// one-pixel bridges and speckles smaller than the structuring element
// disappear, while bodies thicker than 2*radius keep their shape.
func Open(m *Mask, radius int) *Mask {
	if radius <= 0 {
		return m.Clone()
	}
	return Dilate(Erode(m, radius), radius)
}

func erodeOnce(m *Mask) *Mask {
	out := NewMask(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Pix[y*m.Width+x] == 0 {
				continue
			}
			keep := true
			for dy := -1; dy <= 1 && keep; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if !m.At(x+dx, y+dy) {
						keep = false
						break
					}
				}
			}
			if keep {
				out.Pix[y*m.Width+x] = 1
			}
		}
	}
	return out
}

func dilateOnce(m *Mask) *Mask {
	out := NewMask(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Pix[y*m.Width+x] == 0 {
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					out.Set(x+dx, y+dy, true)
				}
			}
		}
	}
	return out
}
