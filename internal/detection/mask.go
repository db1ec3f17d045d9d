package detection

// Mask is a binary image stored as one byte per pixel in row-major order.
//
// A zero byte is background; any non-zero byte is foreground. Masks are
// freshly allocated by every operation that produces one, so callers own
// their results and may mutate them freely.
type Mask struct {
	// Pix holds the mask bytes, indexed by y*Width + x.
	Pix []uint8

	// Width is the mask width in pixels.
	Width int

	// Height is the mask height in pixels.
	Height int
}

// NewMask allocates an all-background mask of the given dimensions.
// Width and height must be positive; NewMask panics otherwise, since a
// zero-area mask is always a programming error at this layer (input
// validation happens when the pixel buffer is constructed).
func NewMask(width, height int) *Mask {
	if width <= 0 || height <= 0 {
		panic("detection: mask dimensions must be positive")
	}
	return &Mask{
		Pix:    make([]uint8, width*height),
		Width:  width,
		Height: height,
	}
}

// Binarize builds a foreground mask from 8-bit luminance samples.
//
// Pixels with luminance strictly below threshold become foreground. This
// matches scans with a light background: the disc content is darker than
// the scanner bed.
//
// lum must hold width*height samples in row-major order.
func Binarize(lum []uint8, width, height int, threshold uint8) *Mask {
	m := NewMask(width, height)
	for i, v := range lum {
		if v < threshold {
			m.Pix[i] = 1
		}
	}
	return m
}

// At reports whether the pixel at (x, y) is foreground.
// Coordinates outside the mask are background.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.Pix[y*m.Width+x] != 0
}

// Set marks the pixel at (x, y) as foreground (v = true) or background.
// Coordinates outside the mask are ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	if v {
		m.Pix[y*m.Width+x] = 1
	} else {
		m.Pix[y*m.Width+x] = 0
	}
}

// Clone returns an independent copy of the mask.
func (m *Mask) Clone() *Mask {
	c := NewMask(m.Width, m.Height)
	copy(c.Pix, m.Pix)
	return c
}

// CountForeground returns the number of foreground pixels.
func (m *Mask) CountForeground() int {
	n := 0
	for _, v := range m.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}
