package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// analysisMaxDim bounds the long side of the analysis-resolution view.
// Labeling and thresholding cost is proportional to pixel count, so large
// scans are downscaled before analysis; crop padding absorbs the rounding
// error when geometry is mapped back to full resolution.
const analysisMaxDim = 1200

// PixelBuffer is the engine's read-only view of an image: dimensions and
// an 8-bit luminance sample per pixel. The caller owns the underlying
// storage for the duration of a call; the engine never mutates it.
type PixelBuffer interface {
	Width() int
	Height() int

	// LuminanceAt returns the luminance of the pixel at (x, y).
	// Behavior outside the bounds is undefined; callers stay inside.
	LuminanceAt(x, y int) uint8
}

// InvalidBufferError reports a zero-area or malformed input buffer.
type InvalidBufferError struct {
	Width  int
	Height int
}

func (e *InvalidBufferError) Error() string {
	return fmt.Sprintf("invalid pixel buffer: %dx%d", e.Width, e.Height)
}

// GrayBuffer is a concrete PixelBuffer holding luminance samples in
// row-major order.
type GrayBuffer struct {
	Pix []uint8
	W   int
	H   int
}

// NewGrayBuffer allocates a zeroed luminance buffer.
func NewGrayBuffer(width, height int) (*GrayBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, &InvalidBufferError{Width: width, Height: height}
	}
	return &GrayBuffer{Pix: make([]uint8, width*height), W: width, H: height}, nil
}

// FromImage converts any image to a luminance buffer using ITU-R BT.601
// weights (0.299*R + 0.587*G + 0.114*B).
func FromImage(img image.Image) (*GrayBuffer, error) {
	b := img.Bounds()
	buf, err := NewGrayBuffer(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	gray := imaging.Grayscale(img)
	for i := 0; i < len(buf.Pix); i++ {
		buf.Pix[i] = gray.Pix[i*4]
	}
	return buf, nil
}

// Materialize copies an arbitrary PixelBuffer into a GrayBuffer. A
// *GrayBuffer input is returned as-is.
func Materialize(src PixelBuffer) (*GrayBuffer, error) {
	if g, ok := src.(*GrayBuffer); ok {
		return g, nil
	}
	buf, err := NewGrayBuffer(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			buf.Pix[y*buf.W+x] = src.LuminanceAt(x, y)
		}
	}
	return buf, nil
}

// Width returns the buffer width in pixels.
func (b *GrayBuffer) Width() int { return b.W }

// Height returns the buffer height in pixels.
func (b *GrayBuffer) Height() int { return b.H }

// LuminanceAt returns the luminance sample at (x, y).
func (b *GrayBuffer) LuminanceAt(x, y int) uint8 { return b.Pix[y*b.W+x] }

// Sub copies the given region into a new buffer. The region is clamped
// to the buffer bounds; an empty intersection is an error.
func (b *GrayBuffer) Sub(r image.Rectangle) (*GrayBuffer, error) {
	r = r.Intersect(image.Rect(0, 0, b.W, b.H))
	if r.Empty() {
		return nil, &InvalidBufferError{Width: r.Dx(), Height: r.Dy()}
	}
	out, err := NewGrayBuffer(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < out.H; y++ {
		copy(out.Pix[y*out.W:(y+1)*out.W], b.Pix[(r.Min.Y+y)*b.W+r.Min.X:(r.Min.Y+y)*b.W+r.Min.X+out.W])
	}
	return out, nil
}

// ToGray converts the buffer to a standard image.Gray sharing no storage.
func (b *GrayBuffer) ToGray() *image.Gray {
	g := image.NewGray(image.Rect(0, 0, b.W, b.H))
	copy(g.Pix, b.Pix)
	return g
}

// AnalysisScale computes the downscaling ratio applied before analysis:
// 1.0 when the long side fits within the analysis budget, otherwise the
// ratio that brings it down to the budget. Always in (0, 1].
func AnalysisScale(width, height int) float64 {
	maxDim := width
	if height > maxDim {
		maxDim = height
	}
	if maxDim <= analysisMaxDim {
		return 1.0
	}
	return float64(analysisMaxDim) / float64(maxDim)
}

// Downscale resamples the buffer by the given scale using box filtering.
// A scale of 1.0 (or anything >= 1) returns the buffer unchanged.
// Resulting dimensions are floored at one pixel.
func Downscale(b *GrayBuffer, scale float64) *GrayBuffer {
	if scale >= 1.0 {
		return b
	}
	w := int(float64(b.W)*scale + 0.5)
	h := int(float64(b.H)*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	small := imaging.Resize(b.ToGray(), w, h, imaging.Box)
	out := &GrayBuffer{Pix: make([]uint8, w*h), W: w, H: h}
	for i := 0; i < len(out.Pix); i++ {
		out.Pix[i] = small.Pix[i*4]
	}
	return out
}
