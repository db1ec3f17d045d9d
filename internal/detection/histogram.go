package detection

// Histogram counts 8-bit luminance values. Bucket i holds the number of
// samples with luminance exactly i.
type Histogram [256]int

// HistogramOf builds a luminance histogram over the given samples.
func HistogramOf(lum []uint8) *Histogram {
	var h Histogram
	for _, v := range lum {
		h[v]++
	}
	return &h
}

// Add records one sample.
func (h *Histogram) Add(v uint8) { h[v]++ }

// Total returns the number of recorded samples.
func (h *Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// nonEmptyBuckets returns how many buckets hold at least one sample.
func (h *Histogram) nonEmptyBuckets() int {
	n := 0
	for _, c := range h {
		if c > 0 {
			n++
		}
	}
	return n
}
