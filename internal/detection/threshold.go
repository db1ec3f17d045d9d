package detection

// uniformThreshold is returned (plus bias) when the histogram holds a
// single luminance value. Otsu's variance is undefined there, so a
// mid-range cut is the documented contract rather than an accident.
const uniformThreshold = 128

// OtsuThreshold computes a binarization threshold from a luminance
// histogram using Otsu's method, then shifts it by bias and clamps the
// result to [0, 255].
//
// For every candidate cut t the histogram splits into a dark class
// [0, t) and a light class [t, 255]; the chosen t maximizes the
// between-class variance w0*w1*(mu0-mu1)^2. Ties go to the smallest t,
// which keeps the result deterministic: identical histograms always yield
// the identical threshold.
//
// A histogram with a single non-empty bucket (uniform image) yields
// 128 + bias, clamped. An empty histogram yields 255 + bias, clamped, so
// a degenerate call never divides by zero.
//
// The returned value follows the Binarize convention: pixels with
// luminance strictly below it are foreground.
func OtsuThreshold(h *Histogram, bias int) int {
	total := h.Total()
	if total == 0 {
		return clampByte(255 + bias)
	}
	if h.nonEmptyBuckets() == 1 {
		return clampByte(uniformThreshold + bias)
	}

	sumTotal := 0
	for v, count := range h {
		sumTotal += v * count
	}

	best := uniformThreshold
	bestVariance := -1.0
	darkCount := h[0]
	darkSum := 0

	for t := 1; t <= 254; t++ {
		lightCount := total - darkCount
		if darkCount > 0 && lightCount > 0 {
			meanDark := float64(darkSum) / float64(darkCount)
			meanLight := float64(sumTotal-darkSum) / float64(lightCount)
			d := meanDark - meanLight
			variance := float64(darkCount) * float64(lightCount) * d * d
			if variance > bestVariance {
				bestVariance = variance
				best = t
			}
		}
		darkCount += h[t]
		darkSum += t * h[t]
	}

	return clampByte(best + bias)
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
