package detection

import "testing"

func TestOtsuThreshold_Bimodal(t *testing.T) {
	var h Histogram
	h[10] = 50
	h[200] = 50

	// Between-class variance is flat for every cut separating the two
	// peaks, so the smallest separating cut wins.
	if got := OtsuThreshold(&h, 0); got != 11 {
		t.Errorf("threshold: got %d, want 11", got)
	}
}

func TestOtsuThreshold_Bias(t *testing.T) {
	var h Histogram
	h[10] = 50
	h[200] = 50

	tests := []struct {
		name string
		bias int
		want int
	}{
		{"positive", 5, 16},
		{"negative", -5, 6},
		{"clamp low", -200, 0},
		{"clamp high", 300, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OtsuThreshold(&h, tt.bias); got != tt.want {
				t.Errorf("bias %d: got %d, want %d", tt.bias, got, tt.want)
			}
		})
	}
}

func TestOtsuThreshold_Uniform(t *testing.T) {
	var h Histogram
	h[77] = 1000

	tests := []struct {
		name string
		bias int
		want int
	}{
		{"no bias", 0, 128},
		{"positive bias", 10, 138},
		{"clamp high", 200, 255},
		{"clamp low", -200, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OtsuThreshold(&h, tt.bias); got != tt.want {
				t.Errorf("uniform, bias %d: got %d, want %d", tt.bias, got, tt.want)
			}
		})
	}
}

func TestOtsuThreshold_Empty(t *testing.T) {
	var h Histogram
	if got := OtsuThreshold(&h, 0); got != 255 {
		t.Errorf("empty histogram: got %d, want 255", got)
	}
	if got := OtsuThreshold(&h, -10); got != 245 {
		t.Errorf("empty histogram with bias: got %d, want 245", got)
	}
}

func TestOtsuThreshold_Deterministic(t *testing.T) {
	var h Histogram
	for v := 0; v < 256; v++ {
		h[v] = (v * 31) % 17
	}
	first := OtsuThreshold(&h, 0)
	for i := 0; i < 10; i++ {
		if got := OtsuThreshold(&h, 0); got != first {
			t.Fatalf("run %d: got %d, want %d", i, got, first)
		}
	}
}

func TestHistogramOf(t *testing.T) {
	lum := []uint8{0, 0, 5, 255}
	h := HistogramOf(lum)
	if h[0] != 2 || h[5] != 1 || h[255] != 1 {
		t.Errorf("unexpected histogram: h[0]=%d h[5]=%d h[255]=%d", h[0], h[5], h[255])
	}
	if h.Total() != 4 {
		t.Errorf("Total: got %d, want 4", h.Total())
	}
}
