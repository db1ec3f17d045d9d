package detection

import (
	"reflect"
	"sort"
	"testing"
)

// buildMask parses a picture into a mask: '#' is foreground, anything
// else is background. All rows must have equal length.
func buildMask(t *testing.T, rows []string) *Mask {
	t.Helper()
	if len(rows) == 0 {
		t.Fatal("buildMask: no rows")
	}
	m := NewMask(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != m.Width {
			t.Fatalf("buildMask: row %d has length %d, want %d", y, len(row), m.Width)
		}
		for x := 0; x < m.Width; x++ {
			if row[x] == '#' {
				m.Pix[y*m.Width+x] = 1
			}
		}
	}
	return m
}

func sortComponents(comps []Component) {
	sort.Slice(comps, func(i, j int) bool {
		if comps[i].MinY != comps[j].MinY {
			return comps[i].MinY < comps[j].MinY
		}
		return comps[i].MinX < comps[j].MinX
	})
}

func TestFindComponents_TwoBlocksAndNoise(t *testing.T) {
	// Two separated 3x3 blocks plus one isolated pixel.
	m := buildMask(t, []string{
		".........#",
		".###......",
		".###......",
		".###......",
		"..........",
		"..........",
		".....###..",
		".....###..",
		".....###..",
		"..........",
	})

	comps := FindComponents(m)
	if len(comps) != 3 {
		t.Fatalf("components: got %d, want 3", len(comps))
	}

	sortComponents(comps)
	want := []Component{
		{MinX: 9, MinY: 0, MaxX: 9, MaxY: 0, Area: 1},
		{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3, Area: 9},
		{MinX: 5, MinY: 6, MaxX: 7, MaxY: 8, Area: 9},
	}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("components:\ngot  %+v\nwant %+v", comps, want)
	}
}

func TestFindComponents_PartitionProperty(t *testing.T) {
	masks := map[string]*Mask{
		"blocks and noise": buildMask(t, []string{
			"##..#",
			"##...",
			"....#",
			"#...#",
		}),
		"full": buildMask(t, []string{
			"###",
			"###",
		}),
		"empty": buildMask(t, []string{
			"...",
			"...",
		}),
		"ring": buildMask(t, []string{
			"#####",
			"#...#",
			"#####",
		}),
	}

	for name, m := range masks {
		t.Run(name, func(t *testing.T) {
			comps := FindComponents(m)
			sum := 0
			for _, c := range comps {
				sum += c.Area
				if c.Area <= 0 {
					t.Errorf("component area must be > 0, got %d", c.Area)
				}
				if c.MinX < 0 || c.MaxX < c.MinX || c.MaxX >= m.Width {
					t.Errorf("x bounds out of range: %+v", c)
				}
				if c.MinY < 0 || c.MaxY < c.MinY || c.MaxY >= m.Height {
					t.Errorf("y bounds out of range: %+v", c)
				}
				if c.Area > c.Width()*c.Height() {
					t.Errorf("area %d exceeds bounding box %dx%d", c.Area, c.Width(), c.Height())
				}
			}
			if sum != m.CountForeground() {
				t.Errorf("area sum %d != foreground count %d", sum, m.CountForeground())
			}
		})
	}
}

func TestFindComponents_FourConnectivity(t *testing.T) {
	// Diagonal neighbors are separate components.
	m := buildMask(t, []string{
		"#.",
		".#",
	})
	if got := len(FindComponents(m)); got != 2 {
		t.Errorf("diagonal pixels: got %d components, want 2", got)
	}
}

func TestFindComponents_Deterministic(t *testing.T) {
	m := buildMask(t, []string{
		"#.#.#",
		"##.##",
		".....",
		"#####",
	})

	first := FindComponents(m)
	second := FindComponents(m)
	sortComponents(first)
	sortComponents(second)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("labeling is not deterministic:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestComponent_Dimensions(t *testing.T) {
	c := Component{MinX: 2, MinY: 3, MaxX: 6, MaxY: 4, Area: 10}
	if c.Width() != 5 {
		t.Errorf("Width: got %d, want 5", c.Width())
	}
	if c.Height() != 2 {
		t.Errorf("Height: got %d, want 2", c.Height())
	}
	if c.Diameter() != 5 {
		t.Errorf("Diameter: got %d, want 5", c.Diameter())
	}
}

func TestBinarize(t *testing.T) {
	lum := []uint8{10, 11, 200, 0}
	m := Binarize(lum, 2, 2, 11)

	want := []uint8{1, 0, 0, 1}
	if !reflect.DeepEqual(m.Pix, want) {
		t.Errorf("Binarize: got %v, want %v (foreground is luminance < threshold)", m.Pix, want)
	}
}
