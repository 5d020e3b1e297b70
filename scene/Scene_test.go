package scene

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func vec(x, y, z float64) mat.Vector {
	return mat.NewVecDense(3, []float64{x, y, z})
}

func TestAABBContains(t *testing.T) {
	box := NewAABB([3]float64{0, 0, 0}, [3]float64{2, 1, 3})

	inside := []mat.Vector{
		vec(0, 0, 0),
		vec(1.9, 0.5, -2.9),
		vec(-2, 0, 3),            // horizontal boundary is inclusive
		vec(0, 1+VerticalPad, 0), // padded vertical boundary is inclusive
		vec(0, -1-VerticalPad, 0),
	}
	for _, p := range inside {
		if !box.Contains(p) {
			t.Errorf("contains: %v should be inside %v", mat.Formatted(p.T()), box)
		}
	}

	outside := []mat.Vector{
		vec(2.001, 0, 0),
		vec(0, 1+VerticalPad+1e-9, 0),
		vec(0, 0, -3.5),
		vec(-9, -9, -9),
	}
	for _, p := range outside {
		if box.Contains(p) {
			t.Errorf("contains: %v should be outside %v", mat.Formatted(p.T()), box)
		}
	}

	if box.Contains(mat.NewVecDense(2, []float64{0, 0})) {
		t.Error("contains: a 2D position should never be inside a box")
	}
}

func TestRegionAtFirstMatchWins(t *testing.T) {
	// Two overlapping regions: lookups must resolve to the first one
	// in scene order.
	s := New([]Region{
		{ID: "0", Category: "kitchen", AABB: NewAABB([3]float64{0, 0, 0}, [3]float64{2, 1, 2})},
		{ID: "1", Category: "dining room", AABB: NewAABB([3]float64{1, 0, 0}, [3]float64{2, 1, 2})},
	})

	r := s.RegionAt(vec(1, 0, 0))
	if r == nil || r.Category != "kitchen" {
		t.Fatalf("regionAt: got %v, want first region (kitchen)", r)
	}

	if all := s.RegionsAt(vec(1, 0, 0)); len(all) != 2 {
		t.Errorf("regionsAt: got %d regions, want 2", len(all))
	}

	if r := s.RegionAt(vec(10, 0, 0)); r != nil {
		t.Errorf("regionAt: got %v for a position outside every region, want nil", r)
	}
}

func TestAnnotations(t *testing.T) {
	a := MatterportAnnotations()

	if code := a.Code("kitchen"); code != 10 {
		t.Errorf("code: kitchen = %d, want 10", code)
	}
	if code := a.Code("holodeck"); code != a.NoLabel() {
		t.Errorf("code: unknown category = %d, want no-label code %d", code, a.NoLabel())
	}

	// Annotations are detached from the map they were built from.
	codes := map[string]int{"cave": 1}
	b := NewAnnotations(codes, 0)
	codes["cave"] = 99
	if code := b.Code("cave"); code != 1 {
		t.Errorf("code: cave = %d, want 1 (mutation of source map leaked)", code)
	}
}
