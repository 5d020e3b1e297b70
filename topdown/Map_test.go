package topdown

import (
	"math"
	"testing"

	"gorgonia.org/tensor"
)

func grid(rows, cols int, cells []int) *tensor.Dense {
	return tensor.New(tensor.WithShape(rows, cols), tensor.WithBacking(cells))
}

func TestNilMapIsZero(t *testing.T) {
	var m *Map
	if m.NavigableArea() != 0 || m.Coverage() != 0 || m.VisibleArea() != 0 || m.FogRatio() != 0 {
		t.Error("nil map: all statistics should be zero")
	}
}

func TestNavigableArea(t *testing.T) {
	// 0 = unmapped, 1 = floor, 2..9 = non-navigable annotations,
	// >= 10 = valid (visited) points.
	m := New(grid(2, 3, []int{0, 1, 2, 9, 10, 15}), nil)
	if area := m.NavigableArea(); area != 3 {
		t.Errorf("navigableArea: got %d, want 3", area)
	}
}

func TestCoverage(t *testing.T) {
	// No navigable cells: no division, coverage 0.
	empty := New(grid(2, 2, []int{0, 0, 2, 9}), nil)
	if c := empty.Coverage(); c != 0 {
		t.Errorf("coverage: got %v for non-navigable map, want 0", c)
	}

	// Half the navigable cells carry the visited marker.
	half := New(grid(2, 2, []int{1, 1, 10, 10}), nil)
	if c := half.Coverage(); math.Abs(c-0.5) > 1e-12 {
		t.Errorf("coverage: got %v, want 0.5", c)
	}

	// Fully visited navigable map.
	full := New(grid(2, 2, []int{10, 11, 12, 13}), nil)
	if c := full.Coverage(); c != 1.0 {
		t.Errorf("coverage: got %v for fully visited map, want 1.0", c)
	}
}

func TestVisibleArea(t *testing.T) {
	m := New(
		grid(2, 2, []int{1, 1, 0, 0}),
		grid(2, 2, []int{1, 0, 0, 0}),
	)
	if v := m.VisibleArea(); math.Abs(v-0.5) > 1e-12 {
		t.Errorf("visibleArea: got %v, want 0.5", v)
	}

	// The fog mask can cover non-navigable cells; the ratio clamps
	// at 1.
	spill := New(
		grid(2, 2, []int{1, 0, 0, 0}),
		grid(2, 2, []int{1, 1, 1, 1}),
	)
	if v := spill.VisibleArea(); v != 1.0 {
		t.Errorf("visibleArea: got %v, want clamped 1.0", v)
	}

	noFog := New(grid(2, 2, []int{1, 1, 1, 1}), nil)
	if v := noFog.VisibleArea(); v != 0 {
		t.Errorf("visibleArea: got %v without a fog mask, want 0", v)
	}
}

func TestFogRatio(t *testing.T) {
	m := New(
		grid(2, 2, []int{1, 1, 0, 0}),
		grid(2, 2, []int{1, 1, 1, 0}),
	)
	if r := m.FogRatio(); math.Abs(r-0.75) > 1e-12 {
		t.Errorf("fogRatio: got %v, want 0.75", r)
	}
}

func TestRender(t *testing.T) {
	m := New(
		grid(2, 2, []int{1, 0, 10, 1}),
		grid(2, 2, []int{1, 0, 1, 1}),
	)
	img, err := m.Render(4)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 8 {
		t.Errorf("render: got %dx%d image, want 8x8", bounds.Dx(), bounds.Dy())
	}

	var missing *Map
	if _, err := missing.Render(1); err == nil {
		t.Error("render: expected error for nil map")
	}
}
