// Package topdown holds the top-down occupancy map published by the
// host's mapping pipeline and derives coverage statistics from it.
package topdown

import (
	"gorgonia.org/tensor"

	"github.com/Ram81/objectnav/utils/floatutils"
)

// Cell labels in the occupancy grid. MapFloor and values at or above
// MapValidPoint mark navigable space; values above VisitedThreshold
// mark cells the agent has stepped through.
const (
	MapFloor         = 1
	VisitedThreshold = 9
	MapValidPoint    = 10
)

// Map is one snapshot of the top-down occupancy grid and its
// fog-of-war mask. Both grids share a resolution and are int-backed
// rank-2 tensors; the fog mask holds 0 or 1 per cell. A nil *Map is
// the "no snapshot yet" sentinel, and every statistic on it is zero.
type Map struct {
	Grid *tensor.Dense
	Fog  *tensor.Dense
}

// New returns a Map over the given grids. The tensors are kept, not
// copied.
func New(grid, fog *tensor.Dense) *Map {
	return &Map{Grid: grid, Fog: fog}
}

// NewGrid returns an int-backed rank-2 tensor of the given size filled
// with a single label.
func NewGrid(rows, cols, label int) *tensor.Dense {
	cells := make([]int, rows*cols)
	for i := range cells {
		cells[i] = label
	}
	return tensor.New(tensor.WithShape(rows, cols), tensor.WithBacking(cells))
}

// NavigableArea counts the cells the map marks navigable.
func (m *Map) NavigableArea() int {
	if m == nil || m.Grid == nil {
		return 0
	}
	area := 0
	for _, label := range m.Grid.Data().([]int) {
		if label == MapFloor || label >= MapValidPoint {
			area++
		}
	}
	return area
}

// Coverage returns the fraction of navigable cells the agent has
// visited. Zero when there is no snapshot or no navigable area.
func (m *Map) Coverage() float64 {
	navigable := m.NavigableArea()
	if navigable == 0 {
		return 0
	}
	visited := 0
	for _, label := range m.Grid.Data().([]int) {
		if label > VisitedThreshold {
			visited++
		}
	}
	return float64(visited) / float64(navigable)
}

// VisibleArea returns the fraction of navigable cells inside the fog
// mask, clamped to 1: the mask can spill past navigable space.
func (m *Map) VisibleArea() float64 {
	if m == nil || m.Fog == nil {
		return 0
	}
	navigable := m.NavigableArea()
	if navigable == 0 {
		return 0
	}
	return floatutils.Min(1.0, float64(m.fogSum())/float64(navigable))
}

// FogRatio returns the fraction of all map cells inside the fog mask,
// regardless of navigability.
func (m *Map) FogRatio() float64 {
	if m == nil || m.Fog == nil {
		return 0
	}
	cells := m.Fog.Data().([]int)
	if len(cells) == 0 {
		return 0
	}
	return float64(m.fogSum()) / float64(len(cells))
}

func (m *Map) fogSum() int {
	sum := 0
	for _, seen := range m.Fog.Data().([]int) {
		if seen != 0 {
			sum++
		}
	}
	return sum
}
