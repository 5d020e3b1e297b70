// Package scene describes the semantic layout of a navigation scene:
// named regions with axis-aligned bounds and category annotations.
// A Scene is loaded once per episode from the host's scene-annotation
// provider and never mutated by the measures that read it.
package scene

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

// VerticalPad inflates the vertical half-extent of every region before
// a containment test. Agent positions are sampled slightly above the
// room floor.
const VerticalPad float64 = 0.1

// Axis indices of a position vector. The vertical axis is Y.
const (
	AxisX = iota
	AxisY
	AxisZ
)

// AABB is an axis-aligned bounding box given by its center and
// half-extents along each axis.
type AABB struct {
	Center      [3]float64
	HalfExtents [3]float64
}

// NewAABB returns a box with the given center and half-extents.
func NewAABB(center, halfExtents [3]float64) AABB {
	return AABB{Center: center, HalfExtents: halfExtents}
}

// Interval returns the box's extent along one axis, including the
// vertical pad on the Y axis.
func (b AABB) Interval(axis int) r1.Interval {
	half := b.HalfExtents[axis]
	if axis == AxisY {
		half += VerticalPad
	}
	return r1.Interval{Min: b.Center[axis] - half, Max: b.Center[axis] + half}
}

// Contains reports whether position lies inside the box. Bounds are
// inclusive on every axis.
func (b AABB) Contains(position mat.Vector) bool {
	if position.Len() != 3 {
		return false
	}
	for axis := 0; axis < 3; axis++ {
		bounds := b.Interval(axis)
		p := position.AtVec(axis)
		if p < bounds.Min || p > bounds.Max {
			return false
		}
	}
	return true
}

// Region is a named, axis-aligned bounding volume representing a room
// or area of the scene. Regions are immutable for an episode.
type Region struct {
	ID       string
	Category string
	AABB     AABB
}

// Scene is the ordered list of annotated regions for one scene. Order
// matters: containment lookups return the first matching region, so
// overlapping regions resolve to whichever the annotation listed
// first.
type Scene struct {
	Regions []Region
}

// New returns a Scene over the given regions. The slice is kept, not
// copied; callers must not mutate it afterwards.
func New(regions []Region) *Scene {
	return &Scene{Regions: regions}
}

// RegionAt returns the first region in order containing position, or
// nil when no region contains it.
func (s *Scene) RegionAt(position mat.Vector) *Region {
	for i := range s.Regions {
		if s.Regions[i].AABB.Contains(position) {
			return &s.Regions[i]
		}
	}
	return nil
}

// RegionsAt returns every region containing position, in scene order.
func (s *Scene) RegionsAt(position mat.Vector) []*Region {
	var regions []*Region
	for i := range s.Regions {
		if s.Regions[i].AABB.Contains(position) {
			regions = append(regions, &s.Regions[i])
		}
	}
	return regions
}
