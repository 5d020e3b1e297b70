package measure

import (
	"github.com/Ram81/objectnav/scene"
	"github.com/Ram81/objectnav/sim"
	"github.com/Ram81/objectnav/task"
)

// RegionLevelName identifies the RegionLevel measure.
const RegionLevelName = "region_level"

// RegionLevel reports the annotation code of the room category
// currently containing the agent, or the no-label code when the agent
// is outside every region. With overlapping regions the first one in
// scene order wins.
type RegionLevel struct {
	sim         sim.Simulator
	annotations scene.Annotations

	roomCategory int
}

// NewRegionLevel returns a RegionLevel using the given category
// annotation table.
func NewRegionLevel(simulator sim.Simulator, annotations scene.Annotations) *RegionLevel {
	return &RegionLevel{sim: simulator, annotations: annotations}
}

func (r *RegionLevel) Name() string { return RegionLevelName }

// Reset computes the starting room category.
func (r *RegionLevel) Reset(*task.Episode) error {
	r.roomCategory = r.annotations.NoLabel()
	return r.Update(Step{})
}

// Update looks up the region containing the agent's position.
func (r *RegionLevel) Update(Step) error {
	r.roomCategory = r.annotations.NoLabel()

	sc := r.sim.Scene()
	if sc == nil {
		return nil
	}
	if region := sc.RegionAt(r.sim.AgentPosition()); region != nil {
		r.roomCategory = r.annotations.Code(region.Category)
	}
	return nil
}

// RoomCategory returns the annotation code of the current room.
func (r *RegionLevel) RoomCategory() int {
	return r.roomCategory
}

func (r *RegionLevel) Metric() interface{} {
	return map[string]interface{}{
		"room_cat": r.roomCategory,
	}
}
