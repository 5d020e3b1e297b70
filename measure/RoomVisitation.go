package measure

import (
	"github.com/Ram81/objectnav/scene"
	"github.com/Ram81/objectnav/sim"
	"github.com/Ram81/objectnav/task"
)

// RoomVisitationName identifies the RoomVisitation measure.
const RoomVisitationName = "room_visitation_map"

// RoomVisitation counts, per region category, the steps the agent has
// spent inside that category's regions, plus the total steps spent in
// "goal rooms" (regions containing at least one goal viewpoint).
// Counters only grow within an episode, and a step inside several
// overlapping regions counts toward each of them. A scene with no
// regions leaves every counter at zero.
type RoomVisitation struct {
	sim sim.Simulator

	roomAABBs  map[string][]scene.AABB
	goalRooms  map[string][]scene.AABB
	visits     map[string]int
	goalVisits map[string]int
}

// NewRoomVisitation returns a RoomVisitation over the given simulator.
func NewRoomVisitation(simulator sim.Simulator) *RoomVisitation {
	return &RoomVisitation{sim: simulator}
}

func (r *RoomVisitation) Name() string { return RoomVisitationName }

// Reset rebuilds the region lists from the current scene annotations
// and clears every counter.
func (r *RoomVisitation) Reset(episode *task.Episode) error {
	r.roomAABBs = make(map[string][]scene.AABB)
	r.goalRooms = make(map[string][]scene.AABB)
	r.visits = make(map[string]int)
	r.goalVisits = make(map[string]int)

	sc := r.sim.Scene()
	if sc == nil {
		return nil
	}
	for _, region := range sc.Regions {
		r.roomAABBs[region.Category] = append(r.roomAABBs[region.Category], region.AABB)

		contains := false
		for _, goal := range episode.Goals {
			for _, vp := range goal.ViewPoints {
				if region.AABB.Contains(vp.Position) {
					contains = true
				}
			}
		}
		if contains {
			r.goalRooms[region.Category] = append(r.goalRooms[region.Category], region.AABB)
		}
	}
	return nil
}

// Update increments the counter of every region containing the agent.
func (r *RoomVisitation) Update(Step) error {
	position := r.sim.AgentPosition()

	for category, aabbs := range r.roomAABBs {
		for _, box := range aabbs {
			if box.Contains(position) {
				r.visits[category]++
			}
		}
	}
	for category, aabbs := range r.goalRooms {
		for _, box := range aabbs {
			if box.Contains(position) {
				r.goalVisits[category]++
			}
		}
	}
	return nil
}

// TimeSpentInGoalRooms returns the total steps spent inside goal
// rooms this episode.
func (r *RoomVisitation) TimeSpentInGoalRooms() int {
	total := 0
	for _, count := range r.goalVisits {
		total += count
	}
	return total
}

// Visits returns a copy of the per-category visitation counters.
func (r *RoomVisitation) Visits() map[string]int {
	return copyCounts(r.visits)
}

func (r *RoomVisitation) Metric() interface{} {
	return map[string]interface{}{
		"time_spent_goal_room": r.TimeSpentInGoalRooms(),
		"room_visitation_map":  copyCounts(r.visits),
	}
}
