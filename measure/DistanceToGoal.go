package measure

import (
	"math"

	"github.com/Ram81/objectnav/sim"
	"github.com/Ram81/objectnav/task"
)

// DistanceToGoalName identifies the DistanceToGoal measure.
const DistanceToGoalName = "distance_to_goal"

// DistanceToGoal tracks the geodesic distance from the agent to the
// closest episode goal. When goals carry annotated viewpoints the
// distance is taken to the closest viewpoint, matching how success is
// judged; otherwise the raw goal position is used. An episode with no
// goals reports distance zero.
type DistanceToGoal struct {
	sim          sim.Simulator
	toViewPoints bool

	episode  *task.Episode
	distance float64
}

// NewDistanceToGoal returns a DistanceToGoal over the given simulator.
// toViewPoints selects viewpoint targets over raw goal positions.
func NewDistanceToGoal(simulator sim.Simulator, toViewPoints bool) *DistanceToGoal {
	return &DistanceToGoal{sim: simulator, toViewPoints: toViewPoints}
}

func (d *DistanceToGoal) Name() string { return DistanceToGoalName }

// Reset records the episode and computes the starting distance.
func (d *DistanceToGoal) Reset(episode *task.Episode) error {
	d.episode = episode
	d.distance = 0
	return d.Update(Step{})
}

// Update recomputes the distance from the agent's current position.
func (d *DistanceToGoal) Update(Step) error {
	position := d.sim.AgentPosition()

	best := math.Inf(1)
	for _, goal := range d.episode.Goals {
		if d.toViewPoints && len(goal.ViewPoints) > 0 {
			for _, vp := range goal.ViewPoints {
				if dist := d.sim.GeodesicDistance(position, vp.Position); dist < best {
					best = dist
				}
			}
			continue
		}
		if dist := d.sim.GeodesicDistance(position, goal.Position); dist < best {
			best = dist
		}
	}

	if math.IsInf(best, 1) {
		best = 0
	}
	d.distance = best
	return nil
}

// Distance returns the current distance to the closest goal in meters.
func (d *DistanceToGoal) Distance() float64 {
	return d.distance
}

func (d *DistanceToGoal) Metric() interface{} {
	return d.distance
}
