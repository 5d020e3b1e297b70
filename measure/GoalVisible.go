package measure

import (
	"github.com/Ram81/objectnav/task"
)

// GoalObjectVisibleName identifies the GoalObjectVisible measure.
const GoalObjectVisibleName = "goal_vis_pixels"

// GoalObjectVisible measures the fraction of the current semantic
// frame occupied by the episode's goal category. Steps without a
// semantic frame, and episodes whose category has no scene annotation
// id, report zero.
type GoalObjectVisible struct {
	categories task.Categories

	goalID   int
	haveGoal bool
	visible  float64
}

// NewGoalObjectVisible returns a GoalObjectVisible using the given
// category tables.
func NewGoalObjectVisible(categories task.Categories) *GoalObjectVisible {
	return &GoalObjectVisible{categories: categories}
}

func (g *GoalObjectVisible) Name() string { return GoalObjectVisibleName }

// Reset resolves the episode's goal category to its scene annotation
// id and clears the visibility.
func (g *GoalObjectVisible) Reset(episode *task.Episode) error {
	g.haveGoal = false
	g.visible = 0

	if taskID, ok := g.categories.TaskID(episode.ObjectCategory); ok {
		if sceneID, ok := g.categories.SceneID(taskID); ok {
			g.goalID = sceneID
			g.haveGoal = true
		}
	}
	return g.Update(Step{})
}

// Update counts goal-category pixels in the semantic frame.
func (g *GoalObjectVisible) Update(step Step) error {
	g.visible = 0
	if !g.haveGoal || step.Semantic == nil {
		return nil
	}

	cells := step.Semantic.Data().([]int)
	if len(cells) == 0 {
		return nil
	}
	goalPixels := 0
	for _, id := range cells {
		if id == g.goalID {
			goalPixels++
		}
	}
	g.visible = float64(goalPixels) / float64(len(cells))
	return nil
}

// Visible returns the goal category's fraction of the current frame.
func (g *GoalObjectVisible) Visible() float64 {
	return g.visible
}

func (g *GoalObjectVisible) Metric() interface{} {
	return g.visible
}
