package task

import "fmt"

// GoalSpec selects how ObjectGoalSensor encodes the episode goal.
type GoalSpec string

const (
	// TaskCategoryID encodes the goal as its dense task category id.
	TaskCategoryID GoalSpec = "TASK_CATEGORY_ID"
	// ObjectID encodes the goal as the first goal object's name id.
	ObjectID GoalSpec = "OBJECT_ID"
)

// ObjectGoalSensor emits the episode's goal as a single integer
// observation, matching the encoding a policy was trained with.
type ObjectGoalSensor struct {
	spec       GoalSpec
	categories Categories
}

// NewObjectGoalSensor returns a sensor using the given goal encoding.
// An unrecognized GoalSpec is a configuration error.
func NewObjectGoalSensor(spec GoalSpec, categories Categories) (*ObjectGoalSensor, error) {
	switch spec {
	case TaskCategoryID, ObjectID:
	default:
		return nil, fmt.Errorf("newObjectGoalSensor: no such goal spec %q", spec)
	}
	return &ObjectGoalSensor{spec: spec, categories: categories}, nil
}

// Observe returns the goal observation for an episode.
func (s *ObjectGoalSensor) Observe(episode *Episode) (int, error) {
	if len(episode.Goals) == 0 {
		return 0, fmt.Errorf("observe: no goal specified for episode %v", episode.ID)
	}

	switch s.spec {
	case TaskCategoryID:
		id, ok := s.categories.TaskID(episode.ObjectCategory)
		if !ok {
			return 0, fmt.Errorf("observe: unknown object category %q in episode %v",
				episode.ObjectCategory, episode.ID)
		}
		return id, nil

	case ObjectID:
		return episode.Goals[0].ObjectNameID, nil
	}

	// Unreachable: the constructor validates the goal spec.
	panic(fmt.Sprintf("observe: no such goal spec %q", s.spec))
}
