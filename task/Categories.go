package task

// Categories holds the immutable mapping between object category
// names, the dense task category ids a policy is trained against, and
// the scene-annotation (mpcat40) ids used by semantic frames. It is
// built once at process start and shared by reference.
type Categories struct {
	taskIDs  map[string]int
	sceneIDs []int
}

// NewCategories builds a Categories from a name -> task id table and a
// task id -> scene annotation id table. Both inputs are copied.
func NewCategories(taskIDs map[string]int, sceneIDs []int) Categories {
	ids := make(map[string]int, len(taskIDs))
	for name, id := range taskIDs {
		ids[name] = id
	}
	return Categories{
		taskIDs:  ids,
		sceneIDs: append([]int(nil), sceneIDs...),
	}
}

// TaskID returns the dense task id of a category name.
func (c Categories) TaskID(category string) (int, bool) {
	id, ok := c.taskIDs[category]
	return id, ok
}

// SceneID returns the scene-annotation id for a task category id.
func (c Categories) SceneID(taskID int) (int, bool) {
	if taskID < 0 || taskID >= len(c.sceneIDs) {
		return 0, false
	}
	return c.sceneIDs[taskID], true
}

// MaxTaskID returns the largest task category id.
func (c Categories) MaxTaskID() int {
	max := 0
	for _, id := range c.taskIDs {
		if id > max {
			max = id
		}
	}
	return max
}

// DefaultCategories returns the 28 object-goal categories of the
// ObjectNav task, in task id order, with their mpcat40 scene ids.
func DefaultCategories() Categories {
	names := []string{
		"chair",
		"table",
		"picture",
		"cabinet",
		"cushion",
		"sofa",
		"bed",
		"chest_of_drawers",
		"plant",
		"sink",
		"toilet",
		"stool",
		"towel",
		"tv_monitor",
		"shower",
		"bathtub",
		"counter",
		"fireplace",
		"gym_equipment",
		"seating",
		"clothes",
		"foodstuff",
		"stationery",
		"fruit",
		"plaything",
		"hand_tool",
		"game_equipment",
		"kitchenware",
	}
	sceneIDs := []int{
		3, 5, 6, 7, 8, 10, 11, 13, 14, 15, 18, 19, 20, 22, 23, 25, 26,
		27, 33, 34, 38, 43, 44, 45, 46, 47, 48, 49,
	}

	taskIDs := make(map[string]int, len(names))
	for i, name := range names {
		taskIDs[name] = i
	}
	return NewCategories(taskIDs, sceneIDs)
}
