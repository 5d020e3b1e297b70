package sim

// Action ids of the navigation action space.
const (
	Stop = iota
	MoveForward
	TurnLeft
	TurnRight
	LookUp
	LookDown
)

var actionNames = [...]string{
	Stop:        "STOP",
	MoveForward: "MOVE_FORWARD",
	TurnLeft:    "TURN_LEFT",
	TurnRight:   "TURN_RIGHT",
	LookUp:      "LOOK_UP",
	LookDown:    "LOOK_DOWN",
}

// Actions is the default action-name table. It implements ActionNamer.
type Actions struct{}

// ActionName returns the symbolic name of an action id, or "UNKNOWN"
// for ids outside the action space.
func (Actions) ActionName(action int) string {
	if action < 0 || action >= len(actionNames) {
		return "UNKNOWN"
	}
	return actionNames[action]
}
