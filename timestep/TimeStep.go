// Package timestep records single steps of an episode for downstream
// metric trackers.
package timestep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StepType denotes the type of step that a TimeStep can be, either the
// first step of an episode, a middle step, or the last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together one logged step of an episode: the shaped
// reward the measures emitted, the agent position, and the step number
// within the episode. Number 0 is the episode reset.
type TimeStep struct {
	stepType StepType
	Reward   float64
	Position mat.Vector
	Number   int
}

func New(t StepType, reward float64, position mat.Vector, number int) TimeStep {
	return TimeStep{t, reward, position, number}
}

// First returns whether a TimeStep is the first of its episode
func (t *TimeStep) First() bool {
	return t.stepType == First
}

// Mid returns whether a TimeStep is a middle step of its episode
func (t *TimeStep) Mid() bool {
	return t.stepType == Mid
}

// Last returns whether a TimeStep is the last step of its episode
func (t *TimeStep) Last() bool {
	return t.stepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.3f  |  Step Number:  %v"

	return fmt.Sprintf(str, t.stepType, t.Reward, t.Number)
}
