package measure

import (
	"github.com/Ram81/objectnav/sim"
	"github.com/Ram81/objectnav/task"
)

// SuccessName identifies the Success measure.
const SuccessName = "success"

// Success republishes the host's success judgement as a metric so the
// reward measures can read it within the same step.
type Success struct {
	signal sim.SuccessSignal

	succeeded bool
}

// NewSuccess returns a Success measure over the host's success signal.
func NewSuccess(signal sim.SuccessSignal) *Success {
	return &Success{signal: signal}
}

func (s *Success) Name() string { return SuccessName }

// Reset samples the signal for the new episode's starting state.
func (s *Success) Reset(*task.Episode) error {
	s.succeeded = false
	return s.Update(Step{})
}

// Update samples the host's success signal.
func (s *Success) Update(Step) error {
	s.succeeded = s.signal.Succeeded()
	return nil
}

// Succeeded reports the current success judgement.
func (s *Success) Succeeded() bool {
	return s.succeeded
}

func (s *Success) Metric() interface{} {
	if s.succeeded {
		return 1.0
	}
	return 0.0
}
