// Package measure implements the per-episode metric computations for
// object-goal navigation. Every Measure is reset once per episode and
// updated once per simulated step by the host loop; between updates it
// publishes an immutable metric value the host can log. Measures never
// mutate data owned by the simulator, only their own counters.
package measure

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/Ram81/objectnav/task"
)

// Step carries the per-step inputs the host hands to every measure.
// The zero value is a valid "nothing observed" step, used when a
// measure updates during episode reset.
type Step struct {
	// Action is the id of the action the host just executed.
	Action int

	// Semantic is the current semantic frame, or nil when the host
	// does not render semantics. Cells hold scene category ids.
	Semantic *tensor.Dense
}

// Measure is a per-episode stateful computation producing a metric
// value.
type Measure interface {
	// Name identifies the measure for dependency declarations and
	// metric logging.
	Name() string

	// Reset clears all per-episode state for a new episode.
	Reset(episode *task.Episode) error

	// Update recomputes the metric for the current step.
	Update(step Step) error

	// Metric returns the value computed by the last Reset or Update.
	Metric() interface{}
}

// Dependent is implemented by measures that read other measures'
// current-step values and therefore must be updated after them.
type Dependent interface {
	Dependencies() []string
}

// Measurements is the ordered collection of measures the host drives
// each step. The collection order is the update order. A measure
// declaring a dependency that is absent or updated later in the order
// is a host wiring bug, so construction fails rather than degrading.
type Measurements struct {
	measures []Measure
}

// NewMeasurements returns a Measurements updating the given measures
// in argument order, after verifying every declared dependency is
// satisfied by an earlier measure.
func NewMeasurements(measures ...Measure) (*Measurements, error) {
	seen := make(map[string]bool, len(measures))
	for _, m := range measures {
		if seen[m.Name()] {
			return nil, fmt.Errorf("newMeasurements: duplicate measure %q", m.Name())
		}
		if d, ok := m.(Dependent); ok {
			for _, dep := range d.Dependencies() {
				if !seen[dep] {
					return nil, fmt.Errorf("newMeasurements: measure %q depends on "+
						"%q, which is not updated before it", m.Name(), dep)
				}
			}
		}
		seen[m.Name()] = true
	}
	return &Measurements{measures: measures}, nil
}

// Reset resets every measure in update order for a new episode.
func (ms *Measurements) Reset(episode *task.Episode) error {
	for _, m := range ms.measures {
		if err := m.Reset(episode); err != nil {
			return fmt.Errorf("reset %q: %v", m.Name(), err)
		}
	}
	return nil
}

// Update updates every measure in update order for the current step.
func (ms *Measurements) Update(step Step) error {
	for _, m := range ms.measures {
		if err := m.Update(step); err != nil {
			return fmt.Errorf("update %q: %v", m.Name(), err)
		}
	}
	return nil
}

// Metrics returns the current metric of every measure, keyed by
// measure name.
func (ms *Measurements) Metrics() map[string]interface{} {
	metrics := make(map[string]interface{}, len(ms.measures))
	for _, m := range ms.measures {
		metrics[m.Name()] = m.Metric()
	}
	return metrics
}

func copyCounts(counts map[string]int) map[string]int {
	copied := make(map[string]int, len(counts))
	for name, count := range counts {
		copied[name] = count
	}
	return copied
}
