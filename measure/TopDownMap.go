package measure

import (
	"github.com/Ram81/objectnav/sim"
	"github.com/Ram81/objectnav/task"
	"github.com/Ram81/objectnav/topdown"
)

// TopDownMapName identifies the TopDownMap measure.
const TopDownMapName = "top_down_map"

// TopDownMap publishes the mapper's current snapshot to the other
// measures. The metric stays nil until the mapping pipeline produces
// its first snapshot; downstream consumers must treat nil as "no map
// yet" and degrade to zero-valued statistics.
type TopDownMap struct {
	mapper sim.Mapper

	current *topdown.Map
}

// NewTopDownMap returns a TopDownMap over the host's mapper.
func NewTopDownMap(mapper sim.Mapper) *TopDownMap {
	return &TopDownMap{mapper: mapper}
}

func (m *TopDownMap) Name() string { return TopDownMapName }

// Reset takes the mapper's snapshot for the new episode, if any.
func (m *TopDownMap) Reset(*task.Episode) error {
	m.current = nil
	return m.Update(Step{})
}

// Update takes the mapper's current snapshot.
func (m *TopDownMap) Update(Step) error {
	m.current = m.mapper.TopDown()
	return nil
}

// Map returns the current snapshot, or nil when none exists yet.
func (m *TopDownMap) Map() *topdown.Map {
	return m.current
}

func (m *TopDownMap) Metric() interface{} {
	if m.current == nil {
		return nil
	}
	return m.current
}
