// Package sim declares the contracts the host simulator fulfils for
// the measures, plus a scripted Playback implementation used for
// offline runs and tests. The measures only ever read through these
// interfaces; they never mutate host-owned data.
package sim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/Ram81/objectnav/scene"
	"github.com/Ram81/objectnav/topdown"
)

// Simulator exposes the read-only host state the measures sample once
// per step.
type Simulator interface {
	// AgentPosition returns the agent's current 3D position.
	AgentPosition() mat.Vector

	// GeodesicDistance returns the shortest navigable-path distance
	// between two positions.
	GeodesicDistance(from, to mat.Vector) float64

	// Scene returns the semantic layout of the current episode's
	// scene. A nil Scene means no annotations are available.
	Scene() *scene.Scene
}

// ActionNamer resolves an integer action id to its symbolic name.
type ActionNamer interface {
	ActionName(action int) string
}

// Mapper supplies the per-step top-down map snapshot. A nil snapshot
// means the mapping pipeline has not produced one yet.
type Mapper interface {
	TopDown() *topdown.Map
}

// SuccessSignal reports whether the host judged the episode successful
// at the current step.
type SuccessSignal interface {
	Succeeded() bool
}
