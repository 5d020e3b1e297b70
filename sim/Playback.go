package sim

import (
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"github.com/Ram81/objectnav/scene"
	"github.com/Ram81/objectnav/topdown"
)

// Frame is one recorded step of a trajectory: the action the host
// executed and the state observable after it.
type Frame struct {
	Action   int
	Position mat.Vector
	Map      *topdown.Map  // nil when the mapper had no snapshot
	Semantic *tensor.Dense // nil when no semantic frame was rendered
	Success  bool
}

// Playback replays a recorded trajectory as if it were a live
// simulator so the measures can be driven offline. Before the first
// Advance the agent sits at the start position with no map snapshot.
// Playback implements Simulator, Mapper, ActionNamer and
// SuccessSignal. Geodesic distances degrade to straight-line
// distances: recorded trajectories carry no navmesh.
type Playback struct {
	scene  *scene.Scene
	start  mat.Vector
	frames []Frame
	cursor int
}

// NewPlayback returns a Playback over a recorded trajectory, rewound
// to before the first frame.
func NewPlayback(sc *scene.Scene, start mat.Vector, frames []Frame) *Playback {
	return &Playback{scene: sc, start: start, frames: frames, cursor: -1}
}

// Reset rewinds the playback to before the first frame.
func (p *Playback) Reset() {
	p.cursor = -1
}

// Advance moves to the next recorded frame. It returns false once the
// trajectory is exhausted.
func (p *Playback) Advance() bool {
	if p.cursor+1 >= len(p.frames) {
		return false
	}
	p.cursor++
	return true
}

// Len returns the number of recorded frames.
func (p *Playback) Len() int {
	return len(p.frames)
}

// Done reports whether the playback sits on the final frame.
func (p *Playback) Done() bool {
	return p.cursor+1 >= len(p.frames)
}

// Action returns the action executed in the current frame, or Stop
// before the first Advance.
func (p *Playback) Action() int {
	if p.cursor < 0 {
		return Stop
	}
	return p.frames[p.cursor].Action
}

// Semantic returns the current frame's semantic observation, if any.
func (p *Playback) Semantic() *tensor.Dense {
	if p.cursor < 0 {
		return nil
	}
	return p.frames[p.cursor].Semantic
}

// AgentPosition returns the agent position of the current frame.
func (p *Playback) AgentPosition() mat.Vector {
	if p.cursor < 0 {
		return p.start
	}
	return p.frames[p.cursor].Position
}

// GeodesicDistance returns the straight-line distance between two
// positions.
func (p *Playback) GeodesicDistance(from, to mat.Vector) float64 {
	diff := mat.NewVecDense(from.Len(), nil)
	diff.SubVec(to, from)
	return mat.Norm(diff, 2)
}

// Scene returns the semantic layout the trajectory was recorded in.
func (p *Playback) Scene() *scene.Scene {
	return p.scene
}

// TopDown returns the current frame's map snapshot, or nil before the
// first frame or when the frame carries none.
func (p *Playback) TopDown() *topdown.Map {
	if p.cursor < 0 {
		return nil
	}
	return p.frames[p.cursor].Map
}

// Succeeded reports the recorded success flag of the current frame.
func (p *Playback) Succeeded() bool {
	if p.cursor < 0 {
		return false
	}
	return p.frames[p.cursor].Success
}

// ActionName resolves action ids with the default action table.
func (p *Playback) ActionName(action int) string {
	return Actions{}.ActionName(action)
}
