package sim

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestPlayback(t *testing.T) {
	start := mat.NewVecDense(3, []float64{0, 0, 0})
	frames := []Frame{
		{Action: MoveForward, Position: mat.NewVecDense(3, []float64{1, 0, 0})},
		{Action: TurnLeft, Position: mat.NewVecDense(3, []float64{1, 0, 0}), Success: true},
	}
	p := NewPlayback(nil, start, frames)

	if p.Action() != Stop {
		t.Errorf("action before first advance: got %v, want STOP", p.Action())
	}
	if p.TopDown() != nil || p.Succeeded() {
		t.Error("before first advance there is no map snapshot and no success")
	}
	if got := p.AgentPosition(); got.AtVec(0) != 0 {
		t.Errorf("agentPosition before first advance: got %v, want start", got)
	}

	if !p.Advance() {
		t.Fatal("advance: expected a first frame")
	}
	if p.Action() != MoveForward || p.AgentPosition().AtVec(0) != 1 {
		t.Errorf("frame 1: action %v position %v", p.Action(), p.AgentPosition())
	}
	if p.Done() {
		t.Error("done: playback should not be done on frame 1 of 2")
	}

	if !p.Advance() {
		t.Fatal("advance: expected a second frame")
	}
	if !p.Succeeded() || !p.Done() {
		t.Error("frame 2: expected success and done")
	}
	if p.Advance() {
		t.Error("advance: expected exhaustion after the last frame")
	}

	p.Reset()
	if p.Action() != Stop || p.Succeeded() {
		t.Error("reset: expected playback rewound to before the first frame")
	}
}

func TestPlaybackGeodesicDistance(t *testing.T) {
	p := NewPlayback(nil, mat.NewVecDense(3, nil), nil)
	a := mat.NewVecDense(3, []float64{0, 0, 0})
	b := mat.NewVecDense(3, []float64{3, 0, 4})
	if d := p.GeodesicDistance(a, b); math.Abs(d-5) > 1e-12 {
		t.Errorf("geodesicDistance: got %v, want 5", d)
	}
}

func TestActionNames(t *testing.T) {
	names := Actions{}
	for action, want := range map[int]string{
		Stop:        "STOP",
		MoveForward: "MOVE_FORWARD",
		TurnLeft:    "TURN_LEFT",
		TurnRight:   "TURN_RIGHT",
		-1:          "UNKNOWN",
		99:          "UNKNOWN",
	} {
		if got := names.ActionName(action); got != want {
			t.Errorf("actionName(%d): got %q, want %q", action, got, want)
		}
	}
}
