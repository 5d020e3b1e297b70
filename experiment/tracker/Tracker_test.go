package tracker

import (
	"math"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	ts "github.com/Ram81/objectnav/timestep"
)

func step(t ts.StepType, reward float64, number int) ts.TimeStep {
	return ts.New(t, reward, mat.NewVecDense(3, nil), number)
}

func TestReturnTracksEpisodes(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "returns.bin")
	r := NewReturn(filename)

	// Two episodes: returns 3.0 and -0.5.
	r.Track(step(ts.First, 0, 0))
	r.Track(step(ts.Mid, 1, 1))
	r.Track(step(ts.Last, 2, 2))

	r.Track(step(ts.First, 0, 0))
	r.Track(step(ts.Last, -0.5, 1))

	r.Save()
	data := LoadData(filename)
	if len(data) != 2 {
		t.Fatalf("loadData: got %d returns, want 2", len(data))
	}
	if math.Abs(data[0]-3) > 1e-12 || math.Abs(data[1]+0.5) > 1e-12 {
		t.Errorf("loadData: got returns %v, want [3 -0.5]", data)
	}
}

func TestReturnPanicsOnSkippedStep(t *testing.T) {
	r := NewReturn("unused")
	r.Track(step(ts.First, 0, 0))

	defer func() {
		if recover() == nil {
			t.Error("track: expected panic for a skipped timestep")
		}
	}()
	r.Track(step(ts.Mid, 1, 2))
}

func TestEpisodeLength(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "lengths.bin")
	e := NewEpisodeLength(filename)

	e.Track(step(ts.First, 0, 0))
	e.Track(step(ts.Mid, 0, 1))
	e.Track(step(ts.Last, 0, 2))

	e.Track(step(ts.First, 0, 0))
	e.Track(step(ts.Last, 0, 1))

	e.Save()
	data := LoadData(filename)
	if len(data) != 2 || data[0] != 2 || data[1] != 1 {
		t.Errorf("loadData: got lengths %v, want [2 1]", data)
	}
}
