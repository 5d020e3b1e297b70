package measure

import (
	"testing"

	"github.com/Ram81/objectnav/scene"
	"github.com/Ram81/objectnav/task"
)

func TestRoomVisitationCounts(t *testing.T) {
	s := &stubSim{position: position(0, 0, 0), scene: twoRoomScene()}
	r := NewRoomVisitation(s)

	// Goal viewpoint sits in the office, so office is the goal room.
	ep := goalEpisode(position(10, 0, 0))
	if err := r.Reset(ep); err != nil {
		t.Fatalf("reset: %v", err)
	}

	// Three steps in the kitchen, two in the office.
	walk := []struct {
		x float64
	}{{0}, {1}, {0}, {10}, {11}}
	for _, step := range walk {
		s.position = position(step.x, 0, 0)
		if err := r.Update(Step{}); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	if got := r.Visits()["kitchen"]; got != 3 {
		t.Errorf("visits: kitchen = %d, want 3", got)
	}
	if got := r.Visits()["office"]; got != 2 {
		t.Errorf("visits: office = %d, want 2", got)
	}
	if got := r.TimeSpentInGoalRooms(); got != 2 {
		t.Errorf("timeSpentInGoalRooms: got %d, want 2", got)
	}
}

func TestRoomVisitationMonotonic(t *testing.T) {
	s := &stubSim{position: position(0, 0, 0), scene: twoRoomScene()}
	r := NewRoomVisitation(s)
	if err := r.Reset(goalEpisode(position(10, 0, 0))); err != nil {
		t.Fatalf("reset: %v", err)
	}

	// Counters never decrease, whatever the agent does.
	positions := []float64{0, 50, 0, -50, 10, 10, 3.5}
	previous := map[string]int{}
	for _, x := range positions {
		s.position = position(x, 0, 0)
		if err := r.Update(Step{}); err != nil {
			t.Fatalf("update: %v", err)
		}
		for category, count := range r.Visits() {
			if count < previous[category] {
				t.Fatalf("visits: %s decreased from %d to %d",
					category, previous[category], count)
			}
			previous[category] = count
		}
	}
}

func TestRoomVisitationOverlap(t *testing.T) {
	// A step inside two overlapping regions counts toward both.
	s := &stubSim{position: position(1, 0, 0)}
	s.scene = scene.New([]scene.Region{
		{ID: "0", Category: "kitchen",
			AABB: scene.NewAABB([3]float64{0, 0, 0}, [3]float64{2, 1, 2})},
		{ID: "1", Category: "dining room",
			AABB: scene.NewAABB([3]float64{1, 0, 0}, [3]float64{2, 1, 2})},
	})

	r := NewRoomVisitation(s)
	if err := r.Reset(&task.Episode{ID: "overlap"}); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if err := r.Update(Step{}); err != nil {
		t.Fatalf("update: %v", err)
	}

	visits := r.Visits()
	if visits["kitchen"] != 1 || visits["dining room"] != 1 {
		t.Errorf("visits: got %v, want one count in each overlapping room", visits)
	}
}

func TestRoomVisitationNoRegions(t *testing.T) {
	s := &stubSim{position: position(0, 0, 0), scene: scene.New(nil)}
	r := NewRoomVisitation(s)
	if err := r.Reset(&task.Episode{ID: "bare"}); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := r.Update(Step{}); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	if len(r.Visits()) != 0 || r.TimeSpentInGoalRooms() != 0 {
		t.Error("visits: expected all counters at zero for a scene without regions")
	}
}

func TestRoomVisitationResetClears(t *testing.T) {
	s := &stubSim{position: position(0, 0, 0), scene: twoRoomScene()}
	r := NewRoomVisitation(s)
	ep := goalEpisode(position(0, 0, 0))

	if err := r.Reset(ep); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for i := 0; i < 4; i++ {
		if err := r.Update(Step{}); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	if r.Visits()["kitchen"] != 4 {
		t.Fatalf("visits: kitchen = %d, want 4", r.Visits()["kitchen"])
	}

	// A second consecutive reset must leave no trace of the prior
	// episode.
	if err := r.Reset(ep); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(r.Visits()) != 0 || r.TimeSpentInGoalRooms() != 0 {
		t.Error("reset: expected counters cleared between episodes")
	}
}
