package measure

import (
	"fmt"
	"strings"

	"github.com/Ram81/objectnav/scene"
	"github.com/Ram81/objectnav/sim"
	"github.com/Ram81/objectnav/task"
)

// ExplorationName identifies the Exploration measure.
const ExplorationName = "exploration_metrics"

const (
	// actionWindow caps the trailing action history.
	actionWindow = 20

	// A panoramic sweep needs at least minTurnsPerSide consecutive
	// turns in each direction, minTotalTurns in total, and a
	// step-over-step visibility gain above the sweep threshold.
	minTurnsPerSide = 3
	minTotalTurns   = 8

	// Visibility-gain thresholds for the two sweep counters.
	sweepDelta       = 0.015
	sweepDeltaStrict = 0.01

	// Step-gap bounds for counting a room re-entry as peeking.
	peekMaxGap       = 10
	peekStrictMinGap = 8
	peekStrictMaxGap = 14

	// A beeline holds MOVE_FORWARD for at least half the window.
	beelineShare = 0.5
)

// Exploration tracks exploration behavior over an episode: per-room
// visits and short re-entries ("peeking"), sustained panoramic turn
// sweeps correlated with visibility gain, beelining, and top-down map
// coverage. It reads the TopDownMap measure and must be updated after
// it each step.
type Exploration struct {
	sim        sim.Simulator
	actions    sim.ActionNamer
	topDownMap *TopDownMap

	roomNames []string
	roomAABBs map[string][]scene.AABB

	previousRoomStack []string
	stepsBetweenRooms int

	visits         map[string]int
	revisits       map[string]int
	revisitsStrict map[string]int

	lastActions []string
	leftTurns   int
	rightTurns  int

	panoramicTurns       int
	panoramicTurnsStrict int

	coverage         float64
	sightCoverage    float64
	prevSight        float64
	deltaSight       float64
	sumDeltaCoverage float64
}

// NewExploration returns an Exploration reading map snapshots from the
// given TopDownMap measure and resolving action names through actions.
func NewExploration(simulator sim.Simulator, actions sim.ActionNamer,
	topDownMap *TopDownMap) *Exploration {
	return &Exploration{sim: simulator, actions: actions, topDownMap: topDownMap}
}

func (e *Exploration) Name() string { return ExplorationName }

// Dependencies declares the measures that must update before this one.
func (e *Exploration) Dependencies() []string {
	return []string{TopDownMapName}
}

// Reset rebuilds the room list from the current scene annotations and
// clears every counter, window, and baseline.
func (e *Exploration) Reset(*task.Episode) error {
	e.roomNames = nil
	e.roomAABBs = make(map[string][]scene.AABB)
	e.previousRoomStack = nil
	e.stepsBetweenRooms = 0
	e.visits = make(map[string]int)
	e.revisits = make(map[string]int)
	e.revisitsStrict = make(map[string]int)
	e.lastActions = nil
	e.leftTurns = 0
	e.rightTurns = 0
	e.panoramicTurns = 0
	e.panoramicTurnsStrict = 0
	e.coverage = 0
	e.sightCoverage = 0
	e.prevSight = 0
	e.deltaSight = 0
	e.sumDeltaCoverage = 0

	sc := e.sim.Scene()
	if sc == nil {
		return nil
	}
	for i, region := range sc.Regions {
		name := region.Category
		// Houses repeat bedrooms; disambiguate them so each one gets
		// its own visit counters.
		if strings.Contains(name, "bedroom") {
			name = fmt.Sprintf("%s_%d", region.Category, i)
		}
		if _, ok := e.roomAABBs[name]; !ok {
			e.roomNames = append(e.roomNames, name)
		}
		e.roomAABBs[name] = append(e.roomAABBs[name], region.AABB)
	}
	return nil
}

// isPeeking reports whether entering currentRoom means the agent left
// it, passed through exactly one other room, and came straight back.
func (e *Exploration) isPeeking(currentRoom string) bool {
	if currentRoom == "" {
		return false
	}
	n := len(e.previousRoomStack)
	if n < 2 {
		return false
	}
	return e.previousRoomStack[n-2] == currentRoom &&
		e.previousRoomStack[n-1] != currentRoom
}

// Update advances every exploration statistic by one step.
func (e *Exploration) Update(step Step) error {
	position := e.sim.AgentPosition()

	currentRoom := ""
	for _, name := range e.roomNames {
		for _, box := range e.roomAABBs[name] {
			if box.Contains(position) {
				e.visits[name]++
				currentRoom = name
			}
		}
	}

	if e.isPeeking(currentRoom) && e.visits[currentRoom] >= 1 &&
		e.stepsBetweenRooms <= peekMaxGap {
		if e.revisits[currentRoom] == 0 {
			e.revisits[currentRoom]++
		}
		e.revisits[currentRoom]++
	}
	if e.isPeeking(currentRoom) && e.visits[currentRoom] >= 1 &&
		e.stepsBetweenRooms >= peekStrictMinGap &&
		e.stepsBetweenRooms <= peekStrictMaxGap {
		if e.revisitsStrict[currentRoom] == 0 {
			e.revisitsStrict[currentRoom]++
		}
		e.revisitsStrict[currentRoom]++
	}

	if currentRoom != "" && (len(e.previousRoomStack) == 0 ||
		e.previousRoomStack[len(e.previousRoomStack)-1] != currentRoom) {
		e.previousRoomStack = append(e.previousRoomStack, currentRoom)
		e.stepsBetweenRooms = 0
	}
	e.stepsBetweenRooms++

	snapshot := e.topDownMap.Map()
	e.coverage = snapshot.Coverage()
	e.sightCoverage = snapshot.VisibleArea()
	e.deltaSight = e.sightCoverage - e.prevSight
	e.prevSight = e.sightCoverage

	name := e.actions.ActionName(step.Action)
	e.lastActions = append(e.lastActions, name)
	if len(e.lastActions) > actionWindow {
		e.lastActions = e.lastActions[1:]
	}

	if !strings.Contains(name, "TURN") {
		e.leftTurns = 0
		e.rightTurns = 0
		e.deltaSight = 0
	} else if name == "TURN_LEFT" {
		e.leftTurns++
	} else if name == "TURN_RIGHT" {
		e.rightTurns++
	}

	if e.leftTurns >= minTurnsPerSide && e.rightTurns >= minTurnsPerSide &&
		e.leftTurns+e.rightTurns >= minTotalTurns {
		if e.deltaSight > sweepDelta {
			e.panoramicTurns++
		}
		if e.deltaSight > sweepDeltaStrict {
			e.panoramicTurnsStrict++
			e.sumDeltaCoverage += e.deltaSight
		}
	}
	return nil
}

// Beeline reports whether the agent held MOVE_FORWARD for at least
// half of the trailing action window.
func (e *Exploration) Beeline() bool {
	if len(e.lastActions) == 0 {
		return false
	}
	run, maxRun := 0, 0
	for _, action := range e.lastActions {
		if action != "MOVE_FORWARD" {
			run = 0
		} else {
			run++
		}
		if run > maxRun {
			maxRun = run
		}
	}
	return float64(maxRun)/float64(len(e.lastActions)) >= beelineShare
}

// PanoramicTurns returns the lenient sweep count.
func (e *Exploration) PanoramicTurns() int {
	return e.panoramicTurns
}

// PanoramicTurnsStrict returns the strict sweep count.
func (e *Exploration) PanoramicTurnsStrict() int {
	return e.panoramicTurnsStrict
}

// AvgDeltaCoverage returns the mean visibility gain across strict
// sweeps, or 0 before the first one.
func (e *Exploration) AvgDeltaCoverage() float64 {
	if e.panoramicTurnsStrict == 0 {
		return 0
	}
	return e.sumDeltaCoverage / float64(e.panoramicTurnsStrict)
}

// Revisits returns a copy of the lenient per-room revisitation counts.
func (e *Exploration) Revisits() map[string]int {
	return copyCounts(e.revisits)
}

// RevisitsStrict returns a copy of the strict per-room revisitation
// counts.
func (e *Exploration) RevisitsStrict() map[string]int {
	return copyCounts(e.revisitsStrict)
}

func (e *Exploration) Metric() interface{} {
	return map[string]interface{}{
		"room_revisitation_map":        copyCounts(e.revisits),
		"room_revisitation_map_strict": copyCounts(e.revisitsStrict),
		"coverage":                     e.coverage,
		"sight_coverage":               e.sightCoverage,
		"delta_sight_coverage":         e.deltaSight,
		"avg_delta_coverage":           e.AvgDeltaCoverage(),
		"panoramic_turns":              e.panoramicTurns,
		"panoramic_turns_strict":       e.panoramicTurnsStrict,
		"beeline":                      e.Beeline(),
		"last_20_actions":              append([]string(nil), e.lastActions...),
	}
}
