package experiment

import (
	"fmt"

	"github.com/Ram81/objectnav/experiment/tracker"
	"github.com/Ram81/objectnav/measure"
	ts "github.com/Ram81/objectnav/timestep"
	"github.com/Ram81/objectnav/utils/progressbar"
)

// Online is an Experiment that evaluates a batch of recorded
// trajectories in order, episode by episode.
type Online struct {
	trajectories []Trajectory
	measures     *measure.Measurements
	reward       *measure.ObjectNavReward
	current      int
	trackers     []tracker.Tracker
}

// NewOnline creates and returns a new online experiment over a batch
// of trajectories. The measures parameter holds every measure to drive
// through the trajectories, reward is the measure whose per-step value
// is logged as the TimeStep reward, and the t parameter is a slice of
// tracker.Tracker which determine what data is saved.
func NewOnline(trajectories []Trajectory, measures *measure.Measurements,
	reward *measure.ObjectNavReward, t ...tracker.Tracker) *Online {
	return &Online{trajectories, measures, reward, 0, t}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode evaluates the next recorded episode of the batch
func (o *Online) RunEpisode() bool {
	if o.current >= len(o.trajectories) {
		return true
	}
	trajectory := o.trajectories[o.current]
	o.current++

	playback := trajectory.Playback
	playback.Reset()
	if err := o.measures.Reset(trajectory.Episode); err != nil {
		panic(fmt.Sprintf("runEpisode: could not reset measures: %v", err))
	}
	o.track(ts.New(ts.First, 0, playback.AgentPosition(), 0))

	// Replay the recorded frames through the measures
	number := 0
	for playback.Advance() {
		number++

		step := measure.Step{
			Action:   playback.Action(),
			Semantic: playback.Semantic(),
		}
		if err := o.measures.Update(step); err != nil {
			panic(fmt.Sprintf("runEpisode: could not update measures: %v", err))
		}

		stepType := ts.Mid
		if playback.Done() {
			stepType = ts.Last
		}
		o.track(ts.New(stepType, o.reward.Reward(), playback.AgentPosition(),
			number))
	}

	// Return whether or not the batch of trajectories is exhausted
	return o.current >= len(o.trajectories)
}

// Run runs the entire experiment over all trajectories in the batch
func (o *Online) Run() {
	bar := progressbar.New(50, len(o.trajectories))
	bar.Display()

	ended := len(o.trajectories) == 0
	for !ended {
		ended = o.RunEpisode()
		bar.Increment()
		bar.Display()
	}
	bar.Finish()
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, t := range o.trackers {
		t.Save()
	}
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(step ts.TimeStep) {
	for _, t := range o.trackers {
		t.Track(step)
	}
}
