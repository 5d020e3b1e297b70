// Package experiment implements functionality for evaluating recorded
// navigation trajectories
package experiment

import (
	"github.com/Ram81/objectnav/experiment/tracker"
	"github.com/Ram81/objectnav/sim"
	"github.com/Ram81/objectnav/task"
	ts "github.com/Ram81/objectnav/timestep"
)

// Interface Experiment outlines structs that can run evaluations over
// a batch of recorded episodes. Experiments drive the measures through
// each trajectory, caching each TimeStep in RAM to be later saved to
// disk. The Save() function will then take all cached data and save it
// to disk. This is usually performed after an experiment has been run.
// The Run() method will evaluate all episodes in the batch. The
// RunEpisode() function will evaluate a single episode.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. Experiments
// will send each TimeStep to Trackers using the Tracker's Track()
// method. The Tracker then determines which data from the TimeStep it
// caches and saves. New Trackers can be registered with an Experiment
// through the constructor or through an Experiment's Register()
// function.
type Experiment interface {
	Run()
	RunEpisode() bool // Returns whether or not the batch is exhausted

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Save all tracked data to disk
	Save()

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)
}

// Trajectory pairs an episode definition with the recorded playback
// that realizes it.
type Trajectory struct {
	Episode  *task.Episode
	Playback *sim.Playback
}
