package main

import (
	"fmt"
	"log"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"github.com/Ram81/objectnav/experiment"
	"github.com/Ram81/objectnav/experiment/tracker"
	"github.com/Ram81/objectnav/measure"
	"github.com/Ram81/objectnav/scene"
	"github.com/Ram81/objectnav/sim"
	"github.com/Ram81/objectnav/task"
	"github.com/Ram81/objectnav/topdown"
)

func main() {
	var seed uint64 = 192382

	// Create the scene and episode
	sc := demoScene()
	episode := demoEpisode()

	sensor, err := task.NewObjectGoalSensor(task.TaskCategoryID,
		task.DefaultCategories())
	if err != nil {
		log.Fatal(err)
	}
	goalID, err := sensor.Observe(episode)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("episode %v: find %q (category id %v)\n", episode.ID,
		episode.ObjectCategory, goalID)

	// Record a synthetic trajectory toward the goal
	playback := recordTrajectory(seed, sc, episode)

	// Create the measures
	distance := measure.NewDistanceToGoal(playback, true)
	topDownMap := measure.NewTopDownMap(playback)
	goalVisible := measure.NewGoalObjectVisible(task.DefaultCategories())
	success := measure.NewSuccess(playback)
	rooms := measure.NewRoomVisitation(playback)
	region := measure.NewRegionLevel(playback, scene.MatterportAnnotations())
	exploration := measure.NewExploration(playback, sim.Actions{}, topDownMap)

	reward, err := measure.NewObjectNavReward(measure.RewardConfig{
		Mode:              measure.DistanceWhenVisibleMode,
		SlackReward:       -0.001,
		SuccessReward:     2.5,
		ExplorationCoef:   0.25,
		GoalSeenThreshold: 0.1,
		GoalSeenReward:    1.0,
	}, distance, topDownMap, goalVisible, success)
	if err != nil {
		log.Fatal(err)
	}

	measures, err := measure.NewMeasurements(distance, topDownMap, goalVisible,
		success, rooms, region, exploration, reward)
	if err != nil {
		log.Fatal(err)
	}

	// Experiment
	trajectories := []experiment.Trajectory{{Episode: episode, Playback: playback}}
	e := experiment.NewOnline(trajectories, measures, reward,
		tracker.NewReturn("./returns.bin"),
		tracker.NewEpisodeLength("./lengths.bin"))
	e.Run()
	e.Save()

	returns := tracker.LoadData("./returns.bin")
	lengths := tracker.LoadData("./lengths.bin")
	fmt.Printf("returns: %v  lengths: %v\n", returns, lengths)

	fmt.Printf("success: %v  distance to goal: %.2f\n", success.Succeeded(),
		distance.Distance())
	fmt.Printf("coverage: %.3f  panoramic turns: %v  revisits: %v\n",
		exploration.AvgDeltaCoverage(), exploration.PanoramicTurns(),
		rooms.Visits())

	if m := topDownMap.Map(); m != nil {
		if err := m.SavePNG("./topdown.png", 8); err != nil {
			log.Fatal(err)
		}
	}
}

// demoScene lays four rooms in a row along the x axis.
func demoScene() *scene.Scene {
	return scene.New([]scene.Region{
		{ID: "0", Category: "kitchen",
			AABB: scene.NewAABB([3]float64{2, 0, 0}, [3]float64{2.5, 1.5, 2.5})},
		{ID: "1", Category: "hallway",
			AABB: scene.NewAABB([3]float64{7, 0, 0}, [3]float64{2.5, 1.5, 2.5})},
		{ID: "2", Category: "bedroom",
			AABB: scene.NewAABB([3]float64{12, 0, 0}, [3]float64{2.5, 1.5, 2.5})},
		{ID: "3", Category: "bedroom",
			AABB: scene.NewAABB([3]float64{17, 0, 0}, [3]float64{2.5, 1.5, 2.5})},
	})
}

func demoEpisode() *task.Episode {
	goal := mat.NewVecDense(3, []float64{17, 0, 0})
	return &task.Episode{
		ID:             "demo-1",
		SceneID:        "scenes/demo.glb",
		ObjectCategory: "chair",
		StartPosition:  mat.NewVecDense(3, []float64{0, 0, 0}),
		Goals: []task.ObjectGoal{
			{
				ObjectID:       "chair_0",
				ObjectNameID:   3,
				ObjectName:     "chair",
				ObjectCategory: "chair",
				RoomID:         "3",
				RoomName:       "bedroom",
				Position:       goal,
				ViewPoints:     []task.ViewLocation{{Position: goal, IoU: 1.0}},
			},
		},
	}
}

// recordTrajectory fabricates the playback an online agent would have
// produced: a forward walk toward the goal with a panoramic sweep
// partway, growing the fog mask a little every step.
func recordTrajectory(seed uint64, sc *scene.Scene, episode *task.Episode) *sim.Playback {
	src := rand.NewSource(seed)
	jitter := distuv.Uniform{Min: -0.2, Max: 0.2, Src: src}

	const rows, cols = 20, 20
	fog := make([]int, rows*cols)
	revealed := 0
	reveal := func(cells int) *tensor.Dense {
		for i := 0; i < cells && revealed < len(fog); i++ {
			fog[revealed] = 1
			revealed++
		}
		backing := make([]int, len(fog))
		copy(backing, fog)
		return tensor.New(tensor.WithShape(rows, cols),
			tensor.WithBacking(backing))
	}

	goal := episode.Goals[0].Position

	var frames []sim.Frame
	x := 0.0
	step := func(action int, semantic *tensor.Dense) {
		if action == sim.MoveForward {
			x += 0.5
		}
		pos := mat.NewVecDense(3, []float64{x, 0, jitter.Rand()})
		diff := mat.NewVecDense(3, nil)
		diff.SubVec(goal, pos)
		frames = append(frames, sim.Frame{
			Action:   action,
			Position: pos,
			Map: topdown.New(topdown.NewGrid(rows, cols, topdown.MapFloor),
				reveal(4)),
			Semantic: semantic,
			Success:  mat.Norm(diff, 2) < 1.0,
		})
	}

	for i := 0; i < 14; i++ {
		step(sim.MoveForward, nil)
	}
	// A panoramic sweep in the hallway
	for i := 0; i < 4; i++ {
		step(sim.TurnLeft, nil)
	}
	for i := 0; i < 4; i++ {
		step(sim.TurnRight, nil)
	}
	// The goal object fills more of the frame as the agent closes in
	for i := 0; i < 20; i++ {
		step(sim.MoveForward, goalFrame(3, i))
	}
	step(sim.Stop, goalFrame(3, 20))

	return sim.NewPlayback(sc, episode.StartPosition, frames)
}

// goalFrame fabricates an 8x8 semantic frame with pixels cells of the
// given category.
func goalFrame(categoryID, pixels int) *tensor.Dense {
	cells := make([]int, 64)
	for i := 0; i < pixels && i < len(cells); i++ {
		cells[i] = categoryID
	}
	return tensor.New(tensor.WithShape(8, 8), tensor.WithBacking(cells))
}
