package measure

import (
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"github.com/Ram81/objectnav/scene"
	"github.com/Ram81/objectnav/task"
	"github.com/Ram81/objectnav/topdown"
)

// stubSim scripts the simulator collaborators for measure tests.
type stubSim struct {
	position mat.Vector
	scene    *scene.Scene
	dist     float64
}

func (s *stubSim) AgentPosition() mat.Vector { return s.position }

func (s *stubSim) GeodesicDistance(from, to mat.Vector) float64 { return s.dist }

func (s *stubSim) Scene() *scene.Scene { return s.scene }

type stubMapper struct {
	m *topdown.Map
}

func (s *stubMapper) TopDown() *topdown.Map { return s.m }

type stubSuccess struct {
	on bool
}

func (s *stubSuccess) Succeeded() bool { return s.on }

func position(x, y, z float64) mat.Vector {
	return mat.NewVecDense(3, []float64{x, y, z})
}

// floorMap returns a 10x10 all-floor map whose fog mask marks the
// first fogCells cells as seen.
func floorMap(fogCells int) *topdown.Map {
	fog := make([]int, 100)
	for i := 0; i < fogCells && i < len(fog); i++ {
		fog[i] = 1
	}
	return topdown.New(
		topdown.NewGrid(10, 10, topdown.MapFloor),
		tensor.New(tensor.WithShape(10, 10), tensor.WithBacking(fog)),
	)
}

// semanticFrame returns a 1x20 semantic frame with goalPixels cells of
// the given category id, the rest zero.
func semanticFrame(categoryID, goalPixels int) *tensor.Dense {
	cells := make([]int, 20)
	for i := 0; i < goalPixels && i < len(cells); i++ {
		cells[i] = categoryID
	}
	return tensor.New(tensor.WithShape(1, 20), tensor.WithBacking(cells))
}

func twoRoomScene() *scene.Scene {
	return scene.New([]scene.Region{
		{ID: "0", Category: "kitchen",
			AABB: scene.NewAABB([3]float64{0, 0, 0}, [3]float64{2, 1, 2})},
		{ID: "1", Category: "office",
			AABB: scene.NewAABB([3]float64{10, 0, 0}, [3]float64{2, 1, 2})},
	})
}

func goalEpisode(goalPosition mat.Vector) *task.Episode {
	return &task.Episode{
		ID:             "ep-1",
		SceneID:        "scenes/test.glb",
		ObjectCategory: "chair",
		StartPosition:  position(0, 0, 0),
		Goals: []task.ObjectGoal{
			{
				ObjectID:       "chair_0",
				ObjectCategory: "chair",
				Position:       goalPosition,
				ViewPoints: []task.ViewLocation{
					{Position: goalPosition, IoU: 1.0},
				},
			},
		},
	}
}
