package topdown

import (
	"errors"
	"image"

	"github.com/fogleman/gg"
)

// Shades used when rendering a map snapshot.
var (
	obstacleShade = [3]float64{0.15, 0.15, 0.18}
	floorShade    = [3]float64{0.92, 0.92, 0.90}
	visitedShade  = [3]float64{0.30, 0.52, 0.85}
	fogDim        = 0.45
)

// Render draws the snapshot as an image with scale pixels per cell:
// navigable cells light, visited cells blue, cells outside the fog
// mask dimmed.
func (m *Map) Render(scale int) (image.Image, error) {
	if m == nil || m.Grid == nil {
		return nil, errors.New("render: no map snapshot")
	}
	if scale < 1 {
		scale = 1
	}

	shape := m.Grid.Shape()
	rows, cols := shape[0], shape[1]
	cells := m.Grid.Data().([]int)

	var fog []int
	if m.Fog != nil {
		fog = m.Fog.Data().([]int)
	}

	dc := gg.NewContext(cols*scale, rows*scale)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			label := cells[row*cols+col]

			shade := obstacleShade
			switch {
			case label > VisitedThreshold:
				shade = visitedShade
			case label == MapFloor:
				shade = floorShade
			}
			if fog != nil && fog[row*cols+col] == 0 {
				shade = [3]float64{shade[0] * fogDim, shade[1] * fogDim, shade[2] * fogDim}
			}

			dc.SetRGB(shade[0], shade[1], shade[2])
			dc.DrawRectangle(float64(col*scale), float64(row*scale),
				float64(scale), float64(scale))
			dc.Fill()
		}
	}

	return dc.Image(), nil
}

// SavePNG renders the snapshot and writes it to path.
func (m *Map) SavePNG(path string, scale int) error {
	img, err := m.Render(scale)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
