// Package task defines the object-goal navigation episode description
// and the goal sensor derived from it. Episodes are supplied by the
// host at episode reset and treated as read-only by every measure.
package task

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
)

// ViewLocation is a navigable position around a goal object from which
// the object is visible. IoU scores how well the object fills a
// rectangle centered in the view from that position: 1.0 means the
// rectangle holds the whole object and nothing else.
type ViewLocation struct {
	Position mat.Vector
	IoU      float64
}

// ObjectGoal is a navigation target described by an object instance.
// ViewPoints are the positions from which reaching the object counts;
// metrics that need a goal position fall back to Position when no
// viewpoints were annotated.
type ObjectGoal struct {
	ObjectID       string
	ObjectNameID   int
	ObjectName     string
	ObjectCategory string
	RoomID         string
	RoomName       string
	Position       mat.Vector
	ViewPoints     []ViewLocation
}

// Episode describes one object-goal navigation episode: where the
// agent starts, which scene it is in, and which object category it
// must reach.
type Episode struct {
	ID             string
	SceneID        string
	ObjectCategory string
	StartPosition  mat.Vector
	Goals          []ObjectGoal
}

// GoalsKey returns the key used to group cached goals by scene and
// object category.
func (e *Episode) GoalsKey() string {
	return fmt.Sprintf("%s_%s", filepath.Base(e.SceneID), e.ObjectCategory)
}
