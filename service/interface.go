// Package service defines the collaborator contracts the simulation core calls out to
// Rendering, input, audio and UI live outside the core; audio and UI receive events
// through event.Router, render and input are called directly
package service

import (
	"errors"

	"github.com/lixenwraith/void-ascent/vmath"
)

// Handle identifies a placed visual; zero is never a valid handle
type Handle uint64

// VisualKind selects how a collaborator draws an entity
type VisualKind uint8

const (
	VisualPlayer VisualKind = iota
	VisualEnemy
	VisualShot
	VisualEnemyShot
	VisualPickup
	VisualWormhole
	VisualKindCount
)

// Visual is the placement request for an entity
// Tag carries the enemy or pickup kind for VisualEnemy/VisualPickup
type Visual struct {
	Kind   VisualKind
	Tag    int
	Pos    vmath.Vec2
	Radius float64
}

// ErrInvalidVisual is returned by scenes rejecting a placement
var ErrInvalidVisual = errors.New("invalid visual")

// Scene is the render collaborator
// The core never reads graphics state back beyond the camera focus
type Scene interface {
	// PlaceVisual registers a visual; an error is a spawn failure for the caller
	PlaceVisual(v Visual) (Handle, error)

	// MoveVisual updates the position of a placed visual
	MoveVisual(h Handle, pos vmath.Vec2)

	// RemoveVisual drops a visual; unknown handles are ignored
	RemoveVisual(h Handle)

	// CameraFocus returns the point the camera is centred on
	CameraFocus() vmath.Vec2
}

// Intent is the per-frame input sensor reading
type Intent struct {
	Move  vmath.Vec2 // Normalized or zero
	Fire  bool
	Dash  bool
	Pause bool // Level; the session edge-detects it
}

// InputSource supplies one Intent per frame
type InputSource interface {
	Poll() Intent
}
