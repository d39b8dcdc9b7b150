package render

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/lixenwraith/void-ascent/service"
	"github.com/lixenwraith/void-ascent/vmath"
)

// Scene is the visual registry the simulation places entities into
// The camera follows the player visual unless pinned with SetFocus
type Scene struct {
	mu      sync.RWMutex
	next    service.Handle
	visuals map[service.Handle]service.Visual
	player  service.Handle
	focus   vmath.Vec2
	pinned  bool
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{visuals: make(map[service.Handle]service.Visual)}
}

// PlaceVisual implements service.Scene
func (s *Scene) PlaceVisual(v service.Visual) (service.Handle, error) {
	if v.Kind >= service.VisualKindCount {
		return 0, fmt.Errorf("kind %d: %w", v.Kind, service.ErrInvalidVisual)
	}
	if !finite(v.Pos) || v.Radius < 0 || math.IsNaN(v.Radius) {
		return 0, fmt.Errorf("pos %v radius %.2f: %w", v.Pos, v.Radius, service.ErrInvalidVisual)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	s.visuals[h] = v
	if v.Kind == service.VisualPlayer {
		s.player = h
		if !s.pinned {
			s.focus = v.Pos
		}
	}
	return h, nil
}

// MoveVisual implements service.Scene
func (s *Scene) MoveVisual(h service.Handle, pos vmath.Vec2) {
	if !finite(pos) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visuals[h]
	if !ok {
		return
	}
	v.Pos = pos
	s.visuals[h] = v
	if h == s.player && !s.pinned {
		s.focus = pos
	}
}

// RemoveVisual implements service.Scene
func (s *Scene) RemoveVisual(h service.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.visuals, h)
	if h == s.player {
		s.player = 0
	}
}

// CameraFocus implements service.Scene
func (s *Scene) CameraFocus() vmath.Vec2 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.focus
}

// SetFocus pins the camera; Unpin returns it to the player
func (s *Scene) SetFocus(p vmath.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focus = p
	s.pinned = true
}

func (s *Scene) Unpin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pinned = false
	if v, ok := s.visuals[s.player]; ok {
		s.focus = v.Pos
	}
}

// Len returns the number of placed visuals
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.visuals)
}

// Snapshot appends visuals to buf in draw order: kind ascending, then placement order
func (s *Scene) Snapshot(buf []service.Visual) []service.Visual {
	s.mu.RLock()
	handles := make([]service.Handle, 0, len(s.visuals))
	for h := range s.visuals {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool {
		a, b := s.visuals[handles[i]], s.visuals[handles[j]]
		if a.Kind != b.Kind {
			return drawOrder[a.Kind] < drawOrder[b.Kind]
		}
		return handles[i] < handles[j]
	})
	for _, h := range handles {
		buf = append(buf, s.visuals[h])
	}
	s.mu.RUnlock()
	return buf
}

// drawOrder places later entries on top
var drawOrder = [service.VisualKindCount]int{
	service.VisualWormhole:  0,
	service.VisualPickup:    1,
	service.VisualEnemy:     2,
	service.VisualEnemyShot: 3,
	service.VisualShot:      4,
	service.VisualPlayer:    5,
}

func finite(p vmath.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
