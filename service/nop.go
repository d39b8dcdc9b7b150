package service

import "github.com/lixenwraith/void-ascent/vmath"

// NopScene accepts every placement and draws nothing, for headless runs and tests
type NopScene struct {
	next   Handle
	Placed int
	Live   int
}

func (s *NopScene) PlaceVisual(v Visual) (Handle, error) {
	if v.Kind >= VisualKindCount {
		return 0, ErrInvalidVisual
	}
	s.next++
	s.Placed++
	s.Live++
	return s.next, nil
}

func (s *NopScene) MoveVisual(Handle, vmath.Vec2) {}

func (s *NopScene) RemoveVisual(h Handle) {
	if h != 0 && s.Live > 0 {
		s.Live--
	}
}

func (s *NopScene) CameraFocus() vmath.Vec2 { return vmath.Vec2{} }

// StaticInput returns the same Intent every frame
type StaticInput struct {
	Intent Intent
}

func (s *StaticInput) Poll() Intent { return s.Intent }
