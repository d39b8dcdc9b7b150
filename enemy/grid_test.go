package enemy

import (
	"testing"

	"github.com/lixenwraith/void-ascent/vmath"
)

// TestGridCellOfNegative verifies floor bucketing below zero
func TestGridCellOfNegative(t *testing.T) {
	g := NewGrid(4)
	tests := []struct {
		p      vmath.Vec2
		cx, cy int
	}{
		{vmath.V(0, 0), 0, 0},
		{vmath.V(3.99, 3.99), 0, 0},
		{vmath.V(4, 0), 1, 0},
		{vmath.V(-0.1, -4), -1, -1},
		{vmath.V(-4.1, 8.5), -2, 2},
	}
	for _, tt := range tests {
		cx, cy := g.CellOf(tt.p)
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("CellOf(%v): expected (%d,%d), got (%d,%d)", tt.p, tt.cx, tt.cy, cx, cy)
		}
	}
}

// TestGridQueryAcrossCells verifies neighbours across a cell boundary are visited
func TestGridQueryAcrossCells(t *testing.T) {
	g := NewGrid(4)
	a := &Enemy{ID: 1, Pos: vmath.V(3.9, 0), Radius: 0.5, Alive: true}
	b := &Enemy{ID: 2, Pos: vmath.V(4.1, 0), Radius: 0.5, Alive: true}
	far := &Enemy{ID: 3, Pos: vmath.V(40, 40), Radius: 0.5, Alive: true}
	dead := &Enemy{ID: 4, Pos: vmath.V(4, 0), Radius: 0.5, Alive: true, KillTracked: true}
	g.Rebuild([]*Enemy{a, b, far, dead})

	if g.Len() != 3 {
		t.Errorf("Expected 3 inserted, got %d", g.Len())
	}

	seen := map[uint64]bool{}
	g.Query(a.Pos, 1, func(e *Enemy) bool {
		seen[e.ID] = true
		return true
	})
	if !seen[2] {
		t.Error("Expected neighbour across boundary")
	}
	if seen[3] || seen[4] {
		t.Errorf("Expected far and dead excluded, got %v", seen)
	}
}

// TestGridQueryStops verifies returning false ends the walk
func TestGridQueryStops(t *testing.T) {
	g := NewGrid(4)
	var es []*Enemy
	for i := 0; i < 10; i++ {
		es = append(es, &Enemy{ID: uint64(i + 1), Pos: vmath.V(1, 1), Radius: 0.5, Alive: true})
	}
	g.Rebuild(es)

	n := 0
	g.Query(vmath.V(1, 1), 1, func(*Enemy) bool {
		n++
		return n < 3
	})
	if n != 3 {
		t.Errorf("Expected walk to stop at 3, got %d", n)
	}
}

// TestEdgeSpawnDistance verifies edge spawns land just outside the boundary
func TestEdgeSpawnDistance(t *testing.T) {
	rng := vmath.NewFastRand(9)
	s := EdgeSpawn{Center: vmath.V(1, 1), Boundary: 30}
	for i := 0; i < 20; i++ {
		p := s.SpawnPoint(rng, vmath.Vec2{})
		if d := p.Dist(s.Center); d < 31.999 || d > 32.001 {
			t.Errorf("Expected spawn at distance 32, got %f", d)
		}
	}

	above := AboveSpawn{Ahead: 24, HalfWidth: 10}
	p := above.SpawnPoint(rng, vmath.V(0, 100))
	if p.Y != 124 || p.X < -10 || p.X >= 10 {
		t.Errorf("Expected spawn above target in corridor, got %v", p)
	}
}
