package enemy

import (
	"math"

	"github.com/lixenwraith/void-ascent/vmath"
)

type cellKey struct {
	X, Y int
}

// Grid is a uniform spatial hash over live enemies, rebuilt every frame
// Cells are keyed sparsely since the scrolling arena is unbounded
type Grid struct {
	cellSize  float64
	cells     map[cellKey][]*Enemy
	maxRadius float64
	occupied  int
}

// NewGrid creates a grid with the given cell edge
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]*Enemy, 64),
	}
}

// CellSize returns the cell edge length
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// CellOf returns the cell containing p
func (g *Grid) CellOf(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X / g.cellSize)), int(math.Floor(p.Y / g.cellSize))
}

// Rebuild clears all cells and inserts every hittable enemy
func (g *Grid) Rebuild(enemies []*Enemy) {
	// Drop stale keys once the map grows well past the population
	if len(g.cells) > 4*len(enemies)+64 {
		g.cells = make(map[cellKey][]*Enemy, 2*len(enemies)+16)
	} else {
		for k, bucket := range g.cells {
			clear(bucket)
			g.cells[k] = bucket[:0]
		}
	}

	g.maxRadius = 0
	g.occupied = 0
	for _, e := range enemies {
		if !e.Hittable() {
			continue
		}
		cx, cy := g.CellOf(e.Pos)
		k := cellKey{cx, cy}
		g.cells[k] = append(g.cells[k], e)
		g.occupied++
		if e.Radius > g.maxRadius {
			g.maxRadius = e.Radius
		}
	}
}

// Len returns the number of enemies inserted by the last Rebuild
func (g *Grid) Len() int {
	return g.occupied
}

// Query visits every enemy whose cell lies within reach of p
// Reach covers radius plus the largest enemy body so edge overlaps are not missed;
// callers apply their own exact distance test. Returning false stops the walk
func (g *Grid) Query(p vmath.Vec2, radius float64, fn func(e *Enemy) bool) {
	span := int(math.Ceil((radius + g.maxRadius) / g.cellSize))
	if span < 1 {
		span = 1
	}
	cx, cy := g.CellOf(p)
	for dy := -span; dy <= span; dy++ {
		for dx := -span; dx <= span; dx++ {
			for _, e := range g.cells[cellKey{cx + dx, cy + dy}] {
				if !fn(e) {
					return
				}
			}
		}
	}
}
