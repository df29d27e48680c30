package world

import "github.com/zyedidia/generic/mapset"

// Visibility tracks what the player can currently see and what has been explored.
// The visible set is recomputed only when the origin moves.
type Visibility struct {
	m          *Map
	oracle     FOVOracle
	radius     int
	lightWalls bool
	algo       FOVAlgorithm

	visible  mapset.Set[Point]
	origin   Point
	dirty    bool
	computes int
}

// NewVisibility creates a tracker over m. The first Update always computes.
func NewVisibility(m *Map, oracle FOVOracle, radius int, lightWalls bool, algo FOVAlgorithm) *Visibility {
	return &Visibility{
		m:          m,
		oracle:     oracle,
		radius:     radius,
		lightWalls: lightWalls,
		algo:       algo,
		visible:    mapset.New[Point](),
		dirty:      true,
	}
}

// Update recomputes the visible set from (x, y) if the origin changed since the
// last computation, and marks every newly visible tile explored. It reports
// whether a recomputation happened.
func (v *Visibility) Update(x, y int) bool {
	origin := Point{X: x, Y: y}
	if !v.dirty && origin == v.origin {
		return false
	}

	visible := mapset.New[Point]()
	for _, p := range v.oracle.Compute(x, y, v.radius, v.lightWalls, v.algo) {
		if !v.m.InBounds(p.X, p.Y) {
			continue
		}
		visible.Put(p)
		v.m.markExplored(p.X, p.Y)
	}

	v.visible = visible
	v.origin = origin
	v.dirty = false
	v.computes++
	return true
}

// Invalidate forces the next Update to recompute.
func (v *Visibility) Invalidate() {
	v.dirty = true
}

// IsVisible reports whether (x, y) is in the current visible set.
func (v *Visibility) IsVisible(x, y int) bool {
	return v.visible.Has(Point{X: x, Y: y})
}

// IsExplored reports whether (x, y) has ever been visible.
func (v *Visibility) IsExplored(x, y int) bool {
	return v.m.Tile(x, y).Explored()
}

// VisibleCount returns the size of the current visible set.
func (v *Visibility) VisibleCount() int {
	return v.visible.Size()
}

// Computations returns how many times the visible set has been recomputed.
func (v *Visibility) Computations() int {
	return v.computes
}
