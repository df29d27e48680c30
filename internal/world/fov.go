package world

import "fmt"

// DefaultFOVRadius is how far the player sees, in tiles.
const DefaultFOVRadius = 10

// FOVAlgorithm selects how an oracle computes the visible set.
type FOVAlgorithm int

const (
	// FOVBasic casts a Bresenham line to every tile within the radius.
	FOVBasic FOVAlgorithm = iota
)

// String returns the algorithm's config name.
func (a FOVAlgorithm) String() string {
	switch a {
	case FOVBasic:
		return "basic"
	default:
		return "unknown"
	}
}

// ParseFOVAlgorithm maps a config name to an algorithm.
func ParseFOVAlgorithm(name string) (FOVAlgorithm, error) {
	switch name {
	case "", "basic":
		return FOVBasic, nil
	default:
		return FOVBasic, fmt.Errorf("unknown fov algorithm %q", name)
	}
}

// FOVOracle computes the set of tiles visible from an origin.
// Tile properties are registered once, after generation.
type FOVOracle interface {
	SetProperties(x, y int, transparent, walkable bool)
	Compute(originX, originY, radius int, lightWalls bool, algo FOVAlgorithm) []Point
}

// RegisterFOV copies the map's transparency and walkability into the oracle.
func RegisterFOV(m *Map, oracle FOVOracle) {
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			t := m.Tile(x, y)
			oracle.SetProperties(x, y, !t.BlockSight, !t.Blocked)
		}
	}
}

// BresenhamFOV is the default oracle. A tile is visible when it lies within the
// Euclidean radius and every tile strictly between it and the origin is transparent.
// Tiles start opaque until registered.
type BresenhamFOV struct {
	width, height int
	transparent   []bool
	walkable      []bool
}

// NewBresenhamFOV creates an oracle for a width x height map.
func NewBresenhamFOV(width, height int) *BresenhamFOV {
	return &BresenhamFOV{
		width:       width,
		height:      height,
		transparent: make([]bool, width*height),
		walkable:    make([]bool, width*height),
	}
}

func (f *BresenhamFOV) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// SetProperties records whether a tile lets sight and movement through.
func (f *BresenhamFOV) SetProperties(x, y int, transparent, walkable bool) {
	if !f.inBounds(x, y) {
		return
	}
	f.transparent[y*f.width+x] = transparent
	f.walkable[y*f.width+x] = walkable
}

func (f *BresenhamFOV) isTransparent(x, y int) bool {
	return f.inBounds(x, y) && f.transparent[y*f.width+x]
}

// Compute returns every tile visible from the origin. A radius of zero or less
// means unlimited. With lightWalls set, opaque tiles at the end of a clear line
// are visible too, so the player sees the walls of a lit room.
func (f *BresenhamFOV) Compute(originX, originY, radius int, lightWalls bool, _ FOVAlgorithm) []Point {
	if !f.inBounds(originX, originY) {
		return nil
	}

	minX, maxX := 0, f.width-1
	minY, maxY := 0, f.height-1
	if radius > 0 {
		minX, maxX = max(minX, originX-radius), min(maxX, originX+radius)
		minY, maxY = max(minY, originY-radius), min(maxY, originY+radius)
	}

	visible := []Point{{X: originX, Y: originY}}
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			if x == originX && y == originY {
				continue
			}
			dx, dy := x-originX, y-originY
			if radius > 0 && dx*dx+dy*dy > radius*radius {
				continue
			}
			if !lightWalls && !f.isTransparent(x, y) {
				continue
			}
			if f.lineClear(originX, originY, x, y) {
				visible = append(visible, Point{X: x, Y: y})
			}
		}
	}
	return visible
}

// lineClear walks a Bresenham line and reports whether every tile strictly
// between the endpoints is transparent.
func (f *BresenhamFOV) lineClear(x0, y0, x1, y1 int) bool {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	stepX, stepY := sign(x1-x0), sign(y1-y0)
	err := dx + dy

	x, y := x0, y0
	for {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += stepX
		}
		if e2 <= dx {
			err += dx
			y += stepY
		}
		if x == x1 && y == y1 {
			return true
		}
		if !f.isTransparent(x, y) {
			return false
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
