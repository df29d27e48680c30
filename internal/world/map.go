package world

import "github.com/samdwyer/delve/internal/entity"

// Map is the tile grid for one session. Tiles are indexed [x][y].
type Map struct {
	Width  int
	Height int
	tiles  [][]Tile
}

// NewMap creates a map filled with walls.
func NewMap(width, height int) *Map {
	tiles := make([][]Tile, width)
	for x := range tiles {
		tiles[x] = make([]Tile, height)
		for y := range tiles[x] {
			tiles[x][y] = Wall
		}
	}
	return &Map{
		Width:  width,
		Height: height,
		tiles:  tiles,
	}
}

// InBounds reports whether (x, y) is on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Tile returns the tile at (x, y). Coordinates off the map read as Wall.
func (m *Map) Tile(x, y int) Tile {
	if !m.InBounds(x, y) {
		return Wall
	}
	return m.tiles[x][y]
}

// IsWall reports whether (x, y) is drawn as a wall.
func (m *Map) IsWall(x, y int) bool {
	return m.Tile(x, y).BlockSight
}

// SetTile replaces the terrain at (x, y), keeping its explored mark.
func (m *Map) SetTile(x, y int, t Tile) {
	if !m.InBounds(x, y) {
		return
	}
	t.explored = m.tiles[x][y].explored
	m.tiles[x][y] = t
}

// CarveRoom turns the interior of the rectangle into floor.
func (m *Map) CarveRoom(r Rect) {
	for x := r.X1 + 1; x < r.X2; x++ {
		for y := r.Y1 + 1; y < r.Y2; y++ {
			m.SetTile(x, y, Floor)
		}
	}
}

// CarveHorizontalTunnel carves floor from x1 to x2 inclusive along row y.
func (m *Map) CarveHorizontalTunnel(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.SetTile(x, y, Floor)
	}
}

// CarveVerticalTunnel carves floor from y1 to y2 inclusive along column x.
func (m *Map) CarveVerticalTunnel(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.SetTile(x, y, Floor)
	}
}

func (m *Map) markExplored(x, y int) {
	if m.InBounds(x, y) {
		m.tiles[x][y].explored = true
	}
}

// IsBlocked reports whether (x, y) cannot be entered: the tile is blocked, it is
// off the map, or a blocking actor stands on it. Monster placement during
// generation and all runtime movement go through this one check.
func IsBlocked(m *Map, actors *entity.Roster, x, y int) bool {
	if m.Tile(x, y).Blocked {
		return true
	}
	return actors != nil && actors.BlockingAt(x, y) != nil
}
