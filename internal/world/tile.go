// Package world provides the tile grid, dungeon generation and visibility tracking.
package world

// Tile is the terrain state of one grid cell.
type Tile struct {
	Blocked    bool // Impassable for movement
	BlockSight bool // Opaque for field of view
	explored   bool
}

var (
	// Wall is a solid tile that blocks movement and sight.
	Wall = Tile{Blocked: true, BlockSight: true}
	// Floor is an open tile.
	Floor = Tile{}
)

// Explored reports whether the tile has ever been visible to the player.
func (t Tile) Explored() bool {
	return t.explored
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}
