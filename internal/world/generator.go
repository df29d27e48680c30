package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/gamedata"
	"github.com/samdwyer/delve/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 45

	// Default room placement parameters
	DefaultRoomMinSize        = 6
	DefaultRoomMaxSize        = 10
	DefaultMaxRooms           = 30
	DefaultMaxMonstersPerRoom = 3
)

// GenParams controls dungeon generation.
type GenParams struct {
	Width              int
	Height             int
	RoomMinSize        int
	RoomMaxSize        int
	MaxRooms           int // Placement attempts, not a guaranteed room count
	MaxMonstersPerRoom int
}

// DefaultGenParams returns the standard 80x45 layout parameters.
func DefaultGenParams() GenParams {
	return GenParams{
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		RoomMinSize:        DefaultRoomMinSize,
		RoomMaxSize:        DefaultRoomMaxSize,
		MaxRooms:           DefaultMaxRooms,
		MaxMonstersPerRoom: DefaultMaxMonstersPerRoom,
	}
}

// Archetypes are the actor definitions the generator spawns from.
type Archetypes struct {
	Player   *gamedata.ActorDef
	Monsters *gamedata.MonsterTable
}

// Generation is the result of building a dungeon.
type Generation struct {
	Map    *Map
	Actors *entity.Roster
	Player entity.ActorID
	Rooms  []Rect // Accepted rooms in acceptance order
}

// Generate builds a dungeon: rooms placed at random and rejected on overlap, each
// accepted room joined to the previously accepted one by an L-shaped tunnel, the
// player at the center of the first room, and monsters scattered through every room.
// Every room is reachable from the player's room because each one is chained to its
// predecessor. Generation never fails; if every placement collides the map stays solid.
func Generate(ctx context.Context, p GenParams, rng *rand.Rand, arch Archetypes) Generation {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	p = p.normalized()

	m := NewMap(p.Width, p.Height)
	actors := entity.NewRoster()

	player := entity.FromDef(arch.Player, p.Width/2, p.Height/2, entity.AINone)
	playerID := actors.Add(player)
	actors.SetPlayer(playerID)

	rooms := make([]Rect, 0, p.MaxRooms)
	for i := 0; i < p.MaxRooms; i++ {
		w := p.RoomMinSize + rng.Intn(p.RoomMaxSize-p.RoomMinSize+1)
		h := p.RoomMinSize + rng.Intn(p.RoomMaxSize-p.RoomMinSize+1)
		if w >= p.Width || h >= p.Height {
			continue
		}
		room := NewRect(rng.Intn(p.Width-w), rng.Intn(p.Height-h), w, h)

		if intersectsAny(room, rooms) {
			continue
		}

		m.CarveRoom(room)
		newX, newY := room.Center()
		if len(rooms) == 0 {
			player.SetPosition(newX, newY)
		} else {
			prevX, prevY := rooms[len(rooms)-1].Center()
			carveCorridor(m, rng, prevX, prevY, newX, newY)
		}
		rooms = append(rooms, room)
	}

	for _, room := range rooms {
		placeMonsters(m, actors, rng, room, p.MaxMonstersPerRoom, arch.Monsters)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", p.Width),
		attribute.Int("dungeon.height", p.Height),
		attribute.Int("dungeon.room_attempts", p.MaxRooms),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int("dungeon.monster_count", actors.Len()-1),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return Generation{
		Map:    m,
		Actors: actors,
		Player: playerID,
		Rooms:  rooms,
	}
}

// normalized clamps parameters that would otherwise make the random draws panic.
func (p GenParams) normalized() GenParams {
	p.Width = max(p.Width, 1)
	p.Height = max(p.Height, 1)
	p.RoomMinSize = max(p.RoomMinSize, 1)
	p.RoomMaxSize = max(p.RoomMaxSize, p.RoomMinSize)
	p.MaxRooms = max(p.MaxRooms, 0)
	p.MaxMonstersPerRoom = max(p.MaxMonstersPerRoom, 0)
	return p
}

func intersectsAny(room Rect, rooms []Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveCorridor joins two points with an L-shaped tunnel; a coin flip decides
// whether the horizontal or the vertical leg comes first.
func carveCorridor(m *Map, rng *rand.Rand, x1, y1, x2, y2 int) {
	if rng.Intn(2) == 0 {
		m.CarveHorizontalTunnel(x1, x2, y1)
		m.CarveVerticalTunnel(y1, y2, x2)
	} else {
		m.CarveVerticalTunnel(y1, y2, x1)
		m.CarveHorizontalTunnel(x1, x2, y2)
	}
}

// placeMonsters makes up to maxMonsters placement attempts inside the room's interior.
// An attempt that lands on a blocked tile is dropped, not retried.
func placeMonsters(m *Map, actors *entity.Roster, rng *rand.Rand, room Rect, maxMonsters int, table *gamedata.MonsterTable) {
	spanX := room.X2 - room.X1 - 1
	spanY := room.Y2 - room.Y1 - 1
	if spanX <= 0 || spanY <= 0 || table == nil {
		return
	}

	count := rng.Intn(maxMonsters + 1)
	for i := 0; i < count; i++ {
		x := room.X1 + 1 + rng.Intn(spanX)
		y := room.Y1 + 1 + rng.Intn(spanY)
		if IsBlocked(m, actors, x, y) {
			continue
		}
		def := table.SpawnRandom(rng)
		if def == nil {
			return
		}
		actors.Add(entity.FromDef(def, x, y, entity.AIBasic))
	}
}
