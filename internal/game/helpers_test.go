package game

import (
	"testing"

	"github.com/samdwyer/delve/internal/config"
	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/gamedata"
	"github.com/samdwyer/delve/internal/world"
)

// seeAllFOV reports every in-bounds tile as visible.
type seeAllFOV struct {
	width, height int
}

func (f *seeAllFOV) SetProperties(x, y int, transparent, walkable bool) {}

func (f *seeAllFOV) Compute(originX, originY, radius int, lightWalls bool, _ world.FOVAlgorithm) []world.Point {
	points := make([]world.Point, 0, f.width*f.height)
	for x := 0; x < f.width; x++ {
		for y := 0; y < f.height; y++ {
			points = append(points, world.Point{X: x, Y: y})
		}
	}
	return points
}

// openMap returns a map whose interior is floor with a one-tile wall border.
func openMap(width, height int) *world.Map {
	m := world.NewMap(width, height)
	m.CarveRoom(world.NewRect(0, 0, width-1, height-1))
	return m
}

func hero(x, y int) *entity.Actor {
	def := &gamedata.ActorDef{Name: "player", Glyph: "@", Color: "#FFFFFF", HP: 30, Defense: 2, Power: 5}
	return entity.FromDef(def, x, y, entity.AINone)
}

func orc(x, y int) *entity.Actor {
	def := &gamedata.ActorDef{Name: "orc", Glyph: "o", Color: "#3F7F3F", HP: 10, Defense: 0, Power: 3}
	return entity.FromDef(def, x, y, entity.AIBasic)
}

// fixture builds a session around a hand-made map. The player is added first,
// then the monsters in the given order.
func fixture(t *testing.T, m *world.Map, oracle world.FOVOracle, player *entity.Actor, monsters ...*entity.Actor) *Session {
	t.Helper()
	actors := entity.NewRoster()
	if !actors.SetPlayer(actors.Add(player)) {
		t.Fatal("SetPlayer failed")
	}
	for _, mon := range monsters {
		actors.Add(mon)
	}
	if oracle == nil {
		oracle = world.NewBresenhamFOV(m.Width, m.Height)
	}
	o := buildOptions([]Option{WithFOV(oracle)})
	return newSession(m, actors, config.Default().FOV, o)
}
