// Package entity provides the actors that populate the dungeon: the player and monsters.
package entity

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/delve/internal/gamedata"
)

// ActorID is a stable handle for an actor, independent of its slot in a Roster.
type ActorID uuid.UUID

// NilActorID is the zero handle; no actor ever carries it.
var NilActorID ActorID

// String returns the canonical UUID form of the id.
func (id ActorID) String() string {
	return uuid.UUID(id).String()
}

// AIKind tags how an actor decides what to do on its turn.
type AIKind int

const (
	// AINone marks an actor that never acts on its own (the player, corpses).
	AINone AIKind = iota
	// AIBasic approaches the player while out of melee range, then attacks.
	AIBasic
)

// String returns a human-readable AI name.
func (k AIKind) String() string {
	switch k {
	case AINone:
		return "none"
	case AIBasic:
		return "basic"
	default:
		return "unknown"
	}
}

// Fighter holds the combat stats of an actor that can attack and be attacked.
type Fighter struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
}

// Actor is any entity on the map.
type Actor struct {
	ID      ActorID
	X, Y    int
	Glyph   rune
	Color   tcell.Color
	Name    string
	Blocks  bool     // Occupies its tile exclusively for movement
	Alive   bool
	Fighter *Fighter // nil for actors that cannot fight
	AI      AIKind
}

// NewActor creates a living actor with no combat stats and no AI.
func NewActor(x, y int, glyph rune, color tcell.Color, name string, blocks bool) *Actor {
	return &Actor{
		X:      x,
		Y:      y,
		Glyph:  glyph,
		Color:  color,
		Name:   name,
		Blocks: blocks,
		Alive:  true,
	}
}

// FromDef creates a blocking fighter from an archetype definition.
func FromDef(def *gamedata.ActorDef, x, y int, ai AIKind) *Actor {
	a := NewActor(x, y, def.GlyphRune(), def.TCellColor(), def.Name, true)
	a.Fighter = &Fighter{
		MaxHP:   def.HP,
		HP:      def.HP,
		Defense: def.Defense,
		Power:   def.Power,
	}
	a.AI = ai
	return a
}

// Position returns the actor's current x, y coordinates.
func (a *Actor) Position() (int, int) {
	return a.X, a.Y
}

// SetPosition moves the actor without any collision check.
func (a *Actor) SetPosition(x, y int) {
	a.X = x
	a.Y = y
}

// DistanceTo returns the Euclidean distance to another actor.
func (a *Actor) DistanceTo(other *Actor) float64 {
	return a.Distance(other.X, other.Y)
}

// Distance returns the Euclidean distance to a tile.
func (a *Actor) Distance(x, y int) float64 {
	dx := float64(x - a.X)
	dy := float64(y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// TakeDamage subtracts amount from HP, clamped at zero, and returns the damage applied.
// The actor dies the first time HP reaches zero: it stops blocking and loses its AI
// but stays in its roster.
func (a *Actor) TakeDamage(amount int) int {
	if amount <= 0 || a.Fighter == nil || !a.Alive {
		return 0
	}
	actual := amount
	if actual > a.Fighter.HP {
		actual = a.Fighter.HP
	}
	a.Fighter.HP -= actual
	if a.Fighter.HP <= 0 {
		a.die()
	}
	return actual
}

func (a *Actor) die() {
	a.Fighter.HP = 0
	a.Alive = false
	a.Blocks = false
	a.AI = AINone
}

// GetName returns the actor's name.
func (a *Actor) GetName() string { return a.Name }

// IsAlive reports whether the actor is still alive.
func (a *Actor) IsAlive() bool { return a.Alive }

// GetHP returns current HP, zero for non-fighters.
func (a *Actor) GetHP() int {
	if a.Fighter == nil {
		return 0
	}
	return a.Fighter.HP
}

// GetPower returns melee power, zero for non-fighters.
func (a *Actor) GetPower() int {
	if a.Fighter == nil {
		return 0
	}
	return a.Fighter.Power
}

// GetDefense returns defense, zero for non-fighters.
func (a *Actor) GetDefense() int {
	if a.Fighter == nil {
		return 0
	}
	return a.Fighter.Defense
}
