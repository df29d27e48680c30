package entity

import "github.com/google/uuid"

// Roster is the ordered collection of every actor in a session.
// Order is insertion order and is never re-sorted; turn resolution depends on it.
type Roster struct {
	actors []*Actor
	slots  map[ActorID]int
	player ActorID
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		actors: make([]*Actor, 0),
		slots:  make(map[ActorID]int),
	}
}

// Add appends an actor, assigns it a fresh ID and returns that ID.
func (r *Roster) Add(a *Actor) ActorID {
	id := ActorID(uuid.New())
	a.ID = id
	r.slots[id] = len(r.actors)
	r.actors = append(r.actors, a)
	return id
}

// SetPlayer marks the actor with the given ID as the player.
// It returns false if the ID is not in the roster.
func (r *Roster) SetPlayer(id ActorID) bool {
	if _, ok := r.slots[id]; !ok {
		return false
	}
	r.player = id
	return true
}

// PlayerID returns the player's handle, or NilActorID if none was set.
func (r *Roster) PlayerID() ActorID {
	return r.player
}

// Player returns the player actor, or nil if none was set.
func (r *Roster) Player() *Actor {
	return r.Get(r.player)
}

// Get resolves an ID to its actor, or nil if unknown.
func (r *Roster) Get(id ActorID) *Actor {
	slot, ok := r.slots[id]
	if !ok {
		return nil
	}
	return r.actors[slot]
}

// All returns every actor in stored order. Callers must not append to the slice.
func (r *Roster) All() []*Actor {
	return r.actors
}

// Others returns every actor except the player, in stored order.
func (r *Roster) Others() []*Actor {
	others := make([]*Actor, 0, len(r.actors))
	for _, a := range r.actors {
		if a.ID != r.player {
			others = append(others, a)
		}
	}
	return others
}

// Len returns the number of actors, dead ones included.
func (r *Roster) Len() int {
	return len(r.actors)
}

// BlockingAt returns the blocking actor standing on (x, y), or nil.
func (r *Roster) BlockingAt(x, y int) *Actor {
	for _, a := range r.actors {
		if a.Blocks && a.X == x && a.Y == y {
			return a
		}
	}
	return nil
}

// FighterAt returns the living actor with combat stats standing on (x, y), or nil.
func (r *Roster) FighterAt(x, y int) *Actor {
	for _, a := range r.actors {
		if a.Alive && a.Fighter != nil && a.X == x && a.Y == y {
			return a
		}
	}
	return nil
}
