package game

import "github.com/samdwyer/delve/internal/entity"

// meleeRange is the distance below which a monster attacks instead of walking.
const meleeRange = 2.0

// takeTurn dispatches on the actor's AI variant.
func (s *Session) takeTurn(a *entity.Actor) {
	switch a.AI {
	case entity.AIBasic:
		s.basicTurn(a)
	case entity.AINone:
	}
}

// basicTurn: a monster the player can see closes in, then attacks once adjacent.
// Visibility is symmetric, so a monster out of the player's view stays put.
func (s *Session) basicTurn(monster *entity.Actor) {
	if !s.vis.IsVisible(monster.X, monster.Y) {
		return
	}
	player := s.Player()
	if player == nil {
		return
	}
	if monster.DistanceTo(player) >= meleeRange {
		s.MoveTowards(monster.ID, player.X, player.Y)
		return
	}
	if player.Alive {
		s.attack(monster, player)
	}
}
