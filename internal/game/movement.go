package game

import (
	"math"

	"github.com/samdwyer/delve/internal/combat"
	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/world"
)

// PlayerResult is what a player move-or-attack did.
type PlayerResult int

const (
	PlayerBumped PlayerResult = iota // Destination blocked, nothing happened
	PlayerMoved
	PlayerAttacked
)

// MoveBy moves the actor by (dx, dy) if the destination is not blocked.
// It reports whether the actor moved.
func (s *Session) MoveBy(id entity.ActorID, dx, dy int) bool {
	a := s.actors.Get(id)
	if a == nil {
		return false
	}
	x, y := a.X+dx, a.Y+dy
	if world.IsBlocked(s.m, s.actors, x, y) {
		return false
	}
	a.SetPosition(x, y)
	return true
}

// PlayerMoveOrAttack attacks the first living fighter on the destination tile,
// otherwise tries to move there.
func (s *Session) PlayerMoveOrAttack(dx, dy int) PlayerResult {
	player := s.Player()
	if player == nil {
		return PlayerBumped
	}
	x, y := player.X+dx, player.Y+dy
	if target := s.actors.FighterAt(x, y); target != nil && target.ID != player.ID {
		s.attack(player, target)
		return PlayerAttacked
	}
	if s.MoveBy(player.ID, dx, dy) {
		return PlayerMoved
	}
	return PlayerBumped
}

// MoveTowards takes one step toward (tx, ty). The step is the direction vector
// normalized to unit length with each axis rounded on its own, so it may be
// diagonal. A blocked step is a no-op.
func (s *Session) MoveTowards(id entity.ActorID, tx, ty int) bool {
	a := s.actors.Get(id)
	if a == nil {
		return false
	}
	dx := float64(tx - a.X)
	dy := float64(ty - a.Y)
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return false
	}
	stepX := int(math.Round(dx / dist))
	stepY := int(math.Round(dy / dist))
	return s.MoveBy(id, stepX, stepY)
}

func (s *Session) attack(attacker, defender *entity.Actor) combat.MeleeResult {
	result := s.resolver.Resolve(attacker, defender)
	if result.Message == "" {
		return result
	}
	s.addMessage(result.Message)
	s.logger.Debug("melee",
		"attacker", attacker.Name,
		"defender", defender.Name,
		"damage", result.Damage,
		"hp", defender.GetHP(),
	)
	if result.Killed {
		s.logger.Info("actor died", "name", defender.Name, "turn", s.turn)
	}
	return result
}
