package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/telemetry"
)

// AdvanceTurn applies one player action. Inputs that are not moves, or any
// input once the player is dead, change nothing and return DidNotTakeTurn.
// Otherwise the player moves or attacks, the view is refreshed, and every
// living AI actor acts once in roster order.
func (s *Session) AdvanceTurn(ctx context.Context, action Action) TurnOutcome {
	_, span := telemetry.Tracer("game").Start(ctx, "turn.advance")
	defer span.End()
	span.SetAttributes(attribute.String("action", action.String()))

	player := s.Player()
	dx, dy, ok := action.Delta()
	if !ok || player == nil || !player.Alive {
		span.SetAttributes(attribute.String("outcome", DidNotTakeTurn.String()))
		return DidNotTakeTurn
	}

	result := s.PlayerMoveOrAttack(dx, dy)
	s.vis.Update(player.X, player.Y)
	s.turn++

	acted := 0
	if player.Alive {
		s.state = ResolvingMonsterTurns
		acted = s.resolveMonsterTurns()
	}
	s.state = AwaitingPlayerInput

	if !player.Alive {
		s.logger.Info("player died", "turn", s.turn)
	}

	span.SetAttributes(
		attribute.String("outcome", TookTurn.String()),
		attribute.Int("turn", s.turn),
		attribute.Int("monsters_acted", acted),
		attribute.Bool("player_attacked", result == PlayerAttacked),
		attribute.Int("player_hp", player.GetHP()),
		attribute.Int("player_x", player.X),
		attribute.Int("player_y", player.Y),
	)
	return TookTurn
}

func (s *Session) resolveMonsterTurns() int {
	acted := 0
	for _, a := range s.actors.All() {
		if a.ID == s.player || !a.Alive || a.AI == entity.AINone {
			continue
		}
		s.takeTurn(a)
		acted++
	}
	return acted
}
