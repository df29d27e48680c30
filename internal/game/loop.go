package game

import (
	"context"
	"errors"
)

// ErrQuit is returned by an InputSource when the player asks to leave.
var ErrQuit = errors.New("quit")

// InputSource yields player actions. NextAction blocks until an input arrives.
type InputSource interface {
	NextAction(ctx context.Context) (Action, error)
}

// Presenter draws the session.
type Presenter interface {
	Render(s *Session)
}

// Run renders, waits for input and advances the session until the input source
// returns ErrQuit (nil is returned), another error, or ctx is done.
func Run(ctx context.Context, s *Session, in InputSource, out Presenter) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		out.Render(s)

		action, err := in.NextAction(ctx)
		if errors.Is(err, ErrQuit) {
			s.logger.Info("quit", "turn", s.turn)
			return nil
		}
		if err != nil {
			return err
		}
		if s.AdvanceTurn(ctx, action) == DidNotTakeTurn {
			s.logger.Debug("input ignored", "action", action)
		}
	}
}
