package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delve/internal/game"
)

// NextAction blocks until a key press maps to an action. Esc, q and Ctrl-C
// return game.ErrQuit. A resize redraws the screen and keeps waiting; any other
// key yields game.ActionNone so the session can ignore it.
func (t *Terminal) NextAction(ctx context.Context) (game.Action, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.ActionNone, err
		}
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// PollEvent returns nil once the screen is finalized
			return game.ActionNone, game.ErrQuit
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			action, quit := keyAction(ev.Key(), ev.Rune())
			if quit {
				return game.ActionNone, game.ErrQuit
			}
			return action, nil
		}
	}
}

// keyAction maps a key to an action. Arrows, vi keys and the digits of a
// numeric keypad all move.
func keyAction(key tcell.Key, r rune) (action game.Action, quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.ActionNone, true
	case tcell.KeyUp:
		return game.ActionMoveNorth, false
	case tcell.KeyDown:
		return game.ActionMoveSouth, false
	case tcell.KeyLeft:
		return game.ActionMoveWest, false
	case tcell.KeyRight:
		return game.ActionMoveEast, false
	case tcell.KeyRune:
		return runeAction(r)
	}
	return game.ActionNone, false
}

func runeAction(r rune) (game.Action, bool) {
	switch r {
	case 'q', 'Q':
		return game.ActionNone, true
	case 'k', '8':
		return game.ActionMoveNorth, false
	case 'j', '2':
		return game.ActionMoveSouth, false
	case 'h', '4':
		return game.ActionMoveWest, false
	case 'l', '6':
		return game.ActionMoveEast, false
	case 'y', '7':
		return game.ActionMoveNorthWest, false
	case 'u', '9':
		return game.ActionMoveNorthEast, false
	case 'b', '1':
		return game.ActionMoveSouthWest, false
	case 'n', '3':
		return game.ActionMoveSouthEast, false
	}
	return game.ActionNone, false
}
