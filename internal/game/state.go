// Package game drives a dungeon session: movement, melee, monster AI and the turn loop.
package game

// TurnState is the scheduler's position within a turn.
type TurnState int

const (
	// AwaitingPlayerInput - waiting for the next player action
	AwaitingPlayerInput TurnState = iota
	// ResolvingMonsterTurns - every AI actor is acting once, in roster order
	ResolvingMonsterTurns
)

// String returns a human-readable state name.
func (s TurnState) String() string {
	switch s {
	case AwaitingPlayerInput:
		return "awaiting_player_input"
	case ResolvingMonsterTurns:
		return "resolving_monster_turns"
	default:
		return "unknown"
	}
}

// TurnOutcome reports whether an input consumed the player's turn.
type TurnOutcome int

const (
	// DidNotTakeTurn - the input mapped to nothing; monsters did not act
	DidNotTakeTurn TurnOutcome = iota
	// TookTurn - the player acted and monsters had their turn
	TookTurn
)

// String returns a human-readable outcome name.
func (o TurnOutcome) String() string {
	switch o {
	case DidNotTakeTurn:
		return "did_not_take_turn"
	case TookTurn:
		return "took_turn"
	default:
		return "unknown"
	}
}

// Action is a player intent produced by an input source.
type Action int

const (
	ActionNone Action = iota
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveEast
	ActionMoveWest
	ActionMoveNorthEast
	ActionMoveNorthWest
	ActionMoveSouthEast
	ActionMoveSouthWest
)

// Delta returns the unit step for a movement action. ok is false for actions
// that do not move the player.
func (a Action) Delta() (dx, dy int, ok bool) {
	switch a {
	case ActionMoveNorth:
		return 0, -1, true
	case ActionMoveSouth:
		return 0, 1, true
	case ActionMoveEast:
		return 1, 0, true
	case ActionMoveWest:
		return -1, 0, true
	case ActionMoveNorthEast:
		return 1, -1, true
	case ActionMoveNorthWest:
		return -1, -1, true
	case ActionMoveSouthEast:
		return 1, 1, true
	case ActionMoveSouthWest:
		return -1, 1, true
	default:
		return 0, 0, false
	}
}

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveNorth:
		return "north"
	case ActionMoveSouth:
		return "south"
	case ActionMoveEast:
		return "east"
	case ActionMoveWest:
		return "west"
	case ActionMoveNorthEast:
		return "north_east"
	case ActionMoveNorthWest:
		return "north_west"
	case ActionMoveSouthEast:
		return "south_east"
	case ActionMoveSouthWest:
		return "south_west"
	default:
		return "unknown"
	}
}
