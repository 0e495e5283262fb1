package game

// State is the mode of the game loop.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateQuit // terminal
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// InitialState is Menu, or Playing when menus are disabled.
func InitialState(menus bool) State {
	if menus {
		return StateMenu
	}
	return StatePlaying
}

// Transition returns the state after cmd is applied to s, and whether the
// round must be rebuilt. Commands that do not apply in s leave it unchanged.
// With menus disabled, pause is ignored.
func Transition(s State, cmd Command, menus bool) (next State, reset bool) {
	if s == StateQuit {
		return s, false
	}
	switch cmd {
	case CmdQuit:
		return StateQuit, false
	case CmdStart:
		switch s {
		case StateMenu:
			return StatePlaying, false
		case StateGameOver:
			return StatePlaying, true
		}
	case CmdPause:
		if !menus {
			return s, false
		}
		switch s {
		case StatePlaying:
			return StatePaused, false
		case StatePaused:
			return StatePlaying, false
		}
	}
	return s, false
}
