package game

// Controls is the held state of one player's four movement keys for a tick.
type Controls struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Any reports whether any movement key is held.
func (c Controls) Any() bool {
	return c.Up || c.Down || c.Left || c.Right
}

// Toward returns the controls that request heading d.
func Toward(d Direction) Controls {
	switch d {
	case Up:
		return Controls{Up: true}
	case Down:
		return Controls{Down: true}
	case Left:
		return Controls{Left: true}
	case Right:
		return Controls{Right: true}
	}
	return Controls{}
}

// Command is an edge-triggered request: it fires on the tick its key goes
// down, not while the key is held.
type Command int

const (
	CmdStart Command = iota // start from the menu, restart after game over
	CmdPause                // toggle pause
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Input is the snapshot a front-end gathers once per frame. The simulation
// never queries devices itself.
type Input struct {
	Players  [2]Controls
	Commands []Command
}
