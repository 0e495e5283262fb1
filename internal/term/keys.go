package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lightcycle/lightcycle/internal/game"
)

// action is what one terminal key press means to the match.
type action struct {
	slot  int // player index for a move
	dir   game.Direction
	cmd   game.Command
	isCmd bool
}

// mapKey translates a key press. Player 1 steers with WASD, player 2 with
// the arrow keys.
func mapKey(k tcell.Key, r rune) (action, bool) {
	switch k {
	case tcell.KeyUp:
		return action{slot: 1, dir: game.Up}, true
	case tcell.KeyDown:
		return action{slot: 1, dir: game.Down}, true
	case tcell.KeyLeft:
		return action{slot: 1, dir: game.Left}, true
	case tcell.KeyRight:
		return action{slot: 1, dir: game.Right}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return action{cmd: game.CmdQuit, isCmd: true}, true
	case tcell.KeyRune:
	default:
		return action{}, false
	}

	switch r {
	case 'w', 'W':
		return action{slot: 0, dir: game.Up}, true
	case 's', 'S':
		return action{slot: 0, dir: game.Down}, true
	case 'a', 'A':
		return action{slot: 0, dir: game.Left}, true
	case 'd', 'D':
		return action{slot: 0, dir: game.Right}, true
	case ' ':
		return action{cmd: game.CmdStart, isCmd: true}, true
	case 'p', 'P':
		return action{cmd: game.CmdPause, isCmd: true}, true
	case 'q', 'Q':
		return action{cmd: game.CmdQuit, isCmd: true}, true
	}
	return action{}, false
}

// collect folds one frame's key presses into an input snapshot. Terminals
// report presses, not held state, so a key counts as held for the frame it
// arrived in.
func collect(actions []action) game.Input {
	var in game.Input
	for _, a := range actions {
		if a.isCmd {
			in.Commands = append(in.Commands, a.cmd)
			continue
		}
		c := &in.Players[a.slot]
		t := game.Toward(a.dir)
		c.Up = c.Up || t.Up
		c.Down = c.Down || t.Down
		c.Left = c.Left || t.Left
		c.Right = c.Right || t.Right
	}
	return in
}
