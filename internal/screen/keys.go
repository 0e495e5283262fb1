package screen

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lightcycle/lightcycle/internal/game"
)

// Bindings maps keyboard keys to player controls and commands.
type Bindings struct {
	Players [2]MoveKeys
	Start   ebiten.Key
	Pause   ebiten.Key
	Quit    ebiten.Key
	Copy    ebiten.Key // copy the round report to the clipboard
	Feed    ebiten.Key // toggle the event feed
}

// MoveKeys are one player's four movement keys.
type MoveKeys struct {
	Up, Down, Left, Right ebiten.Key
}

// DefaultBindings: WASD for player 1, arrows for player 2.
func DefaultBindings() Bindings {
	return Bindings{
		Players: [2]MoveKeys{
			{Up: ebiten.KeyW, Down: ebiten.KeyS, Left: ebiten.KeyA, Right: ebiten.KeyD},
			{Up: ebiten.KeyArrowUp, Down: ebiten.KeyArrowDown, Left: ebiten.KeyArrowLeft, Right: ebiten.KeyArrowRight},
		},
		Start: ebiten.KeySpace,
		Pause: ebiten.KeyP,
		Quit:  ebiten.KeyEscape,
		Copy:  ebiten.KeyC,
		Feed:  ebiten.KeyTab,
	}
}

// keyFunc reports a key's state: held for movement, just pressed for commands.
type keyFunc func(ebiten.Key) bool

// readInput builds the per-frame snapshot. Movement uses held state;
// commands fire only on the frame their key goes down.
func readInput(b Bindings, held, justPressed keyFunc) game.Input {
	var in game.Input
	for i, k := range b.Players {
		in.Players[i] = game.Controls{
			Up:    held(k.Up),
			Down:  held(k.Down),
			Left:  held(k.Left),
			Right: held(k.Right),
		}
	}
	if justPressed(b.Start) {
		in.Commands = append(in.Commands, game.CmdStart)
	}
	if justPressed(b.Pause) {
		in.Commands = append(in.Commands, game.CmdPause)
	}
	if justPressed(b.Quit) {
		in.Commands = append(in.Commands, game.CmdQuit)
	}
	return in
}
