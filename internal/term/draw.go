package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/lightcycle/lightcycle/internal/game"
)

const (
	headRune  = '█'
	trailRune = '▓'
)

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (t *Term) draw() {
	t.screen.Clear()
	m := t.match
	if m.State != game.StateMenu {
		for _, p := range m.Round.Players {
			st := styleFor(p.Color)
			p.Trail.Each(func(r game.Rect) {
				t.fill(r, trailRune, st)
			})
		}
		for _, p := range m.Round.Players {
			t.fill(p.Body, headRune, styleFor(p.Color).Bold(true))
		}
	}

	cfg := m.Config()
	if lines := overlayLines(m.State, m.Result); lines != nil {
		y := cfg.ArenaHeight/2 - len(lines)/2
		for i, line := range lines {
			t.centered(y+i, line, tcell.StyleDefault.Bold(i == 0))
		}
	}
	p1, p2 := m.Round.Players[0], m.Round.Players[1]
	hud := fmt.Sprintf("%s %d : %d %s  T=%d  [%s]", p1.Name, m.Score.Wins[0], m.Score.Wins[1], p2.Name, m.Round.Tick, m.State)
	t.text(0, cfg.ArenaHeight, hud, tcell.StyleDefault.Reverse(true))
	t.screen.Show()
}

// fill paints every cell a rect covers.
func (t *Term) fill(r game.Rect, ch rune, st tcell.Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			t.screen.SetContent(x, y, ch, nil, st)
		}
	}
}

func (t *Term) text(x, y int, s string, st tcell.Style) {
	for i, ch := range []rune(s) {
		t.screen.SetContent(x+i, y, ch, nil, st)
	}
}

func (t *Term) centered(y int, s string, st tcell.Style) {
	w := t.match.Config().ArenaWidth
	x := (w - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	t.text(x, y, s, st)
}

// overlayLines is the terminal rendition of the menu and prompt screens.
func overlayLines(st game.State, res game.RoundResult) []string {
	switch st {
	case game.StateMenu:
		return []string{"TRON GAME", "Press SPACE to Start", "WASD / arrows to steer, P pause, Q quit"}
	case game.StatePaused:
		return []string{"PAUSED", "Press P to Resume"}
	case game.StateGameOver:
		lines := []string{"GAME OVER"}
		if res.Description != "" {
			lines = append(lines, res.Description)
		}
		return append(lines, "Press SPACE to Restart")
	}
	return nil
}
