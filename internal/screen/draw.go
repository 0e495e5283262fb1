package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lightcycle/lightcycle/internal/game"
)

var (
	bgColor     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	borderColor = color.RGBA{R: 40, G: 60, B: 90, A: 255}
	textColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	dimColor    = color.RGBA{R: 0, G: 0, B: 0, A: 170}
)

// overlayLines returns the title and prompt drawn over the arena in state st,
// or nil when the arena is shown bare.
func overlayLines(st game.State, res game.RoundResult) []string {
	switch st {
	case game.StateMenu:
		return []string{"TRON GAME", "Press SPACE to Start"}
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

func (s *Screen) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	cfg := s.match.Config()
	w, h := float32(cfg.ArenaWidth), float32(cfg.ArenaHeight)
	vector.StrokeRect(screen, 0.5, 0.5, w-1, h-1, 1.0, borderColor, false)

	if s.match.State != game.StateMenu {
		s.drawArena(screen)
	}
	if lines := overlayLines(s.match.State, s.match.Result); lines != nil {
		if s.match.State != game.StateMenu {
			vector.FillRect(screen, 0, 0, w, h, dimColor, false)
		}
		s.drawCentered(screen, lines)
	}
	s.drawHUD(screen)
	if s.showFeed {
		s.drawFeed(screen)
	}
}

// drawArena fills every trail segment, then both heads on top.
func (s *Screen) drawArena(screen *ebiten.Image) {
	players := s.match.Round.Players
	for _, p := range players {
		trailCol := p.Color
		trailCol.A = 200
		p.Trail.Each(func(r game.Rect) {
			fillRect(screen, r, trailCol)
		})
	}
	for _, p := range players {
		fillRect(screen, p.Body, p.Color)
		if !p.Alive {
			b := p.Body
			vector.StrokeRect(screen, float32(b.X)-2, float32(b.Y)-2, float32(b.W)+4, float32(b.H)+4,
				1.5, textColor, false)
		}
	}
}

func fillRect(screen *ebiten.Image, r game.Rect, c color.RGBA) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawCentered draws the first line at double size and the rest below it.
func (s *Screen) drawCentered(screen *ebiten.Image, lines []string) {
	cfg := s.match.Config()
	cx := float64(cfg.ArenaWidth) / 2
	y := float64(cfg.ArenaHeight)/2 - 50
	for i, line := range lines {
		scale := 1.5
		if i == 0 {
			scale = 3
		}
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(cx, y)
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, line, s.face, op)
		_, lh := text.Measure(line, s.face, 0)
		y += lh*scale + 10
	}
}

// drawHUD shows the session score and any transient status line.
func (s *Screen) drawHUD(screen *ebiten.Image) {
	players := s.match.Round.Players
	score := fmt.Sprintf("%s %d  :  %d %s", players[0].Name, s.match.Score.Wins[0], s.match.Score.Wins[1], players[1].Name)
	if s.match.Score.Draws > 0 {
		score += fmt.Sprintf("   draws %d", s.match.Score.Draws)
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(s.match.Config().ArenaWidth)/2, 6)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, score, s.face, op)

	if s.statusTTL > 0 && s.status != "" {
		ebitenutil.DebugPrintAt(screen, s.status, 6, s.match.Config().ArenaHeight-20)
	}
}

// drawFeed prints the recent match events in the top-left corner.
func (s *Screen) drawFeed(screen *ebiten.Image) {
	const lineH = 16
	for i, e := range s.match.Feed.Recent() {
		ebitenutil.DebugPrintAt(screen, e.String(), 6, 24+i*lineH)
	}
}
