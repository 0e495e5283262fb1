// Package screen is the ebiten window front-end: it turns keyboard state
// into per-frame input snapshots and draws the match.
package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/lightcycle/lightcycle/internal/game"
)

// statusTicks is how long a HUD status line stays up (~2s at 60 TPS).
const statusTicks = 120

// Screen implements ebiten.Game around a Match.
type Screen struct {
	match    *game.Match
	bindings Bindings
	sounds   *sounds
	face     text.Face

	showFeed  bool
	status    string
	statusTTL int
}

// Option customises a Screen.
type Option func(*Screen)

// WithBindings replaces the default key bindings.
func WithBindings(b Bindings) Option {
	return func(s *Screen) { s.bindings = b }
}

// WithoutSound disables audio output.
func WithoutSound() Option {
	return func(s *Screen) { s.sounds = nil }
}

// New wraps m for ebiten.RunGame.
func New(m *game.Match, opts ...Option) *Screen {
	s := &Screen{
		match:    m,
		bindings: DefaultBindings(),
		sounds:   newSounds(),
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Update runs one loop iteration. ebiten calls it at a fixed TPS, which is
// the frame pacing: one call, at most one simulation tick.
func (s *Screen) Update() error {
	in := readInput(s.bindings, ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	rep := s.match.Frame(in)
	s.sounds.react(rep)
	if rep.Quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(s.bindings.Feed) {
		s.showFeed = !s.showFeed
	}
	if inpututil.IsKeyJustPressed(s.bindings.Copy) && s.match.State != game.StatePlaying {
		s.setStatus(copyReport(s.match))
	}
	if s.statusTTL > 0 {
		s.statusTTL--
	}
	return nil
}

func (s *Screen) setStatus(msg string) {
	s.status = msg
	s.statusTTL = statusTicks
}

// Layout fixes the logical screen to the arena size.
func (s *Screen) Layout(_, _ int) (int, int) {
	cfg := s.match.Config()
	return cfg.ArenaWidth, cfg.ArenaHeight
}

// TPS converts the configured frame delay into ebiten ticks per second.
func TPS(cfg game.Config) int {
	if cfg.FrameDelay <= 0 {
		return ebiten.DefaultTPS
	}
	tps := int(1e9 / cfg.FrameDelay.Nanoseconds())
	if tps < 1 {
		return 1
	}
	return tps
}
