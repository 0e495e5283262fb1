package screen

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/lightcycle/lightcycle/internal/game"
)

const sampleRate = 44100

// sounds holds the short synthesized blips played on match events.
type sounds struct {
	start *audio.Player
	turn  *audio.Player
	crash *audio.Player
	over  *audio.Player
}

func newSounds() *sounds {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &sounds{
		start: ctx.NewPlayerFromBytes(tone(660, 0.12, 0.15)),
		turn:  ctx.NewPlayerFromBytes(tone(1320, 0.03, 0.05)),
		crash: ctx.NewPlayerFromBytes(tone(110, 0.35, 0.25)),
		over:  ctx.NewPlayerFromBytes(tone(220, 0.5, 0.2)),
	}
}

// tone renders a decaying sine as 16-bit little-endian stereo PCM.
func tone(freq, durSec, volume float64) []byte {
	n := int(float64(sampleRate) * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-4 * t / durSec)
		v := int16(math.Sin(2*math.Pi*freq*t) * volume * math.MaxInt16 * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}

func replay(p *audio.Player) {
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

// react plays the sounds for one frame's events.
func (s *sounds) react(rep game.FrameReport) {
	if s == nil {
		return
	}
	if rep.From != game.StatePlaying && rep.To == game.StatePlaying && rep.From != game.StatePaused {
		replay(s.start)
	}
	if !rep.Ticked {
		return
	}
	if rep.Tick.Died[0] || rep.Tick.Died[1] {
		replay(s.crash)
	} else if rep.Tick.Turned[0] || rep.Tick.Turned[1] {
		replay(s.turn)
	}
	if rep.Tick.Over {
		replay(s.over)
	}
}
