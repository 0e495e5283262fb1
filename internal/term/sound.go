package term

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lightcycle/lightcycle/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// beeper plays sine blips through the system speaker. A nil beeper is silent.
type beeper struct{}

// newBeeper opens the speaker. Audio is optional in a terminal, so a failure
// is logged and the game runs silent.
func newBeeper() *beeper {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio disabled: %v", err)
		return nil
	}
	return &beeper{}
}

func (b *beeper) blip(freq float64, d time.Duration) {
	if b == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (b *beeper) react(rep game.FrameReport) {
	if rep.From != game.StatePlaying && rep.To == game.StatePlaying && rep.From != game.StatePaused {
		b.blip(660, 120*time.Millisecond)
	}
	if !rep.Ticked {
		return
	}
	switch {
	case rep.Tick.Died[0] || rep.Tick.Died[1]:
		b.blip(110, 350*time.Millisecond)
	case rep.Tick.Turned[0] || rep.Tick.Turned[1]:
		b.blip(1320, 30*time.Millisecond)
	}
}

func (b *beeper) close() {
	if b == nil {
		return
	}
	speaker.Close()
}
