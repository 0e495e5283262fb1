// Package term is a tcell front-end that plays the match in a terminal, one
// cell per arena unit.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lightcycle/lightcycle/internal/game"
)

// Term drives a match on a tcell screen.
type Term struct {
	screen tcell.Screen
	match  *game.Match
	beeper *beeper
	events chan tcell.Event
	sleep  func(time.Duration)
}

// New wraps an initialised screen. Sound is opened unless silent is set.
func New(s tcell.Screen, m *game.Match, silent bool) *Term {
	t := &Term{
		screen: s,
		match:  m,
		events: make(chan tcell.Event, 32),
		sleep:  time.Sleep,
	}
	if !silent {
		t.beeper = newBeeper()
	}
	return t
}

// Run loops until the player quits. The caller owns screen.Fini. Each frame
// ends with a fixed delay, so a slow frame slows the game rather than being
// caught up.
func (t *Term) Run() {
	defer t.beeper.close()
	go t.pump()

	delay := t.match.Config().FrameDelay
	if delay <= 0 {
		delay = 50 * time.Millisecond
	}
	for {
		in := collect(t.drain())
		rep := t.match.Frame(in)
		t.beeper.react(rep)
		if rep.Quit {
			return
		}
		t.draw()
		t.sleep(delay)
	}
}

// pump forwards screen events to the loop; PollEvent returns nil once the
// screen is finalised.
func (t *Term) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		t.events <- ev
	}
}

// drain takes every event queued since the last frame without blocking.
func (t *Term) drain() []action {
	var actions []action
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a, ok := mapKey(ev.Key(), ev.Rune()); ok {
					actions = append(actions, a)
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return actions
		}
	}
}
