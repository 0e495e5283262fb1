package game

import "image/color"

// Direction is a unit heading. The zero value is not a valid heading.
type Direction struct {
	DX int
	DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Valid reports whether d is one of the four unit headings.
func (d Direction) Valid() bool {
	return d == Up || d == Down || d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// DeathCause records which hazard ended a player's round.
type DeathCause string

const (
	CauseNone   DeathCause = ""
	CauseWall   DeathCause = "wall"
	CauseSelf   DeathCause = "self"
	CauseTrail  DeathCause = "trail"   // ran into the opponent's trail
	CauseHeadOn DeathCause = "head-on" // bodies met
)

// Player is one light cycle: its head, heading, trail and life state.
type Player struct {
	Name    string
	Color   color.RGBA
	Body    Rect
	Heading Direction
	Trail   *Trail
	Alive   bool
	Cause   DeathCause
	DiedAt  int // tick of death, valid when !Alive
}

// NewPlayer builds a player at its spawn with an empty trail.
func NewPlayer(cfg Config, slot int) *Player {
	s := cfg.Spawns[slot]
	p := &Player{
		Name:  s.Name,
		Color: s.Color,
		Trail: NewTrail(cfg.MaxTrailLength),
	}
	p.respawn(cfg, slot)
	return p
}

// respawn restores the round-start state of the player in slot.
func (p *Player) respawn(cfg Config, slot int) {
	p.Body = cfg.spawnRect(slot)
	p.Heading = cfg.Spawns[slot].Heading
	p.Trail.Reset()
	p.Alive = true
	p.Cause = CauseNone
	p.DiedAt = 0
}

// Steer applies the turn rule for one tick and reports whether the heading
// changed. Every command is checked against the heading held at the start of
// the tick, so at most one turn takes effect and reversals are impossible.
// Commands are considered in the order up, down, left, right; a later
// accepted command replaces an earlier one.
func (p *Player) Steer(c Controls) bool {
	cur := p.Heading
	next := cur
	if c.Up && cur.DY == 0 {
		next = Up
	}
	if c.Down && cur.DY == 0 {
		next = Down
	}
	if c.Left && cur.DX == 0 {
		next = Left
	}
	if c.Right && cur.DX == 0 {
		next = Right
	}
	if next == cur {
		return false
	}
	p.Heading = next
	return true
}

// kill marks the player dead. Only the first call has any effect.
func (p *Player) kill(cause DeathCause, tick int) bool {
	if !p.Alive {
		return false
	}
	p.Alive = false
	p.Cause = cause
	p.DiedAt = tick
	return true
}

// probe returns the part of the body tested against the player's own trail.
func (p *Player) probe(kind Probe) Rect {
	if kind == ProbeBody {
		return p.Body
	}
	b := p.Body
	switch p.Heading {
	case Right:
		half := b.W / 2
		return Rect{X: b.Right() - half, Y: b.Y, W: half, H: b.H}
	case Left:
		return Rect{X: b.X, Y: b.Y, W: b.W / 2, H: b.H}
	case Down:
		half := b.H / 2
		return Rect{X: b.X, Y: b.Bottom() - half, W: b.W, H: half}
	case Up:
		return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H / 2}
	}
	return b
}
