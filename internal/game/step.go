package game

// Round is the pair of players for one round. Reset reuses it on restart.
type Round struct {
	cfg     Config
	Players [2]*Player
	Tick    int
}

// NewRound places both players at their spawns. cfg must already be valid.
func NewRound(cfg Config) *Round {
	return &Round{
		cfg:     cfg,
		Players: [2]*Player{NewPlayer(cfg, 0), NewPlayer(cfg, 1)},
	}
}

// Reset puts both players back on their spawns for a new round. Trail
// storage is kept and emptied.
func (r *Round) Reset() {
	r.Tick = 0
	for i, p := range r.Players {
		p.respawn(r.cfg, i)
	}
}

// TickReport describes what happened during one Step.
type TickReport struct {
	Tick   int
	Turned [2]bool
	Died   [2]bool // died during this tick
	Over   bool    // the round ended this tick
}

// Step advances both players one tick, player 1 first, then runs the
// cross-hazard check. A round ends at most once per Step no matter how many
// hazards fire.
func (r *Round) Step(in [2]Controls) TickReport {
	r.Tick++
	rep := TickReport{Tick: r.Tick}

	// 1-5. Per-player move and self-collision.
	for i, p := range r.Players {
		wasAlive := p.Alive
		rep.Turned[i] = r.advance(p, in[i])
		rep.Died[i] = wasAlive && !p.Alive
	}

	// 6. Cross hazards, decided only after both moves are resolved.
	p1, p2 := r.Players[0], r.Players[1]
	hitP1 := p2.Trail.Overlaps(p1.Body, false)
	hitP2 := p1.Trail.Overlaps(p2.Body, false)
	if Overlaps(p1.Body, p2.Body) {
		rep.Died[0] = p1.kill(CauseHeadOn, r.Tick) || rep.Died[0]
		rep.Died[1] = p2.kill(CauseHeadOn, r.Tick) || rep.Died[1]
	}
	if hitP1 {
		rep.Died[0] = p1.kill(CauseTrail, r.Tick) || rep.Died[0]
	}
	if hitP2 {
		rep.Died[1] = p2.kill(CauseTrail, r.Tick) || rep.Died[1]
	}
	rep.Over = !p1.Alive || !p2.Alive
	return rep
}

// advance runs the per-player part of a tick and reports whether the player
// turned. Dead players are frozen: neither body nor trail changes.
func (r *Round) advance(p *Player, c Controls) bool {
	if !p.Alive {
		return false
	}
	turned := p.Steer(c)

	next := p.Body.Translate(p.Heading.DX*r.cfg.Speed, p.Heading.DY*r.cfg.Speed)
	arena := r.cfg.Arena()
	if !next.Inside(arena) {
		if r.cfg.Walls != WallClamp {
			p.kill(CauseWall, r.Tick)
			return turned
		}
		// Sliding along a wall does not grow the trail; a stalled cycle would
		// otherwise land on its own previous segment.
		p.Body = next.ClampTo(arena)
		return turned
	}

	p.Body = next
	p.Trail.Push(next)

	// Index 0 is the segment just pushed, identical to the body.
	if p.Trail.Overlaps(p.probe(r.cfg.Probe), true) {
		p.kill(CauseSelf, r.Tick)
	}
	return turned
}
