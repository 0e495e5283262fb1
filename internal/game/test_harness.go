package game

import "math/rand"

// TestSim is a headless match harness used by tests and cmd/headless-report.
// It mirrors a front-end's loop but feeds scripted or random input instead of
// reading a keyboard.
type TestSim struct {
	Config Config
	Match  *Match

	scripts map[int][2]Controls // per-tick held controls
	rng     *rand.Rand
	chaos   float64 // per-tick chance of a random key press per player
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptConfig simOptionKind = iota // arena, speed, policies; applied first
	simOptPlayer                      // spawns; applied after the base config
	simOptInput                       // scripts and drivers; applied once the match exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithConfig replaces the whole base configuration.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.Config = cfg
	}}
}

// WithArena sets the arena dimensions.
func WithArena(w, h int) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.Config.ArenaWidth = w
		ts.Config.ArenaHeight = h
	}}
}

// WithPlayerSize sets the body edge length.
func WithPlayerSize(n int) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.Config.PlayerSize = n
	}}
}

// WithSpeed sets the per-tick movement.
func WithSpeed(n int) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.Config.Speed = n
	}}
}

// WithTrailLength sets the trail bound.
func WithTrailLength(n int) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.Config.MaxTrailLength = n
	}}
}

// WithWalls selects the wall policy.
func WithWalls(w WallPolicy) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.Config.Walls = w
	}}
}

// WithProbe selects the self-collision probe.
func WithProbe(p Probe) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.Config.Probe = p
	}}
}

// WithMenus toggles the menu and pause states.
func WithMenus(on bool) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.Config.Menus = on
	}}
}

// WithPlayer moves a player's spawn. slot is 0 or 1.
func WithPlayer(slot, x, y int, heading Direction) SimOption {
	return SimOption{simOptPlayer, func(ts *TestSim) {
		ts.Config.Spawns[slot].X = x
		ts.Config.Spawns[slot].Y = y
		ts.Config.Spawns[slot].Heading = heading
	}}
}

// WithScript holds controls c for player slot on the given tick (1-based).
func WithScript(tick, slot int, c Controls) SimOption {
	return SimOption{simOptInput, func(ts *TestSim) {
		in := ts.scripts[tick]
		in[slot] = c
		ts.scripts[tick] = in
	}}
}

// WithTurn is shorthand for a scripted turn toward d on the given tick.
func WithTurn(tick, slot int, d Direction) SimOption {
	return WithScript(tick, slot, Toward(d))
}

// WithRandomDriver presses a random movement key for each player with
// probability chance per tick, using a seeded RNG.
func WithRandomDriver(seed int64, chance float64) SimOption {
	return SimOption{simOptInput, func(ts *TestSim) {
		ts.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
		ts.chaos = chance
	}}
}

// NewTestSim builds a harness in ordered passes: base config, spawns, then the
// match and its inputs. The match is started immediately, so the first
// RunTicks call advances the simulation.
func NewTestSim(opts ...SimOption) (*TestSim, error) {
	ts := &TestSim{
		Config:  DefaultConfig(),
		scripts: map[int][2]Controls{},
	}
	for _, kind := range []simOptionKind{simOptConfig, simOptPlayer} {
		for _, o := range opts {
			if o.kind == kind {
				o.fn(ts)
			}
		}
	}
	m, err := NewMatch(ts.Config)
	if err != nil {
		return nil, err
	}
	ts.Match = m
	for _, o := range opts {
		if o.kind == simOptInput {
			o.fn(ts)
		}
	}
	if m.State == StateMenu {
		m.apply(CmdStart)
	}
	return ts, nil
}

// Player returns the player in slot 0 or 1 of the current round.
func (ts *TestSim) Player(slot int) *Player {
	return ts.Match.Round.Players[slot]
}

// Tick returns the current round's tick.
func (ts *TestSim) Tick() int {
	return ts.Match.Round.Tick
}

// Over reports whether the round has ended.
func (ts *TestSim) Over() bool {
	return ts.Match.State == StateGameOver
}

// Frame runs one loop iteration with the scripted input for the next tick
// plus any extra commands.
func (ts *TestSim) Frame(cmds ...Command) FrameReport {
	in := Input{Players: ts.inputFor(ts.Tick() + 1), Commands: cmds}
	return ts.Match.Frame(in)
}

// RunTicks advances up to n ticks, stopping early when the round ends.
// It returns the number of ticks actually run.
func (ts *TestSim) RunTicks(n int) int {
	ran := 0
	for ran < n && ts.Match.State == StatePlaying {
		ts.Frame()
		ran++
	}
	return ran
}

// RunUntil advances up to maxTicks, stopping early once predicate holds.
// It returns the tick at which the predicate held, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks && ts.Match.State == StatePlaying; i++ {
		ts.Frame()
		if predicate(ts) {
			return ts.Tick()
		}
	}
	return -1
}

// Restart begins a new round after game over without ticking it.
func (ts *TestSim) Restart() {
	ts.Match.apply(CmdStart)
}

func (ts *TestSim) inputFor(tick int) [2]Controls {
	in := ts.scripts[tick]
	if ts.rng == nil {
		return in
	}
	for i := range in {
		if in[i].Any() || ts.rng.Float64() >= ts.chaos {
			continue
		}
		in[i] = Toward([]Direction{Up, Down, Left, Right}[ts.rng.Intn(4)])
	}
	return in
}
