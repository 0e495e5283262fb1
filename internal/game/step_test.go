package game

import "testing"

func newSim(t *testing.T, opts ...SimOption) *TestSim {
	t.Helper()
	ts, err := NewTestSim(opts...)
	if err != nil {
		t.Fatalf("NewTestSim: %v", err)
	}
	return ts
}

func TestStep_MovesOneSpeedAndRecordsTrail(t *testing.T) {
	ts := newSim(t)
	ts.RunTicks(1)

	p1 := ts.Player(0)
	want := Rect{X: 105, Y: 300, W: 10, H: 10}
	if p1.Body != want {
		t.Fatalf("body after 1 tick = %v, want %v", p1.Body, want)
	}
	if p1.Trail.Len() != 1 {
		t.Fatalf("trail length = %d, want 1", p1.Trail.Len())
	}
	if p1.Trail.At(0) != p1.Body {
		t.Fatalf("trail[0] = %v, want body %v", p1.Trail.At(0), p1.Body)
	}
	if p2 := ts.Player(1); p2.Body.X != 695 {
		t.Fatalf("p2 x after 1 tick = %d, want 695", p2.Body.X)
	}
	if ts.Tick() != 1 {
		t.Fatalf("tick = %d, want 1", ts.Tick())
	}
}

func TestStep_TrailNeverExceedsBound(t *testing.T) {
	ts := newSim(t, WithTrailLength(7))
	ts.RunTicks(40)
	for i := 0; i < 2; i++ {
		if n := ts.Player(i).Trail.Len(); n != 7 {
			t.Fatalf("player %d trail length = %d, want 7", i+1, n)
		}
	}
}

func TestStep_OverlappingBodiesEndRound(t *testing.T) {
	ts := newSim(t)
	p1, p2 := ts.Player(0), ts.Player(1)
	p2.Body = p1.Body
	p2.Heading = p1.Heading

	ts.RunTicks(1)
	if ts.Match.State != StateGameOver {
		t.Fatalf("expected game over, got %s", ts.Match.State)
	}
	if p1.Cause != CauseHeadOn || p2.Cause != CauseHeadOn {
		t.Fatalf("expected head-on for both, got %s / %s", p1.Cause, p2.Cause)
	}
	if ts.Match.Result.Outcome != OutcomeDraw {
		t.Fatalf("expected draw, got %s", ts.Match.Result.Outcome)
	}
}

func TestStep_HeadOnFromAdjacentSpawns(t *testing.T) {
	ts := newSim(t,
		WithPlayer(0, 200, 300, Right),
		WithPlayer(1, 210, 300, Left),
	)
	if n := ts.RunTicks(10); n != 1 {
		t.Fatalf("expected round to end on tick 1, ran %d", n)
	}
	if !ts.Over() {
		t.Fatal("expected game over")
	}
}

// A square loop with the body probe lands on the tick-1 segment on tick 5.
func TestStep_SelfCollisionBodyProbe(t *testing.T) {
	ts := newSim(t,
		WithSpeed(10),
		WithProbe(ProbeBody),
		WithTurn(2, 0, Down),
		WithTurn(3, 0, Left),
		WithTurn(4, 0, Up),
		WithTurn(5, 0, Right),
	)
	ts.RunTicks(4)
	if !ts.Player(0).Alive {
		t.Fatalf("expected player 1 alive after 4 ticks, died of %s", ts.Player(0).Cause)
	}

	ts.RunTicks(1)
	p1 := ts.Player(0)
	if p1.Alive {
		t.Fatal("expected player 1 dead after closing the loop")
	}
	if p1.Cause != CauseSelf {
		t.Fatalf("expected self collision, got %s", p1.Cause)
	}
	if p1.Body != (Rect{X: 110, Y: 300, W: 10, H: 10}) {
		t.Fatalf("unexpected body %v", p1.Body)
	}
	if !ts.Over() || ts.Match.Result.Outcome != OutcomeP2Wins {
		t.Fatalf("expected p2 win, got state=%s outcome=%s", ts.Match.State, ts.Match.Result.Outcome)
	}
}

// With the leading-half probe at half-body speed, a one-tick U-turn runs the
// front of the cycle into the segment from tick 1.
func TestStep_SelfCollisionLeadingHalf(t *testing.T) {
	ts := newSim(t,
		WithTurn(2, 0, Down),
		WithTurn(3, 0, Left),
		WithTurn(4, 0, Up),
	)
	ts.RunTicks(3)
	if !ts.Player(0).Alive {
		t.Fatalf("expected player 1 alive after 3 ticks, died of %s", ts.Player(0).Cause)
	}
	ts.RunTicks(1)
	if p1 := ts.Player(0); p1.Alive || p1.Cause != CauseSelf {
		t.Fatalf("expected self collision on tick 4, alive=%v cause=%s", p1.Alive, p1.Cause)
	}
}

func TestStep_StraightLineNeverSelfCollides(t *testing.T) {
	for _, probe := range []Probe{ProbeBody, ProbeLeadingHalf} {
		opts := []SimOption{WithProbe(probe), WithPlayer(0, 10, 100, Right), WithPlayer(1, 10, 500, Right)}
		if probe == ProbeBody {
			opts = append(opts, WithSpeed(10))
		}
		ts := newSim(t, opts...)
		ts.RunTicks(50)
		if !ts.Player(0).Alive || !ts.Player(1).Alive {
			t.Fatalf("probe %s: expected both alive after 50 straight ticks", probe)
		}
	}
}

func TestStep_NoHeadSkipAlwaysHitsOwnHead(t *testing.T) {
	// The just-pushed segment equals the body; testing it would be instant death.
	ts := newSim(t)
	ts.RunTicks(1)
	p1 := ts.Player(0)
	if !AnyOverlap(p1.Body, p1.Trail.Segments(), false) {
		t.Fatal("expected unskipped self test to hit the head segment")
	}
	if AnyOverlap(p1.probe(ProbeLeadingHalf), p1.Trail.Segments(), true) {
		t.Fatal("expected skipped self test to pass")
	}
}

func TestStep_WallKillFreezesBody(t *testing.T) {
	ts := newSim(t, WithPlayer(0, 785, 300, Right))
	ts.RunTicks(1)
	if !ts.Player(0).Alive {
		t.Fatal("expected player 1 alive flush with the wall")
	}
	ts.RunTicks(1)
	p1 := ts.Player(0)
	if p1.Alive || p1.Cause != CauseWall {
		t.Fatalf("expected wall death, alive=%v cause=%s", p1.Alive, p1.Cause)
	}
	if p1.Body.X != 790 {
		t.Fatalf("expected body to stay at x=790, got %d", p1.Body.X)
	}
	if p1.Trail.Len() != 1 {
		t.Fatalf("expected no trail growth on the fatal tick, got %d", p1.Trail.Len())
	}
	if ts.Match.Result.Outcome != OutcomeP2Wins {
		t.Fatalf("expected p2 win, got %s", ts.Match.Result.Outcome)
	}
}

func TestStep_WallClampKeepsPlaying(t *testing.T) {
	ts := newSim(t, WithWalls(WallClamp), WithPlayer(0, 785, 300, Right))
	ts.RunTicks(3)
	p1 := ts.Player(0)
	if !p1.Alive {
		t.Fatalf("expected clamp to keep player 1 alive, died of %s", p1.Cause)
	}
	if p1.Body.X != 790 {
		t.Fatalf("expected body clamped at x=790, got %d", p1.Body.X)
	}
	if p1.Trail.Len() != 1 {
		t.Fatalf("expected stalled ticks not to grow the trail, got %d", p1.Trail.Len())
	}

	ts.withScriptAt(ts.Tick()+1, 0, Toward(Up))
	ts.RunTicks(1)
	if !p1.Alive || p1.Body != (Rect{X: 790, Y: 295, W: 10, H: 10}) {
		t.Fatalf("expected to slide up along the wall, alive=%v body=%v", p1.Alive, p1.Body)
	}
	if ts.Over() {
		t.Fatal("clamp policy should not end the round")
	}
}

func TestStep_OpponentTrailKills(t *testing.T) {
	ts := newSim(t,
		WithPlayer(0, 300, 150, Right),
		WithPlayer(1, 400, 100, Down),
	)
	n := ts.RunTicks(100)
	if n != 19 {
		t.Fatalf("expected round to end on tick 19, ended after %d", n)
	}
	p1, p2 := ts.Player(0), ts.Player(1)
	if p1.Alive || p1.Cause != CauseTrail {
		t.Fatalf("expected p1 killed by trail, alive=%v cause=%s", p1.Alive, p1.Cause)
	}
	if !p2.Alive {
		t.Fatalf("expected p2 alive, died of %s", p2.Cause)
	}
	if ts.Match.Result.Outcome != OutcomeP2Wins {
		t.Fatalf("expected p2 win, got %s", ts.Match.Result.Outcome)
	}
}

func TestStep_DoubleDeathEndsRoundOnce(t *testing.T) {
	ts := newSim(t,
		WithPlayer(0, 785, 300, Right),
		WithPlayer(1, 5, 300, Left),
	)
	ts.RunTicks(5)
	if ts.Player(0).Alive || ts.Player(1).Alive {
		t.Fatal("expected both players dead")
	}
	if ts.Match.Result.Outcome != OutcomeDraw {
		t.Fatalf("expected draw, got %s", ts.Match.Result.Outcome)
	}
	if ts.Match.Score.Rounds != 1 || ts.Match.Score.Draws != 1 {
		t.Fatalf("expected one drawn round, got %+v", ts.Match.Score)
	}
	if n := ts.Match.Log.Count(CategoryRound, ""); n != 1 {
		t.Fatalf("expected one round entry, got %d", n)
	}
	if n := ts.Match.Log.Count(CategoryDeath, string(CauseWall)); n != 2 {
		t.Fatalf("expected two wall deaths logged, got %d", n)
	}
}

func TestStep_DeadPlayerIsFrozen(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRound(cfg)
	r.Step([2]Controls{})
	p1 := r.Players[0]
	p1.kill(CauseWall, r.Tick)

	body, heading, segs := p1.Body, p1.Heading, p1.Trail.Segments()
	for i := 0; i < 3; i++ {
		r.Step([2]Controls{{Up: true}, {}})
	}
	if p1.Body != body || p1.Heading != heading {
		t.Fatalf("dead player moved: body %v→%v heading %s→%s", body, p1.Body, heading, p1.Heading)
	}
	got := p1.Trail.Segments()
	if len(got) != len(segs) || got[0] != segs[0] {
		t.Fatalf("dead player's trail changed: %v → %v", segs, got)
	}
	if p1.Cause != CauseWall {
		t.Fatalf("cause overwritten: %s", p1.Cause)
	}
}

func TestStep_BothPlayersShareOneClock(t *testing.T) {
	r := NewRound(DefaultConfig())
	for i := 0; i < 10; i++ {
		r.Step([2]Controls{})
	}
	if r.Players[0].Trail.Len() != 10 || r.Players[1].Trail.Len() != 10 {
		t.Fatalf("expected 10 segments each, got %d and %d",
			r.Players[0].Trail.Len(), r.Players[1].Trail.Len())
	}
}

// withScriptAt adds a scripted control after construction.
func (ts *TestSim) withScriptAt(tick, slot int, c Controls) {
	WithScript(tick, slot, c).fn(ts)
}

func TestRound_ResetRespawnsAndReusesTrails(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRound(cfg)
	trails := [2]*Trail{r.Players[0].Trail, r.Players[1].Trail}
	for i := 0; i < 5; i++ {
		r.Step([2]Controls{{Up: true}, {}})
	}
	r.Players[1].kill(CauseWall, r.Tick)

	r.Reset()
	if r.Tick != 0 {
		t.Fatalf("expected tick 0 after reset, got %d", r.Tick)
	}
	for i, p := range r.Players {
		if p.Trail != trails[i] {
			t.Fatalf("player %d trail was reallocated", i+1)
		}
		if p.Trail.Len() != 0 || p.Trail.Cap() != cfg.MaxTrailLength {
			t.Fatalf("player %d trail len=%d cap=%d after reset", i+1, p.Trail.Len(), p.Trail.Cap())
		}
		if p.Body != cfg.spawnRect(i) || p.Heading != cfg.Spawns[i].Heading {
			t.Fatalf("player %d not back on spawn: body=%v heading=%v", i+1, p.Body, p.Heading)
		}
		if !p.Alive || p.Cause != CauseNone || p.DiedAt != 0 {
			t.Fatalf("player %d not revived: alive=%v cause=%q died_at=%d", i+1, p.Alive, p.Cause, p.DiedAt)
		}
	}
}
