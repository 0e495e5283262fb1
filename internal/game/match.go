package game

import "fmt"

// Match owns everything the loop driver mutates: the state machine, the
// current round and the session tally. It is not safe for concurrent use;
// exactly one loop drives it.
type Match struct {
	cfg    Config
	State  State
	Round  *Round
	Score  Scoreboard
	Result RoundResult // last finished round
	Log    *MatchLog
	Feed   *EventFeed
}

// NewMatch validates cfg and sets up the first round.
func NewMatch(cfg Config) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Match{
		cfg:   cfg,
		State: InitialState(cfg.Menus),
		Round: NewRound(cfg),
		Log:   NewMatchLog(),
		Feed:  NewEventFeed(),
	}, nil
}

// Config returns the configuration the match was built with.
func (m *Match) Config() Config {
	return m.cfg
}

// FrameReport describes one loop iteration.
type FrameReport struct {
	From, To State
	Ticked   bool
	Tick     TickReport
	Quit     bool
}

// Frame runs one loop iteration: apply the frame's commands to the state
// machine, then advance the round one tick if playing.
func (m *Match) Frame(in Input) FrameReport {
	rep := FrameReport{From: m.State}
	for _, cmd := range in.Commands {
		m.apply(cmd)
	}
	if m.State == StatePlaying {
		rep.Ticked = true
		rep.Tick = m.Round.Step(in.Players)
		m.record(rep.Tick)
		if rep.Tick.Over {
			m.finishRound()
		}
	}
	rep.To = m.State
	rep.Quit = m.State == StateQuit
	return rep
}

func (m *Match) apply(cmd Command) {
	next, reset := Transition(m.State, cmd, m.cfg.Menus)
	if reset {
		m.Round.Reset()
		m.Result = RoundResult{}
	}
	m.setState(next, cmd.String())
}

func (m *Match) setState(next State, reason string) {
	if next == m.State {
		return
	}
	m.logEvent("--", CategoryState, "transition", fmt.Sprintf("%s → %s (%s)", m.State, next, reason))
	m.State = next
}

func (m *Match) record(t TickReport) {
	for i, p := range m.Round.Players {
		if t.Turned[i] {
			m.logEvent(p.Name, CategoryTurn, "heading", p.Heading.String())
		}
		if t.Died[i] {
			m.logEvent(p.Name, CategoryDeath, string(p.Cause), p.Body.String())
		}
	}
}

func (m *Match) finishRound() {
	m.Result = DetermineOutcome(m.Round)
	m.Score.Record(m.Result.Outcome)
	m.logEvent("--", CategoryRound, m.Result.Outcome.String(), m.Result.Description)
	m.setState(StateGameOver, "crash")
}

func (m *Match) logEvent(player, category, key, value string) {
	e := m.Log.Add(m.Round.Tick, player, category, key, value)
	m.Feed.Add(e)
}
