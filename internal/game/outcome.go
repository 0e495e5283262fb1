package game

import "fmt"

type Outcome int

const (
	OutcomeUndecided Outcome = iota
	OutcomeP1Wins
	OutcomeP2Wins
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeP1Wins:
		return "p1_wins"
	case OutcomeP2Wins:
		return "p2_wins"
	case OutcomeDraw:
		return "draw"
	case OutcomeUndecided:
		return "undecided"
	default:
		return "unknown"
	}
}

// RoundResult summarises a finished round.
type RoundResult struct {
	Outcome     Outcome
	Ticks       int
	Causes      [2]DeathCause
	TrailLens   [2]int
	Description string
}

// DetermineOutcome classifies the round from the players' life state.
func DetermineOutcome(r *Round) RoundResult {
	p1, p2 := r.Players[0], r.Players[1]
	res := RoundResult{
		Ticks:     r.Tick,
		Causes:    [2]DeathCause{p1.Cause, p2.Cause},
		TrailLens: [2]int{p1.Trail.Len(), p2.Trail.Len()},
	}
	switch {
	case !p1.Alive && !p2.Alive:
		res.Outcome = OutcomeDraw
		res.Description = fmt.Sprintf("both crashed (%s / %s)", p1.Cause, p2.Cause)
	case !p1.Alive:
		res.Outcome = OutcomeP2Wins
		res.Description = fmt.Sprintf("%s wins, %s crashed (%s)", p2.Name, p1.Name, p1.Cause)
	case !p2.Alive:
		res.Outcome = OutcomeP1Wins
		res.Description = fmt.Sprintf("%s wins, %s crashed (%s)", p1.Name, p2.Name, p2.Cause)
	default:
		res.Outcome = OutcomeUndecided
		res.Description = "round in progress"
	}
	return res
}

// Scoreboard tallies results for the current session only.
type Scoreboard struct {
	Wins   [2]int
	Draws  int
	Rounds int
}

// Record adds a finished round to the tally. Undecided results are ignored.
func (s *Scoreboard) Record(o Outcome) {
	switch o {
	case OutcomeP1Wins:
		s.Wins[0]++
	case OutcomeP2Wins:
		s.Wins[1]++
	case OutcomeDraw:
		s.Draws++
	default:
		return
	}
	s.Rounds++
}

func (s Scoreboard) String() string {
	return fmt.Sprintf("%d - %d (draws %d)", s.Wins[0], s.Wins[1], s.Draws)
}
