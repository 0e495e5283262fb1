package game

import (
	"fmt"
	"strings"
)

// RoundReport renders a plain-text summary of the current round and session,
// suitable for pasting into a bug report.
func RoundReport(m *Match, lastEntries int) string {
	if lastEntries <= 0 {
		lastEntries = 20
	}
	cfg := m.Config()
	r := m.Round

	var b strings.Builder
	fmt.Fprintf(&b, "--- lightcycle round report ---\n")
	fmt.Fprintf(&b, "arena=%dx%d size=%d speed=%d trail_max=%d walls=%s probe=%s\n",
		cfg.ArenaWidth, cfg.ArenaHeight, cfg.PlayerSize, cfg.Speed, cfg.MaxTrailLength, cfg.Walls, cfg.Probe)
	fmt.Fprintf(&b, "state=%s tick=%d score=%s rounds=%d\n\n", m.State, r.Tick, m.Score, m.Score.Rounds)

	for _, p := range r.Players {
		status := "alive"
		if !p.Alive {
			status = fmt.Sprintf("dead (%s at T=%d)", p.Cause, p.DiedAt)
		}
		fmt.Fprintf(&b, "%s: body=%s heading=%s trail=%d/%d %s\n",
			p.Name, p.Body, p.Heading, p.Trail.Len(), p.Trail.Cap(), status)
	}
	if m.Result.Outcome != OutcomeUndecided {
		fmt.Fprintf(&b, "result: %s after %d ticks, %s\n", m.Result.Outcome, m.Result.Ticks, m.Result.Description)
	}

	entries := m.Log.Entries()
	if len(entries) > lastEntries {
		entries = entries[len(entries)-lastEntries:]
	}
	if len(entries) > 0 {
		b.WriteString("\nevents:\n")
		for _, e := range entries {
			b.WriteString("  ")
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}
