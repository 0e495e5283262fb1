package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lightcycle/lightcycle/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	outcome game.Outcome
	ticks   int
	causes  [2]game.DeathCause
	trails  [2]int
	turns   [2]int
	timeout bool
}

type aggregate struct {
	runs     int
	score    game.Scoreboard
	timeouts int
	causes   map[string]int
	ticks    []int
	turns    int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var chance float64
	var walls string
	var probe string
	var envFile string

	flag.IntVar(&runs, "runs", 20, "number of headless rounds")
	flag.IntVar(&ticks, "ticks", 3000, "tick cap per round")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&chance, "chance", 0.05, "per-tick chance of a random key press per player")
	flag.StringVar(&walls, "walls", "", "wall policy override (kill|clamp)")
	flag.StringVar(&probe, "probe", "", "self-collision probe override (leading-half|body)")
	flag.StringVar(&envFile, "env", "", "optional .env file with LIGHTCYCLE_* settings")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if chance < 0 || chance > 1 {
		fmt.Println("error: -chance must be within [0,1]")
		return
	}

	cfg, err := buildConfig(envFile, walls, probe)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Headless Round Report ===\n")
	fmt.Printf("arena=%dx%d size=%d speed=%d walls=%s probe=%s runs=%d ticks=%d seed_base=%d seed_step=%d chance=%.2f\n\n",
		cfg.ArenaWidth, cfg.ArenaHeight, cfg.PlayerSize, cfg.Speed, cfg.Walls, cfg.Probe,
		runs, ticks, seedBase, seedStep, chance)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs, err := runRandomRound(cfg, i+1, seed, ticks, chance)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			os.Exit(1)
		}
		all = append(all, rs)
		printRun(os.Stdout, rs)
	}

	printAggregate(os.Stdout, summarize(all))
}

// buildConfig layers the optional env file and flag overrides on the defaults.
func buildConfig(envFile, walls, probe string) (game.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := game.LoadConfig(game.DefaultConfig(), files...)
	if err != nil {
		return cfg, err
	}
	if walls != "" {
		if cfg.Walls, err = game.ParseWallPolicy(walls); err != nil {
			return cfg, err
		}
	}
	if probe != "" {
		if cfg.Probe, err = game.ParseProbe(probe); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func runRandomRound(cfg game.Config, runIndex int, seed int64, ticks int, chance float64) (runStats, error) {
	ts, err := game.NewTestSim(
		game.WithConfig(cfg),
		game.WithRandomDriver(seed, chance),
	)
	if err != nil {
		return runStats{}, err
	}
	ts.RunTicks(ticks)

	rs := runStats{
		runIndex: runIndex,
		seed:     seed,
		ticks:    ts.Tick(),
		timeout:  !ts.Over(),
	}
	res := ts.Match.Result
	if rs.timeout {
		res = game.DetermineOutcome(ts.Match.Round)
	}
	rs.outcome = res.Outcome
	rs.causes = res.Causes
	rs.trails = res.TrailLens
	for i := range rs.turns {
		rs.turns[i] = countPlayerEntries(ts.Match.Log, ts.Player(i).Name, game.CategoryTurn)
	}
	return rs, nil
}

func countPlayerEntries(ml *game.MatchLog, player, category string) int {
	n := 0
	for _, e := range ml.FilterPlayer(player) {
		if e.Category == category {
			n++
		}
	}
	return n
}

func printRun(w io.Writer, rs runStats) {
	fmt.Fprintf(w, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	if rs.timeout {
		fmt.Fprintf(w, "outcome=timeout ticks=%d\n", rs.ticks)
	} else {
		fmt.Fprintf(w, "outcome=%s ticks=%d\n", rs.outcome, rs.ticks)
	}
	fmt.Fprintf(w, "causes: p1=%s p2=%s\n", causeLabel(rs.causes[0]), causeLabel(rs.causes[1]))
	fmt.Fprintf(w, "trail_len: p1=%d p2=%d turns: p1=%d p2=%d\n\n", rs.trails[0], rs.trails[1], rs.turns[0], rs.turns[1])
}

func causeLabel(c game.DeathCause) string {
	if c == game.CauseNone {
		return "alive"
	}
	return string(c)
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all), causes: map[string]int{}}
	for _, rs := range all {
		agg.turns += rs.turns[0] + rs.turns[1]
		if rs.timeout {
			agg.timeouts++
			continue
		}
		agg.score.Record(rs.outcome)
		agg.ticks = append(agg.ticks, rs.ticks)
		for _, c := range rs.causes {
			if c != game.CauseNone {
				agg.causes[string(c)]++
			}
		}
	}
	return agg
}

func printAggregate(w io.Writer, agg aggregate) {
	fmt.Fprintln(w, "=== Aggregate ===")
	fmt.Fprintf(w, "runs=%d decided=%d timeouts=%d\n", agg.runs, agg.score.Rounds, agg.timeouts)
	fmt.Fprintf(w, "score: %s\n", agg.score)
	fmt.Fprintf(w, "avg_round_ticks=%s avg_turns_per_run=%.1f\n", avgTickString(agg.ticks), avg(agg.turns, agg.runs))
	fmt.Fprintf(w, "death_causes: %s\n", joinCounts(agg.causes))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, ",")
}
