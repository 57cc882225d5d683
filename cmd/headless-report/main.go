package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Garsondee/Star-Shoot/internal/game"
	"github.com/Garsondee/Star-Shoot/internal/logging"
)

type runStats struct {
	runIndex int
	seed     int64

	outcome     game.MatchOutcome
	description string
	frames      int
	maxFrames   int

	playerScore int
	alienScore  int
	player      game.SideStats
	alien       game.SideStats

	itemsSpawned int
	itemsExpired int

	firstCastFrame   [2]int
	firstPickupFrame [2]int
	firstSpeedFrame  [2]int
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var logLevel string
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.IntVar(&frames, "frames", 4800, "frame cap per match")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&logLevel, "log-level", "warn", "match log level")
	flag.BoolVar(&verbose, "verbose", false, "print each side's event log for every run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}

	log, closer, err := logging.New(logging.Options{Level: logLevel, Console: os.Stderr})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer closer.Close()

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("runs=%d frames=%d seed_base=%d seed_step=%d\n\n", runs, frames, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		ts := game.NewTestSim(
			game.WithMatch(game.WithSeed(seed), game.WithLogger(log.With().Int64("seed", seed).Logger())),
			game.WithBot(game.SidePlayer),
			game.WithBot(game.SideAlien),
		)
		ts.RunUntil(func(ts *game.TestSim) bool { return ts.Match.Over() }, frames)

		stats := collectRun(i+1, seed, frames, ts)
		all = append(all, stats)
		printRun(stats)
		if verbose {
			printSideLogs(ts.SimLog)
		}
	}

	printAggregate(all)
}

func collectRun(runIndex int, seed int64, maxFrames int, ts *game.TestSim) runStats {
	r := game.DetermineMatchResult(ts.Match)
	rs := runStats{
		runIndex:     runIndex,
		seed:         seed,
		outcome:      r.Outcome,
		description:  r.Description,
		frames:       r.Frames,
		maxFrames:    maxFrames,
		playerScore:  r.PlayerScore,
		alienScore:   r.AlienScore,
		player:       r.Player,
		alien:        r.Alien,
		itemsSpawned: r.ItemsSpawn,
		itemsExpired: r.ItemsLost,
	}
	entries := ts.SimLog.Entries()
	for _, side := range []game.Side{game.SidePlayer, game.SideAlien} {
		rs.firstCastFrame[side] = firstFrame(entries, side, "fire", "")
		rs.firstSpeedFrame[side] = firstFrame(entries, side, "fire", game.TierSpeed.String())
		rs.firstPickupFrame[side] = firstFrame(entries, side, "item", "collected")
	}
	return rs
}

func firstFrame(entries []game.SimLogEntry, side game.Side, category, key string) int {
	for _, e := range entries {
		if e.Side != side.String() || e.Category != category {
			continue
		}
		if key == "" || e.Key == key {
			return e.Frame
		}
	}
	return -1
}

// detectStalemate flags runs that hit the frame cap or never saw a shot.
func detectStalemate(rs runStats) (bool, string) {
	if rs.outcome != game.OutcomeUndecided {
		return false, "decided"
	}
	if rs.player.TotalCasts() == 0 && rs.alien.TotalCasts() == 0 {
		return true, "no_shots_fired"
	}
	if rs.frames >= rs.maxFrames {
		return true, fmt.Sprintf("no_winner_in_%d_frames", rs.maxFrames)
	}
	return false, "in_progress"
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("result: outcome=%s detail=%s frames=%d score=%d:%d\n",
		rs.outcome, rs.description, rs.frames, rs.playerScore, rs.alienScore)
	fmt.Printf("items: spawned=%d expired=%d\n", rs.itemsSpawned, rs.itemsExpired)
	for _, side := range []game.Side{game.SidePlayer, game.SideAlien} {
		st := rs.stats(side)
		fmt.Printf("%s: casts basic=%d spread=%d speed=%d fired=%d dropped=%d pickups=%d first_cast=%d first_speed=%d first_pickup=%d\n",
			side, st.CastsOf(game.TierBasic), st.CastsOf(game.TierSpread), st.CastsOf(game.TierSpeed),
			st.Fired, st.Dropped, st.Pickups,
			rs.firstCastFrame[side], rs.firstSpeedFrame[side], rs.firstPickupFrame[side])
	}
	if stale, reason := detectStalemate(rs); stale {
		fmt.Printf("stalemate: %s\n", reason)
	}
	fmt.Println()
}

// printSideLogs prints each side's entries as its own block.
func printSideLogs(sl *game.SimLog) {
	for _, side := range []game.Side{game.SidePlayer, game.SideAlien} {
		entries := sl.FilterSide(side)
		fmt.Printf("[%s log: %d entries]\n", side, len(entries))
		for _, e := range entries {
			fmt.Println(e.String())
		}
	}
	fmt.Println()
}

func (rs runStats) stats(side game.Side) game.SideStats {
	if side == game.SidePlayer {
		return rs.player
	}
	return rs.alien
}

func printAggregate(all []runStats) {
	playerWins := 0
	alienWins := 0
	stalemates := 0
	decidedFrames := make([]int, 0, len(all))
	totalPickups := [2]int{}
	totalCasts := [2]int{}
	totalDropped := [2]int{}
	speedFrames := [2][]int{}

	for _, rs := range all {
		switch rs.outcome {
		case game.OutcomePlayerWins:
			playerWins++
		case game.OutcomeAlienWins:
			alienWins++
		}
		if rs.outcome != game.OutcomeUndecided {
			decidedFrames = append(decidedFrames, rs.frames)
		}
		if stale, _ := detectStalemate(rs); stale {
			stalemates++
		}
		for _, side := range []game.Side{game.SidePlayer, game.SideAlien} {
			st := rs.stats(side)
			totalPickups[side] += st.Pickups
			totalCasts[side] += st.TotalCasts()
			totalDropped[side] += st.Dropped
			if rs.firstSpeedFrame[side] >= 0 {
				speedFrames[side] = append(speedFrames[side], rs.firstSpeedFrame[side])
			}
		}
	}

	n := len(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d player_wins=%d (%.0f%%) alien_wins=%d (%.0f%%) stalemates=%d\n",
		n, playerWins, pct(playerWins, n), alienWins, pct(alienWins, n), stalemates)
	fmt.Printf("avg_frames_to_win=%s\n", avgFrameString(decidedFrames))
	for _, side := range []game.Side{game.SidePlayer, game.SideAlien} {
		fmt.Printf("%s: avg_casts=%.1f avg_dropped=%.1f avg_pickups=%.1f avg_first_speed=%s\n",
			side, avg(totalCasts[side], n), avg(totalDropped[side], n), avg(totalPickups[side], n),
			avgFrameString(speedFrames[side]))
	}
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func pct(count, n int) float64 {
	return avg(count, n) * 100
}

func avgFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
