package main

import (
	"strings"
	"testing"

	"github.com/Garsondee/Star-Shoot/internal/game"
)

func TestDetectStalemate_TrueWhenFrameCapReached(t *testing.T) {
	rs := runStats{
		outcome:   game.OutcomeUndecided,
		frames:    4800,
		maxFrames: 4800,
		player:    game.SideStats{Fired: 12},
	}
	rs.player.Casts[game.TierBasic] = 12

	isStalemate, reason := detectStalemate(rs)
	if !isStalemate {
		t.Fatalf("expected stalemate=true, got false (reason=%s)", reason)
	}
	if !strings.Contains(reason, "no_winner_in_4800_frames") {
		t.Fatalf("expected reason to mention the frame cap, got: %s", reason)
	}
}

func TestDetectStalemate_TrueWhenNobodyFires(t *testing.T) {
	rs := runStats{outcome: game.OutcomeUndecided, frames: 100, maxFrames: 100}
	isStalemate, reason := detectStalemate(rs)
	if !isStalemate || reason != "no_shots_fired" {
		t.Fatalf("expected no_shots_fired stalemate, got %v (%s)", isStalemate, reason)
	}
}

func TestDetectStalemate_FalseWhenDecided(t *testing.T) {
	rs := runStats{outcome: game.OutcomeAlienWins, frames: 4800, maxFrames: 4800}
	if isStalemate, reason := detectStalemate(rs); isStalemate {
		t.Fatalf("expected stalemate=false for a decided match (reason=%s)", reason)
	}
}

func TestFirstFrame(t *testing.T) {
	entries := []game.SimLogEntry{
		{Frame: 3, Side: "--", Category: "match", Key: "start"},
		{Frame: 80, Side: "alien", Category: "fire", Key: "basic"},
		{Frame: 90, Side: "player", Category: "fire", Key: "basic"},
		{Frame: 400, Side: "player", Category: "fire", Key: "speed"},
		{Frame: 410, Side: "player", Category: "item", Key: "collected"},
	}
	if got := firstFrame(entries, game.SidePlayer, "fire", ""); got != 90 {
		t.Fatalf("player first cast %d, want 90", got)
	}
	if got := firstFrame(entries, game.SidePlayer, "fire", "speed"); got != 400 {
		t.Fatalf("player first speed %d, want 400", got)
	}
	if got := firstFrame(entries, game.SideAlien, "item", "collected"); got != -1 {
		t.Fatalf("alien first pickup %d, want -1", got)
	}
}

func TestCollectRun_BotMatch(t *testing.T) {
	ts := game.NewTestSim(
		game.WithMatch(game.WithSeed(7)),
		game.WithBot(game.SidePlayer),
		game.WithBot(game.SideAlien),
	)
	ts.RunUntil(func(ts *game.TestSim) bool { return ts.Match.Over() }, 600)

	rs := collectRun(1, 7, 600, ts)
	if rs.frames != ts.Match.Frame() {
		t.Fatalf("frames %d, want %d", rs.frames, ts.Match.Frame())
	}
	if rs.firstCastFrame[game.SidePlayer] < 0 && rs.player.TotalCasts() > 0 {
		t.Fatal("player cast but no first-cast frame was found")
	}
	if got := rs.player.TotalCasts() + rs.alien.TotalCasts(); got == 0 {
		t.Fatal("bots never fired in 600 frames")
	}
}

func TestAvgHelpers(t *testing.T) {
	if avg(10, 0) != 0 {
		t.Fatal("avg with n=0 should be 0")
	}
	if pct(1, 4) != 25 {
		t.Fatalf("pct(1,4)=%v", pct(1, 4))
	}
	if avgFrameString(nil) != "n/a" {
		t.Fatal("empty frames should be n/a")
	}
	if got := avgFrameString([]int{10, 20}); got != "15.0" {
		t.Fatalf("avgFrameString=%s", got)
	}
}
