package game

import (
	"strings"
	"testing"
)

func TestSimLog_FilterSideAndRange(t *testing.T) {
	sl := NewSimLog(false)
	sl.AddEvent(Event{Frame: 0, Kind: EventMatchStart})
	sl.AddEvent(Event{Frame: 10, Kind: EventFire, Side: SidePlayer, Tier: TierBasic, Count: 1})
	sl.AddEvent(Event{Frame: 20, Kind: EventFire, Side: SideAlien, Tier: TierSpread, Count: 3})
	sl.AddEvent(Event{Frame: 30, Kind: EventItemCollected, Side: SidePlayer})

	player := sl.FilterSide(SidePlayer)
	if len(player) != 2 || player[0].Frame != 10 || player[1].Frame != 30 {
		t.Fatalf("player entries %+v", player)
	}
	if alien := sl.FilterSide(SideAlien); len(alien) != 1 || alien[0].Key != "spread" {
		t.Fatalf("alien entries %+v", alien)
	}

	mid := sl.FilterFrameRange(10, 20)
	if len(mid) != 2 {
		t.Fatalf("range 10-20 has %d entries, want 2", len(mid))
	}

	out := sl.FormatRange(15, 30)
	if strings.Contains(out, "[F=010]") {
		t.Fatalf("frame 10 leaked into range output:\n%s", out)
	}
	if !strings.Contains(out, "[F=020] alien") || !strings.Contains(out, "[F=030] player") {
		t.Fatalf("range output missing entries:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Fatalf("range output has %d lines, want 2", got)
	}
}

func TestSimLog_VerboseOnly(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, "player", "move", "position", "(0,0)", 0)
	if len(quiet.Entries()) != 0 {
		t.Fatal("non-verbose log kept a verbose entry")
	}
	loud := NewSimLog(true)
	loud.AddVerbose(1, "player", "move", "position", "(0,0)", 0)
	if len(loud.Entries()) != 1 {
		t.Fatal("verbose log dropped a verbose entry")
	}
}
