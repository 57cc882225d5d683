package game

import (
	"fmt"
	"strings"
)

// MatchReport renders a plain-text report of m, ending with up to lastEvents
// recent events from recent.
func MatchReport(m *Match, recent []Event, lastEvents int) string {
	r := DetermineMatchResult(m)

	var b strings.Builder
	fmt.Fprintf(&b, "--- Star Shoot match report ---\n")
	fmt.Fprintf(&b, "frame=%d outcome=%s (%s)\n", r.Frames, r.Outcome, r.Description)
	fmt.Fprintf(&b, "item_interval=%s items_spawned=%d items_expired=%d\n\n",
		m.ItemInterval(), r.ItemsSpawn, r.ItemsLost)

	for _, side := range []Side{SidePlayer, SideAlien} {
		st := r.Stats(side)
		c := m.Combatant(side)
		fmt.Fprintf(&b, "== %s ==\n", side.Label())
		fmt.Fprintf(&b, "score=%d gauge=%d/%d speed=%.1f (+%.1f) live=%d/%d\n",
			m.Score(side), c.Gauge.Value(), c.Gauge.Capacity(), c.Speed, st.SpeedGain,
			m.Projectiles(side).Len(), m.Projectiles(side).Limit())
		fmt.Fprintf(&b, "casts: basic=%d spread=%d speed=%d fired=%d dropped=%d pickups=%d\n\n",
			st.CastsOf(TierBasic), st.CastsOf(TierSpread), st.CastsOf(TierSpeed),
			st.Fired, st.Dropped, st.Pickups)
	}

	if lastEvents > 0 && len(recent) > lastEvents {
		recent = recent[len(recent)-lastEvents:]
	}
	if len(recent) > 0 {
		b.WriteString("recent events:\n")
		for _, e := range recent {
			fmt.Fprintf(&b, "  [F=%04d] %s\n", e.Frame, e)
		}
	}
	return b.String()
}
