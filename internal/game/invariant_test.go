package game

import (
	"math/rand"
	"testing"
	"time"
)

// checkInvariants verifies the state bounds that must hold after every frame.
func checkInvariants(t *testing.T, ts *TestSim) {
	t.Helper()
	m := ts.Match
	bounds := Bounds()
	for _, side := range []Side{SidePlayer, SideAlien} {
		c := m.Combatant(side)
		if g := c.Gauge.Value(); g < 0 || g > GaugeCapacity {
			t.Fatalf("F=%d %s gauge %d out of range", m.Frame(), side, g)
		}
		if c.Rect.Left() < bounds.Left() || c.Rect.Right() > bounds.Right() {
			t.Fatalf("F=%d %s off the field: %+v", m.Frame(), side, c.Rect)
		}
		set := m.Projectiles(side)
		if set.Len() > set.Limit() {
			t.Fatalf("F=%d %s has %d live projectiles, cap %d", m.Frame(), side, set.Len(), set.Limit())
		}
		for _, p := range set.All() {
			if !p.Alive() {
				t.Fatalf("F=%d dead projectile left in the %s set", m.Frame(), side)
			}
			if p.Rect.Top() <= 0 || p.Rect.Left() <= 0 ||
				p.Rect.Right() >= ScreenWidth || p.Rect.Bottom() >= ScreenHeight {
				t.Fatalf("F=%d %s projectile touching the border survived: %+v", m.Frame(), side, p.Rect)
			}
		}
	}
	spawned := 0
	for _, it := range m.Items {
		if !it.Spawned() {
			continue
		}
		spawned++
		if it.Rect.Left() < 0 || it.Rect.Right() > ScreenWidth {
			t.Fatalf("F=%d item off the field: %+v", m.Frame(), it.Rect)
		}
	}
	if spawned > MaxItemsOnScreen-1 {
		t.Fatalf("F=%d %d items spawned", m.Frame(), spawned)
	}
}

func TestInvariant_BotsVersusBots(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		ts := NewTestSim(
			WithMatch(WithSeed(seed), WithItemIntervalReroll(true)),
			WithBot(SidePlayer),
			WithBot(SideAlien),
		)
		for i := 0; i < 3000 && !ts.Match.Over(); i++ {
			ts.Step()
			checkInvariants(t, ts)
		}
		r := DetermineMatchResult(ts.Match)
		t.Logf("seed=%d outcome=%s frames=%d score=%d-%d", seed, r.Outcome, r.Frames, r.PlayerScore, r.AlienScore)
	}
}

// Random key mashing must never break the bounds either.
func TestInvariant_RandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(99)) // #nosec G404 -- test
	randomSide := func() SideInput {
		return SideInput{
			Left:      rng.Intn(2) == 0,
			Right:     rng.Intn(3) == 0,
			Fire:      rng.Intn(2) == 0,
			Spread:    rng.Intn(4) == 0,
			SpeedFire: rng.Intn(4) == 0,
		}
	}
	ts := NewTestSim(
		WithMatch(WithItemInterval(500*time.Millisecond)),
		WithController(SidePlayer, func(*TestSim) SideInput { return randomSide() }),
		WithController(SideAlien, func(*TestSim) SideInput { return randomSide() }),
	)
	for i := 0; i < 5000 && !ts.Match.Over(); i++ {
		ts.Step()
		checkInvariants(t, ts)
	}
}
