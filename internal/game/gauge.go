package game

import "time"

// Gauge is a combatant's energy meter. It refills by one point every
// gaugeRefillInterval and is drained by attacks.
type Gauge struct {
	value      int
	lastRefill time.Duration // match time of the last refill
}

// NewGauge creates an empty gauge whose refill window starts at now.
func NewGauge(now time.Duration) *Gauge {
	return &Gauge{lastRefill: now}
}

// Value returns the current charge.
func (g *Gauge) Value() int { return g.value }

// Capacity returns the maximum charge.
func (g *Gauge) Capacity() int { return GaugeCapacity }

// Fraction returns the charge as a 0-1 fill ratio.
func (g *Gauge) Fraction() float64 {
	return float64(g.value) / float64(GaugeCapacity)
}

// Tick adds one point once more than gaugeRefillInterval has passed since the
// last refill. Calls inside the window are no-ops. Returns true on refill.
func (g *Gauge) Tick(now time.Duration) bool {
	if now-g.lastRefill <= gaugeRefillInterval {
		return false
	}
	g.lastRefill = now
	g.Grant(1)
	return true
}

// CanFire reports whether the charge meets the tier's unlock threshold.
func (g *Gauge) CanFire(t Tier) bool {
	p, ok := tierTable[t]
	if !ok {
		return false
	}
	return g.value >= p.unlock
}

// Spend removes n points. The charge never drops below zero.
func (g *Gauge) Spend(n int) {
	g.value -= n
	if g.value < 0 {
		g.value = 0
	}
}

// Grant adds n points, clamped to capacity.
func (g *Gauge) Grant(n int) {
	g.value += n
	if g.value > GaugeCapacity {
		g.value = GaugeCapacity
	}
}
