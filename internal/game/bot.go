package game

import "math"

// Bot tuning.
const (
	botAimTolerance  = 6.0   // px either side of the target centre counted as aligned
	botDodgeRange    = 120.0 // vertical distance at which incoming fire is dodged
	botItemScoreGoal = 4     // keep chasing items until the speed tier unlocks
)

// Bot is a deterministic CPU controller for one side. It lines up under the
// opponent or a passing item, fires the strongest tier available, and steps
// out of the way of incoming fire.
type Bot struct {
	Side Side
}

// NewBot returns a controller for side.
func NewBot(side Side) *Bot {
	return &Bot{Side: side}
}

// Decide returns the keys the bot holds this frame.
func (b *Bot) Decide(m *Match) SideInput {
	var in SideInput
	if m.Over() {
		return in
	}
	self := m.Combatant(b.Side)
	foe := m.Combatant(b.Side.Opponent())

	if dir, ok := b.dodge(m, self); ok {
		in.Left = dir < 0
		in.Right = dir > 0
	} else {
		target := b.target(m, self, foe)
		dx := target - self.Rect.CenterX()
		in.Left = dx < -botAimTolerance
		in.Right = dx > botAimTolerance
	}

	// The reload debounce eats any key held right after a basic cast, so only
	// press when the previous frame was clear.
	if self.Reloading || m.Projectiles(b.Side).Full() {
		return in
	}
	score := m.Score(b.Side)
	switch {
	case score >= TierSpeed.MinScore() && self.Gauge.CanFire(TierSpeed) && b.aligned(self, foe):
		in.SpeedFire = true
	case score >= TierSpread.MinScore() && self.Gauge.CanFire(TierSpread):
		in.Spread = true
	case self.Gauge.CanFire(TierBasic) && (b.aligned(self, foe) || b.itemInLine(m, self)):
		in.Fire = true
	}
	return in
}

// target picks the x the bot steers toward: a spawned item while it still
// needs score, otherwise the opponent.
func (b *Bot) target(m *Match, self, foe *Combatant) float64 {
	if m.Score(b.Side) < botItemScoreGoal {
		best, bestDist := 0.0, math.Inf(1)
		for _, it := range m.Items {
			if !it.Spawned() {
				continue
			}
			d := math.Abs(it.Rect.CenterX() - self.Rect.CenterX())
			if d < bestDist {
				best, bestDist = it.Rect.CenterX(), d
			}
		}
		if !math.IsInf(bestDist, 1) {
			return best
		}
	}
	return foe.Rect.CenterX()
}

func (b *Bot) aligned(self, foe *Combatant) bool {
	return math.Abs(foe.Rect.CenterX()-self.Rect.CenterX()) <= foe.Rect.W/2
}

func (b *Bot) itemInLine(m *Match, self *Combatant) bool {
	x := self.Rect.CenterX()
	for _, it := range m.Items {
		if it.Spawned() && x >= it.Rect.Left() && x <= it.Rect.Right() {
			return true
		}
	}
	return false
}

// dodge looks for an incoming projectile about to cross the bot's body and
// returns the direction away from it.
func (b *Bot) dodge(m *Match, self *Combatant) (int, bool) {
	for _, p := range m.Projectiles(b.Side.Opponent()).All() {
		var gap float64
		if b.Side == SidePlayer {
			gap = self.Rect.Top() - p.Rect.Bottom()
		} else {
			gap = p.Rect.Top() - self.Rect.Bottom()
		}
		if gap < 0 || gap > botDodgeRange {
			continue
		}
		if p.Rect.Right() < self.Rect.Left() || p.Rect.Left() > self.Rect.Right() {
			continue
		}
		dir := 1
		if p.Rect.CenterX() > self.Rect.CenterX() {
			dir = -1
		}
		// Pinned against a wall: run the other way.
		if dir < 0 && self.Rect.Left() <= 0 || dir > 0 && self.Rect.Right() >= ScreenWidth {
			dir = -dir
		}
		return dir, true
	}
	return 0, false
}
