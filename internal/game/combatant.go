package game

import "time"

// Combatant is the Player or the Alien.
type Combatant struct {
	Side      Side
	Rect      Rect
	Facing    int     // -1 left, +1 right
	Speed     float64 // horizontal pixels per frame per unit of input
	Reloading bool    // basic fire key was held on the previous frame
	Gauge     *Gauge
	alive     bool
}

// NewPlayer places the player at the bottom centre of the field.
func NewPlayer(now time.Duration) *Combatant {
	w, h := SpriteSize(SpritePlayer)
	return &Combatant{
		Side:   SidePlayer,
		Rect:   rectMidBottom(float64(w), float64(h), ScreenWidth/2, ScreenHeight),
		Facing: -1,
		Speed:  combatantBaseSpeed,
		Gauge:  NewGauge(now),
		alive:  true,
	}
}

// NewAlien places the alien at the top centre of the field.
func NewAlien(now time.Duration) *Combatant {
	w, h := SpriteSize(SpriteAlien)
	return &Combatant{
		Side:   SideAlien,
		Rect:   rectMidTop(float64(w), float64(h), ScreenWidth/2, 0),
		Facing: -1,
		Speed:  combatantBaseSpeed,
		Gauge:  NewGauge(now),
		alive:  true,
	}
}

// Alive reports whether the combatant is still in the match.
func (c *Combatant) Alive() bool { return c.alive }

// Move shifts the combatant horizontally by direction*Speed and keeps it on
// the field. A zero direction leaves Facing unchanged.
func (c *Combatant) Move(direction int, bounds Rect) {
	if direction != 0 {
		c.Facing = direction
	}
	c.Rect = c.Rect.Translate(float64(direction)*c.Speed, 0).ClampTo(bounds)
}

// GunPos returns the muzzle point projectiles spawn from.
func (c *Combatant) GunPos() (x, y float64) {
	if c.Side == SidePlayer {
		return c.Rect.CenterX() + float64(c.Facing)*gunOffset, c.Rect.Top()
	}
	return c.Rect.CenterX(), c.Rect.Bottom()
}

// Sprite returns the art and whether it is mirrored. Art is drawn facing left.
func (c *Combatant) Sprite() (SpriteKind, bool) {
	kind := SpritePlayer
	if c.Side == SideAlien {
		kind = SpriteAlien
	}
	return kind, c.Facing > 0
}

func (c *Combatant) mask() *Mask {
	kind, flip := c.Sprite()
	return spriteMask(kind, flip)
}

// collect applies an item reward.
func (c *Combatant) collect() {
	c.Speed += itemSpeedBonus
	c.Gauge.Grant(itemGaugeBonus)
}
