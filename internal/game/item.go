package game

import "math/rand"

// ItemState is the item lifecycle.
type ItemState int

const (
	ItemIdle ItemState = iota
	ItemSpawned
)

func (s ItemState) String() string {
	if s == ItemSpawned {
		return "spawned"
	}
	return "idle"
}

// idleItemPos is where an idle item is parked, off screen.
const idleItemPos = -100

// Item is a reusable pickup that bounces across the middle of the field.
// Hitting it with a projectile rewards the projectile's side.
type Item struct {
	Rect  Rect
	speed float64 // signed horizontal velocity
	state ItemState
}

// NewItem returns an idle item parked off screen.
func NewItem() *Item {
	w, h := SpriteSize(SpriteItem)
	return &Item{Rect: Rect{X: idleItemPos, Y: idleItemPos, W: float64(w), H: float64(h)}}
}

// State returns the lifecycle state.
func (it *Item) State() ItemState { return it.state }

// Spawned reports whether the item is in play.
func (it *Item) Spawned() bool { return it.state == ItemSpawned }

// Speed returns the signed horizontal velocity.
func (it *Item) Speed() float64 { return it.speed }

// Spawn puts the item on a random side edge at a random height, heading
// toward the opposite edge with a fresh random speed.
func (it *Item) Spawn(rng *rand.Rand, bounds Rect) {
	magnitude := itemSpeedMin + rng.Float64()*(itemSpeedMax-itemSpeedMin)
	y := float64(itemSpawnYMin + rng.Intn(itemSpawnYMax-itemSpawnYMin+1))
	if rng.Intn(2) == 0 {
		it.Rect.X = bounds.Left()
		it.speed = magnitude
	} else {
		it.Rect.X = bounds.Right() - it.Rect.W
		it.speed = -magnitude
	}
	it.Rect.Y = y
	it.state = ItemSpawned
}

// Update moves a spawned item one frame, bouncing off the side edges.
// It returns true when the item dropped below the field and went idle.
func (it *Item) Update(bounds Rect) bool {
	if it.state != ItemSpawned {
		return false
	}
	it.Rect.X += it.speed
	if it.Rect.Right() > bounds.Right() {
		it.Rect.X = bounds.Right() - it.Rect.W
		it.speed = -it.speed
	}
	if it.Rect.Left() < bounds.Left() {
		it.Rect.X = bounds.Left()
		it.speed = -it.speed
	}
	if it.Rect.Top() > bounds.Bottom() {
		it.Reset()
		return true
	}
	return false
}

// Reset parks the item off screen in the idle state.
func (it *Item) Reset() {
	it.state = ItemIdle
	it.Rect.X = idleItemPos
	it.Rect.Y = idleItemPos
}

// Collide removes every projectile in set touching the item and returns how
// many were removed. Any hit resets the item.
func (it *Item) Collide(set *ProjectileSet) int {
	if it.state != ItemSpawned {
		return 0
	}
	hits := set.Collide(it.Rect, spriteMask(SpriteItem, false))
	if len(hits) == 0 {
		return 0
	}
	it.Reset()
	return len(hits)
}
