package game

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestItem_StartsIdleOffscreen(t *testing.T) {
	it := NewItem()
	if it.Spawned() || it.State() != ItemIdle {
		t.Fatalf("new item should be idle, got %s", it.State())
	}
	if it.Rect.X != idleItemPos || it.Rect.Y != idleItemPos {
		t.Fatalf("idle item should be parked off screen, got %+v", it.Rect)
	}
	if it.Update(Bounds()) {
		t.Fatal("idle item must not report expiry")
	}
}

func TestItem_SpawnOnAnEdge(t *testing.T) {
	rng := rand.New(rand.NewSource(3)) // #nosec G404 -- test
	sawLeft, sawRight := false, false
	for i := 0; i < 200; i++ {
		it := NewItem()
		it.Spawn(rng, Bounds())
		if !it.Spawned() {
			t.Fatal("spawn should enter the spawned state")
		}
		if it.Rect.Y < itemSpawnYMin || it.Rect.Y > itemSpawnYMax {
			t.Fatalf("spawn y %v outside [%d,%d]", it.Rect.Y, itemSpawnYMin, itemSpawnYMax)
		}
		mag := math.Abs(it.Speed())
		if mag < itemSpeedMin || mag > itemSpeedMax {
			t.Fatalf("speed %v outside [%v,%v]", it.Speed(), itemSpeedMin, itemSpeedMax)
		}
		switch {
		case it.Rect.Left() == 0:
			sawLeft = true
			if it.Speed() <= 0 {
				t.Fatalf("item on the left edge must head right, speed %v", it.Speed())
			}
		case it.Rect.Right() == ScreenWidth:
			sawRight = true
			if it.Speed() >= 0 {
				t.Fatalf("item on the right edge must head left, speed %v", it.Speed())
			}
		default:
			t.Fatalf("item spawned away from the edges: %+v", it.Rect)
		}
	}
	if !sawLeft || !sawRight {
		t.Fatalf("expected spawns on both edges, left=%v right=%v", sawLeft, sawRight)
	}
}

func TestItem_RoundTripBounces(t *testing.T) {
	bounds := Bounds()
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- test
	it := NewItem()
	it.Spawn(rng, bounds)
	it.Rect.X = 0
	it.speed = 2.5

	bounces := 0
	lastSign := 1.0
	for frame := 0; frame < 2000 && bounces < 4; frame++ {
		if it.Update(bounds) {
			t.Fatalf("frame %d: item expired while still on the field", frame)
		}
		if it.Rect.Left() < 0 || it.Rect.Right() > ScreenWidth {
			t.Fatalf("frame %d: item left the field horizontally: %+v", frame, it.Rect)
		}
		sign := math.Copysign(1, it.Speed())
		if sign == lastSign {
			continue
		}
		bounces++
		if sign < 0 && it.Rect.Right() != ScreenWidth {
			t.Fatalf("right bounce should clamp right to %d, got %v", ScreenWidth, it.Rect.Right())
		}
		if sign > 0 && it.Rect.Left() != 0 {
			t.Fatalf("left bounce should clamp left to 0, got %v", it.Rect.Left())
		}
		if math.Abs(it.Speed()) != 2.5 {
			t.Fatalf("bounce must only flip the sign, speed %v", it.Speed())
		}
		lastSign = sign
	}
	if bounces < 4 {
		t.Fatalf("expected at least 4 bounces, got %d", bounces)
	}
	if !it.Spawned() {
		t.Fatal("item should stay spawned while it is on the field")
	}

	it.Rect.Y = ScreenHeight
	if it.Update(bounds) || !it.Spawned() {
		t.Fatal("top exactly at the bottom edge is still on the field")
	}
	it.Rect.Y = ScreenHeight + 0.5
	if !it.Update(bounds) {
		t.Fatal("item whose top passed the bottom edge should expire")
	}
	if it.Spawned() || it.Rect.X != idleItemPos {
		t.Fatalf("expired item should be parked idle, got %s %+v", it.State(), it.Rect)
	}
}

// placeItem parks the first item mid-field, stationary.
func placeItem(m *Match) *Item {
	it := m.Items[0]
	it.Spawn(m.rng, m.bounds)
	it.Rect.X, it.Rect.Y = 300, 220
	it.speed = 0
	return it
}

func TestItem_BombPickupRewardsAlienOnce(t *testing.T) {
	m := NewMatch(WithSeed(1), WithItemInterval(time.Hour))
	it := placeItem(m)
	m.Bombs.Add(newProjectile(SideAlien, TierBasic, it.Rect.CenterX(), it.Rect.Y+12, 0))

	m.updateItems(0)
	m.updateItems(0)

	if m.AlienScore != 1 || m.PlayerScore != 0 {
		t.Fatalf("scores player=%d alien=%d, want 0/1", m.PlayerScore, m.AlienScore)
	}
	if math.Abs(m.Alien.Speed-1.3) > 1e-9 {
		t.Fatalf("alien speed %v, want 1.3", m.Alien.Speed)
	}
	if m.Alien.Gauge.Value() != 1 {
		t.Fatalf("alien gauge %d, want 1", m.Alien.Gauge.Value())
	}
	if m.Bombs.Len() != 0 {
		t.Fatalf("colliding bomb should be removed, %d left", m.Bombs.Len())
	}
	if it.Spawned() {
		t.Fatal("item should be reset after a pickup")
	}
	if m.Player.Speed != combatantBaseSpeed {
		t.Fatalf("player speed should be untouched, got %v", m.Player.Speed)
	}
}

func TestItem_BombsCheckedBeforeShots(t *testing.T) {
	m := NewMatch(WithSeed(1), WithItemInterval(time.Hour))
	it := placeItem(m)
	m.Bombs.Add(newProjectile(SideAlien, TierBasic, it.Rect.CenterX(), it.Rect.Y+12, 0))
	m.Shots.Add(newProjectile(SidePlayer, TierBasic, it.Rect.CenterX(), it.Rect.Y+36, 0))

	m.updateItems(0)

	if m.AlienScore != 1 || m.PlayerScore != 0 {
		t.Fatalf("bomb hit should win the item: player=%d alien=%d", m.PlayerScore, m.AlienScore)
	}
	if m.Shots.Len() != 1 {
		t.Fatalf("the shot should survive once the item is gone, got %d", m.Shots.Len())
	}
	if m.stats[SideAlien].Pickups != 1 || m.stats[SidePlayer].Pickups != 0 {
		t.Fatalf("pickup stats %+v / %+v", m.stats[SidePlayer], m.stats[SideAlien])
	}
}

func TestItem_ShotPickupRewardsPlayer(t *testing.T) {
	m := NewMatch(WithSeed(1), WithItemInterval(time.Hour))
	it := placeItem(m)
	m.Shots.Add(newProjectile(SidePlayer, TierBasic, it.Rect.CenterX(), it.Rect.Y+36, 0))

	m.updateItems(0)

	if m.PlayerScore != 1 || m.Player.Gauge.Value() != 1 {
		t.Fatalf("player score %d gauge %d, want 1/1", m.PlayerScore, m.Player.Gauge.Value())
	}
	if math.Abs(m.Player.Speed-1.3) > 1e-9 {
		t.Fatalf("player speed %v, want 1.3", m.Player.Speed)
	}
}

func TestItem_TransparentCornerMisses(t *testing.T) {
	m := NewMatch(WithSeed(1), WithItemInterval(time.Hour))
	it := placeItem(m)
	// Bottom-left corner of the item art is empty.
	p := newProjectile(SidePlayer, TierBasic, it.Rect.Left()+1, it.Rect.Bottom()+4, 0)
	if !p.Rect.Overlaps(it.Rect) {
		t.Fatal("test setup: boxes should overlap")
	}
	m.Shots.Add(p)

	m.updateItems(0)
	if m.PlayerScore != 0 || !it.Spawned() {
		t.Fatal("a box overlap on transparent pixels must not count")
	}
}
