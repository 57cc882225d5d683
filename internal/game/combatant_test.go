package game

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestCombatant_StartPositions(t *testing.T) {
	p := NewPlayer(0)
	if p.Rect.CenterX() != ScreenWidth/2 || p.Rect.Bottom() != ScreenHeight {
		t.Fatalf("player should start bottom-centre, got %+v", p.Rect)
	}
	a := NewAlien(0)
	if a.Rect.CenterX() != ScreenWidth/2 || a.Rect.Top() != 0 {
		t.Fatalf("alien should start top-centre, got %+v", a.Rect)
	}
	for _, c := range []*Combatant{p, a} {
		if c.Facing != -1 || c.Speed != combatantBaseSpeed || c.Reloading || !c.Alive() {
			t.Fatalf("%s initial state wrong: %+v", c.Side, c)
		}
	}
}

func TestCombatant_SpeedIsPerInstance(t *testing.T) {
	p, a := NewPlayer(0), NewAlien(0)
	p.collect()
	if a.Speed != combatantBaseSpeed {
		t.Fatalf("alien speed changed with the player's pickup: %v", a.Speed)
	}
	if math.Abs(p.Speed-1.3) > 1e-9 || p.Gauge.Value() != 1 {
		t.Fatalf("player after pickup speed=%v gauge=%d", p.Speed, p.Gauge.Value())
	}
}

func TestCombatant_MoveKeepsFacingOnZero(t *testing.T) {
	c := NewPlayer(0)
	x := c.Rect.X
	c.Move(1, Bounds())
	if c.Facing != 1 || c.Rect.X != x+1 {
		t.Fatalf("after right move facing=%d x=%v", c.Facing, c.Rect.X)
	}
	c.Move(0, Bounds())
	if c.Facing != 1 || c.Rect.X != x+1 {
		t.Fatalf("zero input must not change facing or position: facing=%d x=%v", c.Facing, c.Rect.X)
	}
	c.Move(-1, Bounds())
	if c.Facing != -1 || c.Rect.X != x {
		t.Fatalf("after left move facing=%d x=%v", c.Facing, c.Rect.X)
	}
	if kind, flip := c.Sprite(); kind != SpritePlayer || flip {
		t.Fatalf("left-facing player sprite %d flip=%v", kind, flip)
	}
}

func TestCombatant_MoveClampsToField(t *testing.T) {
	c := NewAlien(0)
	c.Speed = 7.3
	for i := 0; i < 200; i++ {
		c.Move(-1, Bounds())
	}
	if c.Rect.Left() != 0 {
		t.Fatalf("left clamp: %v", c.Rect.Left())
	}
	for i := 0; i < 200; i++ {
		c.Move(1, Bounds())
	}
	if c.Rect.Right() != ScreenWidth {
		t.Fatalf("right clamp: %v", c.Rect.Right())
	}
	if c.Rect.Top() != 0 {
		t.Fatalf("horizontal movement changed y: %v", c.Rect.Top())
	}
}

func TestCombatant_GunPos(t *testing.T) {
	p := NewPlayer(0)
	x, y := p.GunPos()
	if x != p.Rect.CenterX()+float64(p.Facing)*gunOffset || y != p.Rect.Top() {
		t.Fatalf("player gun at (%v,%v)", x, y)
	}
	a := NewAlien(0)
	x, y = a.GunPos()
	if x != a.Rect.CenterX() || y != a.Rect.Bottom() {
		t.Fatalf("alien gun at (%v,%v)", x, y)
	}
}

func TestMask_AlphaThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 127})
	img.SetNRGBA(1, 0, color.NRGBA{A: 128})
	m := NewMask(img)
	if m.Get(0, 0) || !m.Get(1, 0) {
		t.Fatalf("threshold: got %v/%v, want false/true", m.Get(0, 0), m.Get(1, 0))
	}
	if m.Get(5, 5) {
		t.Fatal("out-of-range pixels must be empty")
	}
}

func TestMask_Overlap(t *testing.T) {
	a := spriteMask(SpriteBomb, false)
	if !a.Overlap(a, 0, 0) {
		t.Fatal("a mask overlaps itself")
	}
	w, h := a.Size()
	if a.Overlap(a, w, 0) || a.Overlap(a, 0, h) || a.Overlap(a, -w, -h) {
		t.Fatal("adjacent masks must not overlap")
	}
	// The bomb's rounded corners are empty.
	if a.Overlap(a, w-2, h-2) {
		t.Fatal("corner-only contact should miss")
	}
}

func TestMask_TransparentCornerIgnored(t *testing.T) {
	p := NewPlayer(0)
	shot := newProjectile(SidePlayer, TierBasic, 0, 0, 0)
	shot.Rect.X = p.Rect.X - 3
	shot.Rect.Y = p.Rect.Y - 6
	if !shot.Rect.Overlaps(p.Rect) {
		t.Fatal("test setup: boxes should overlap")
	}
	if collideMask(p.Rect, p.mask(), shot.Rect, shot.mask()) {
		t.Fatal("overlap on the transparent corner must not collide")
	}
	shot.Rect.X = p.Rect.CenterX() - shot.Rect.W/2
	shot.Rect.Y = p.Rect.Y + 20
	if !collideMask(p.Rect, p.mask(), shot.Rect, shot.mask()) {
		t.Fatal("overlap on the hull should collide")
	}
}

func TestSprites_MasksMatchArt(t *testing.T) {
	for k := SpriteKind(0); k < spriteKindCount; k++ {
		w, h := SpriteSize(k)
		if w == 0 || h == 0 {
			t.Fatalf("sprite %d has no size", k)
		}
		m := spriteMask(k, false)
		mw, mh := m.Size()
		if mw != w || mh != h {
			t.Fatalf("sprite %d mask %dx%d, art %dx%d", k, mw, mh, w, h)
		}
		if m.Count() == 0 {
			t.Fatalf("sprite %d has an empty mask", k)
		}
		if m.Count() != spriteMask(k, true).Count() {
			t.Fatalf("sprite %d: flipping changed the solid pixel count", k)
		}
	}
}
