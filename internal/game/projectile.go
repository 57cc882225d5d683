package game

// Projectile is a Shot (player, travels up) or a Bomb (alien, travels down).
// The tier fixes its speed and sprite at creation.
type Projectile struct {
	Side  Side
	Tier  Tier
	Rect  Rect
	dx    float64
	dy    float64
	alive bool
}

// newProjectile spawns a projectile at a muzzle point. Shots hang their
// bottom edge on the muzzle, bombs their top edge.
func newProjectile(side Side, tier Tier, muzzleX, muzzleY, drift float64) *Projectile {
	w, h := SpriteSize(projectileSprite(side, tier))
	speed := tierTable[tier].speed
	p := &Projectile{Side: side, Tier: tier, dx: drift, alive: true}
	if side == SidePlayer {
		p.Rect = rectMidBottom(float64(w), float64(h), muzzleX, muzzleY)
		p.dy = -speed
	} else {
		p.Rect = rectMidTop(float64(w), float64(h), muzzleX, muzzleY)
		p.dy = speed
	}
	return p
}

// Alive reports whether the projectile is still in play.
func (p *Projectile) Alive() bool { return p.alive }

// Velocity returns the per-frame displacement.
func (p *Projectile) Velocity() (dx, dy float64) { return p.dx, p.dy }

// Sprite returns the art used to draw and hit-test the projectile.
func (p *Projectile) Sprite() SpriteKind { return projectileSprite(p.Side, p.Tier) }

func (p *Projectile) mask() *Mask { return spriteMask(p.Sprite(), false) }

// Update advances the projectile one frame. It dies as soon as any edge
// touches the playfield border, even while still partly on screen.
func (p *Projectile) Update(bounds Rect) {
	if !p.alive {
		return
	}
	p.Rect = p.Rect.Translate(p.dx, p.dy)
	r := p.Rect
	if r.Top() <= bounds.Top() || r.Left() <= bounds.Left() ||
		r.Right() >= bounds.Right() || r.Bottom() >= bounds.Bottom() {
		p.alive = false
	}
}

// ProjectileSet is a capped collection of live projectiles for one side.
type ProjectileSet struct {
	limit int
	items []*Projectile
}

// NewProjectileSet creates an empty set holding at most limit projectiles.
func NewProjectileSet(limit int) *ProjectileSet {
	return &ProjectileSet{limit: limit, items: make([]*Projectile, 0, limit)}
}

// Len returns the number of live projectiles.
func (s *ProjectileSet) Len() int { return len(s.items) }

// Limit returns the cap.
func (s *ProjectileSet) Limit() int { return s.limit }

// Full reports whether the cap has been reached.
func (s *ProjectileSet) Full() bool { return len(s.items) >= s.limit }

// Add inserts p unless the set is full.
func (s *ProjectileSet) Add(p *Projectile) bool {
	if s.Full() {
		return false
	}
	s.items = append(s.items, p)
	return true
}

// All returns the live projectiles. The slice is only valid until the next
// mutation of the set.
func (s *ProjectileSet) All() []*Projectile { return s.items }

// Update advances every projectile and drops the ones that left the field.
func (s *ProjectileSet) Update(bounds Rect) {
	for _, p := range s.items {
		p.Update(bounds)
	}
	s.prune()
}

// Collide removes and returns every projectile whose mask overlaps the
// target sprite placed at r.
func (s *ProjectileSet) Collide(r Rect, m *Mask) []*Projectile {
	var hits []*Projectile
	for _, p := range s.items {
		if !p.alive {
			continue
		}
		if collideMask(r, m, p.Rect, p.mask()) {
			p.alive = false
			hits = append(hits, p)
		}
	}
	if len(hits) > 0 {
		s.prune()
	}
	return hits
}

func (s *ProjectileSet) prune() {
	kept := s.items[:0]
	for _, p := range s.items {
		if p.alive {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
}
