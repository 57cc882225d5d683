package game

// Explosion is a short-lived blast drawn where something was destroyed.
type Explosion struct {
	Rect Rect
	life int // frames remaining
}

func newExplosion(at Rect) *Explosion {
	w, h := SpriteSize(SpriteExplosion)
	return &Explosion{
		Rect: rectCenter(float64(w), float64(h), at.CenterX(), at.CenterY()),
		life: explosionLife,
	}
}

// Done reports whether the explosion has burned out.
func (e *Explosion) Done() bool { return e.life <= 0 }

// Flipped selects the alternating animation frame.
func (e *Explosion) Flipped() bool { return e.life/explosionAnimCycle%2 == 1 }

// Update ages the explosion by one frame.
func (e *Explosion) Update() {
	if e.life > 0 {
		e.life--
	}
}
