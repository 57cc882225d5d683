package game

// Rect is an axis-aligned box in playfield coordinates (y grows downward).
type Rect struct {
	X, Y float64
	W, H float64
}

// Bounds returns the playfield rectangle.
func Bounds() Rect {
	return Rect{W: ScreenWidth, H: ScreenHeight}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// ClampTo moves r inside outer without resizing it. A rect larger than outer
// is centred on it.
func (r Rect) ClampTo(outer Rect) Rect {
	if r.W >= outer.W {
		r.X = outer.X + (outer.W-r.W)/2
	} else if r.X < outer.X {
		r.X = outer.X
	} else if r.Right() > outer.Right() {
		r.X = outer.Right() - r.W
	}
	if r.H >= outer.H {
		r.Y = outer.Y + (outer.H-r.H)/2
	} else if r.Y < outer.Y {
		r.Y = outer.Y
	} else if r.Bottom() > outer.Bottom() {
		r.Y = outer.Bottom() - r.H
	}
	return r
}

// Overlaps reports whether the two boxes share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// rectMidBottom places a w×h box with its bottom-centre at (x, y).
func rectMidBottom(w, h, x, y float64) Rect {
	return Rect{X: x - w/2, Y: y - h, W: w, H: h}
}

// rectMidTop places a w×h box with its top-centre at (x, y).
func rectMidTop(w, h, x, y float64) Rect {
	return Rect{X: x - w/2, Y: y, W: w, H: h}
}

// rectCenter places a w×h box centred on (x, y).
func rectCenter(w, h, x, y float64) Rect {
	return Rect{X: x - w/2, Y: y - h/2, W: w, H: h}
}
