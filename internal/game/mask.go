package game

import (
	"image"
	"math"
)

// maskAlphaThreshold is the alpha above which a pixel counts as solid.
const maskAlphaThreshold = 127

// Mask is a per-pixel solidity map used for hit tests that ignore
// transparent sprite regions.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask builds a mask from the alpha channel of img.
func NewMask(img image.Image) *Mask {
	b := img.Bounds()
	m := &Mask{w: b.Dx(), h: b.Dy(), bits: make([]bool, b.Dx()*b.Dy())}
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > maskAlphaThreshold {
				m.bits[y*m.w+x] = true
			}
		}
	}
	return m
}

// Size returns the mask dimensions in pixels.
func (m *Mask) Size() (int, int) { return m.w, m.h }

// Get reports whether pixel (x, y) is solid. Out-of-range pixels are empty.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap reports whether o, placed at (offX, offY) relative to m's
// top-left corner, shares any solid pixel with m.
func (m *Mask) Overlap(o *Mask, offX, offY int) bool {
	x0, x1 := max(0, offX), min(m.w, offX+o.w)
	y0, y1 := max(0, offY), min(m.h, offY+o.h)
	if x0 >= x1 || y0 >= y1 {
		return false
	}
	for y := y0; y < y1; y++ {
		row := y * m.w
		orow := (y - offY) * o.w
		for x := x0; x < x1; x++ {
			if m.bits[row+x] && o.bits[orow+x-offX] {
				return true
			}
		}
	}
	return false
}

// collideMask hit-tests two sprites placed at their rects. Positions are
// snapped to whole pixels.
func collideMask(ar Rect, am *Mask, br Rect, bm *Mask) bool {
	ax, ay := int(math.Floor(ar.X)), int(math.Floor(ar.Y))
	bx, by := int(math.Floor(br.X)), int(math.Floor(br.Y))
	return am.Overlap(bm, bx-ax, by-ay)
}
