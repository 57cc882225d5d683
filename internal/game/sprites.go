package game

import (
	"image"
	"image/color"
)

// SpriteKind names a piece of procedurally drawn art. The same images feed the
// renderer and the collision masks.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteAlien
	SpriteShot
	SpriteBeam
	SpriteBomb
	SpriteSpecialBomb
	SpriteItem
	SpriteExplosion
	spriteKindCount
)

// spriteArt is a character grid; each non-space rune is a scale×scale block
// coloured through the palette.
type spriteArt struct {
	rows    []string
	scale   int
	palette map[rune]color.NRGBA
}

var (
	white  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	yellow = color.NRGBA{R: 255, G: 220, B: 60, A: 255}
	orange = color.NRGBA{R: 255, G: 140, B: 30, A: 255}
	red    = color.NRGBA{R: 230, G: 50, B: 40, A: 255}
	cyan   = color.NRGBA{R: 80, G: 220, B: 255, A: 255}
	green  = color.NRGBA{R: 90, G: 230, B: 110, A: 255}
	violet = color.NRGBA{R: 190, G: 90, B: 255, A: 255}
	steel  = color.NRGBA{R: 170, G: 180, B: 200, A: 255}
)

var spriteArts = [spriteKindCount]spriteArt{
	SpritePlayer: {
		scale: 4,
		rows: []string{
			"     ##     ",
			"    #cc#    ",
			"    #cc#    ",
			" g ######   ",
			" g##yyyy##  ",
			" ###yyyy### ",
			"############",
			"##  ####  ##",
			"#    ##    #",
			"     rr     ",
		},
		palette: map[rune]color.NRGBA{'#': steel, 'c': cyan, 'y': yellow, 'g': white, 'r': orange},
	},
	SpriteAlien: {
		scale: 4,
		rows: []string{
			"    ####    ",
			"  ##cccc##  ",
			" ##o##o##o# ",
			"############",
			"  ##    ##  ",
			"   #     ## ",
		},
		palette: map[rune]color.NRGBA{'#': green, 'c': cyan, 'o': yellow},
	},
	SpriteShot: {
		scale: 2,
		rows: []string{
			" w ",
			"www",
			"yyy",
			"yyy",
			"yyy",
			" r ",
		},
		palette: map[rune]color.NRGBA{'w': white, 'y': yellow, 'r': orange},
	},
	SpriteBeam: {
		scale: 2,
		rows: []string{
			" w ",
			"wcw",
			"ccc",
			"ccc",
			"ccc",
			"ccc",
			"ccc",
			" c ",
		},
		palette: map[rune]color.NRGBA{'w': white, 'c': cyan},
	},
	SpriteBomb: {
		scale: 3,
		rows: []string{
			" ## ",
			"#rr#",
			"#rr#",
			" ## ",
		},
		palette: map[rune]color.NRGBA{'#': orange, 'r': red},
	},
	SpriteSpecialBomb: {
		scale: 3,
		rows: []string{
			" ## ",
			"#vv#",
			"#vv#",
			"#vv#",
			" ## ",
		},
		palette: map[rune]color.NRGBA{'#': white, 'v': violet},
	},
	SpriteItem: {
		scale: 4,
		rows: []string{
			"       ##       ",
			"      #yy#      ",
			"      #yy#      ",
			"#######yy#######",
			" #yyyyyyyyyyyy# ",
			"   #yyyyyyyy#   ",
			"    #yyyyyy#    ",
			"   #yyyyyyyy#   ",
			"   #yyy##yyy#   ",
			"  #yy#    #yy#  ",
			"  ##        ##  ",
			" #            # ",
		},
		palette: map[rune]color.NRGBA{'#': orange, 'y': yellow},
	},
	SpriteExplosion: {
		scale: 6,
		rows: []string{
			"#  #   ",
			" # # # ",
			"  ooo  ",
			"#ooyoo#",
			"  ooo  ",
			" # #  #",
			"#   #  ",
		},
		palette: map[rune]color.NRGBA{'#': red, 'o': orange, 'y': yellow},
	},
}

// SpriteSize returns the pixel size of a sprite.
func SpriteSize(kind SpriteKind) (w, h int) {
	a := spriteArts[kind]
	if len(a.rows) == 0 {
		return 0, 0
	}
	return len(a.rows[0]) * a.scale, len(a.rows) * a.scale
}

// SpriteImage renders a sprite. flip mirrors it horizontally.
func SpriteImage(kind SpriteKind, flip bool) *image.NRGBA {
	a := spriteArts[kind]
	w, h := SpriteSize(kind)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cols := w / a.scale
	for row, line := range a.rows {
		for col, ch := range []rune(line) {
			c, ok := a.palette[ch]
			if !ok {
				continue
			}
			dc := col
			if flip {
				dc = cols - 1 - col
			}
			for py := 0; py < a.scale; py++ {
				for px := 0; px < a.scale; px++ {
					img.SetNRGBA(dc*a.scale+px, row*a.scale+py, c)
				}
			}
		}
	}
	return img
}

// masks holds the collision mask of every sprite, unflipped [0] and flipped [1].
var masks = func() [spriteKindCount][2]*Mask {
	var out [spriteKindCount][2]*Mask
	for k := SpriteKind(0); k < spriteKindCount; k++ {
		out[k][0] = NewMask(SpriteImage(k, false))
		out[k][1] = NewMask(SpriteImage(k, true))
	}
	return out
}()

// spriteMask returns the cached mask for a sprite.
func spriteMask(kind SpriteKind, flip bool) *Mask {
	if flip {
		return masks[kind][1]
	}
	return masks[kind][0]
}

// projectileSprite picks the art for a projectile.
func projectileSprite(side Side, tier Tier) SpriteKind {
	switch {
	case side == SidePlayer && tier == TierSpeed:
		return SpriteBeam
	case side == SidePlayer:
		return SpriteShot
	case tier == TierSpeed:
		return SpriteSpecialBomb
	default:
		return SpriteBomb
	}
}
