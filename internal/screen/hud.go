package screen

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Star-Shoot/internal/game"
)

const (
	gaugeW = 50
	gaugeH = 100
)

var (
	gaugeFull  = color.RGBA{G: 255, A: 255}
	gaugeEmpty = color.RGBA{R: 255, A: 255}

	hudFace = text.NewGoXFace(basicfont.Face7x13)
)

// gaugeFill returns the filled height in pixels for a 0-1 charge ratio.
func gaugeFill(fraction float64) float32 {
	fraction = math.Max(0, math.Min(1, fraction))
	return float32(fraction) * gaugeH
}

// drawGauge renders a vertical energy bar with its value in the middle.
func drawGauge(screen *ebiten.Image, g *game.Gauge, x, y float32) {
	vector.FillRect(screen, x, y, gaugeW, gaugeH, gaugeEmpty, false)
	fill := gaugeFill(g.Fraction())
	vector.FillRect(screen, x, y+gaugeH-fill, gaugeW, fill, gaugeFull, false)
	drawText(screen, fmt.Sprint(g.Value()), float64(x+gaugeW/2), float64(y+gaugeH/2), 1, text.AlignCenter)
}

// drawText draws s centred vertically on y. align controls the x anchor.
func drawText(screen *ebiten.Image, s string, x, y, scale float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, hudFace, op)
}

// drawHUD draws both gauges, both scores and the control hint.
func (g *Game) drawHUD(screen *ebiten.Image) {
	drawGauge(screen, g.match.Alien.Gauge, 0, 0)
	drawGauge(screen, g.match.Player.Gauge, 0, game.ScreenHeight-gaugeH)

	drawText(screen, fmt.Sprintf("Alien Score: %d", g.match.AlienScore), 500, 26, 1, text.AlignStart)
	drawText(screen, fmt.Sprintf("Player Score: %d", g.match.PlayerScore), 500, 456, 1, text.AlignStart)

	if g.frames < hintFrames {
		drawText(screen, "Player "+g.keys[game.SidePlayer].Label(), game.ScreenWidth/2, game.ScreenHeight/2+20, 1, text.AlignCenter)
		drawText(screen, "Alien "+g.keys[game.SideAlien].Label(), game.ScreenWidth/2, game.ScreenHeight/2-20, 1, text.AlignCenter)
	}
}

// drawWinner draws the "<Side> Wins!" banner.
func drawWinner(screen *ebiten.Image, winner game.Side) {
	vector.FillRect(screen, 0, game.ScreenHeight/2+60, game.ScreenWidth, 80, color.RGBA{A: 170}, false)
	drawText(screen, winner.Label()+" Wins!", game.ScreenWidth/2, game.ScreenHeight/2+100, 4, text.AlignCenter)
}
