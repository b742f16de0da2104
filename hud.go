package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HUD text uses the built-in basic face scaled up, drawn with a dark
// outline so the score stays readable over any background.

const hudScale = 4

var hudFace text.Face = text.NewGoXFace(basicfont.Face7x13)

var (
	hudTextColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hudOutlineColor = color.NRGBA{A: 0xff}
)

// drawOutlinedText draws s centered at (cx, cy) with an outline, in the
// style of classic arcade score counters.
func drawOutlinedText(screen *ebiten.Image, s string, cx, cy float64) {
	w, h := text.Measure(s, hudFace, 0)
	w *= hudScale
	h *= hudScale

	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawTextAt(screen, s, cx-w/2+float64(dx), cy-h/2+float64(dy), hudOutlineColor)
		}
	}
	drawTextAt(screen, s, cx-w/2, cy-h/2, hudTextColor)
}

func drawTextAt(screen *ebiten.Image, s string, x, y float64, clr color.NRGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}
