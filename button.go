package main

import "github.com/hajimehoshi/ebiten/v2"

// Button is a clickable sprite. A click is reported once per press, on
// the press edge while the cursor is inside the bounds.
type Button struct {
	rect      Rect
	img       *ebiten.Image
	isPressed bool
}

func NewButton(x, y, w, h float64, img *ebiten.Image) *Button {
	return &Button{
		rect: Rect{X: x, Y: y, Width: w, Height: h},
		img:  img,
	}
}

func (b *Button) Update(in *Input) bool {
	if b.rect.Contains(float64(in.CursorX), float64(in.CursorY)) {
		if in.Pressed && !b.isPressed {
			b.isPressed = true
			return true
		}
		if !in.Pressed {
			b.isPressed = false
		}
	}
	return false
}

func (b *Button) Draw(screen *ebiten.Image) {
	if b.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(b.rect.X, b.rect.Y)
	screen.DrawImage(b.img, op)
}
