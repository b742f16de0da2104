package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the per-tick sample of pointer and key state. It is
// polled once at the top of every tick; everything downstream reads
// the same snapshot.
type Input struct {
	// CursorX/Y is the pointer position in screen pixels.
	CursorX, CursorY int
	// Pressed is true while the activate input (left mouse button or
	// space) is held down.
	Pressed bool
	// JustPressed is true only on the tick the activate input went down.
	JustPressed bool
	// PauseJustPressed is true on the tick Escape was pressed.
	PauseJustPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Poll samples the current input devices into the struct.
func (i *Input) Poll() {
	i.CursorX, i.CursorY = ebiten.CursorPosition()

	i.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsKeyPressed(ebiten.KeySpace)
	i.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.PauseJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
