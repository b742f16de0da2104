package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wolfython/wolfython/common"
	"github.com/wolfython/wolfython/config"
)

// Wolf is the player character. X/Y is the sprite center; the collision
// silhouette is recomputed from the rotated sprite every Playing tick
// so pixel tests match what is on screen.
type Wolf struct {
	X, Y           float64
	StartX, StartY float64
	// Velocity is the vertical velocity in px/tick (negative = up).
	Velocity float64
	// Angle is the render tilt in degrees, derived from velocity.
	Angle float64

	input  *Input
	frames []*ebiten.Image
	masks  []*Mask
	mask   *Mask

	frameIndex  int
	animCounter int
	isClicked   bool

	gravity      float64
	maxFallSpeed float64
	jumpImpulse  float64
	flapCooldown int
	groundLine   float64
}

// NewWolf creates the character at (x, y). frames may be nil when no
// renderer is attached; masks must have one entry per animation frame.
func NewWolf(x, y float64, frames []*ebiten.Image, masks []*Mask, input *Input, phys config.Physics, groundLine float64) *Wolf {
	w := &Wolf{
		X:      x,
		Y:      y,
		StartX: x,
		StartY: y,
		input:  input,
		frames: frames,
		masks:  masks,
	}
	w.Retune(phys, groundLine)
	w.mask = masks[0].Rotate(0)
	return w
}

// Retune applies physics tuning; used at construction and on config
// hot reload.
func (w *Wolf) Retune(phys config.Physics, groundLine float64) {
	w.gravity = phys.Gravity
	w.maxFallSpeed = phys.MaxFallSpeed
	w.jumpImpulse = phys.JumpImpulse
	w.flapCooldown = phys.FlapCooldown
	w.groundLine = groundLine
}

// Update advances the character one tick and reports whether a jump
// impulse was applied this tick.
func (w *Wolf) Update(state GameState) bool {
	switch state {
	case StatePlaying:
		w.applyPhysics()
		jumped := w.handleInput()
		w.animate()
		w.rotate()
		return jumped
	case StateGameOver:
		w.pointDown()
	}
	return false
}

func (w *Wolf) applyPhysics() {
	w.Velocity += w.gravity
	w.Velocity = math.Min(w.Velocity, w.maxFallSpeed)

	// Once the sprite touches the ground line, vertical integration
	// stops; the boundary check in the collision detector ends the run.
	if w.Bounds().Bottom() < w.groundLine {
		w.Y += math.Floor(w.Velocity)
	}
}

// handleInput applies the jump impulse on the rising edge of the
// activate input. A held input never re-triggers.
func (w *Wolf) handleInput() bool {
	if w.input.Pressed && !w.isClicked {
		w.isClicked = true
		w.Velocity = w.jumpImpulse
		return true
	}
	if !w.input.Pressed {
		w.isClicked = false
	}
	return false
}

func (w *Wolf) animate() {
	w.animCounter++
	if w.animCounter > w.flapCooldown {
		w.animCounter = 0
		w.frameIndex = (w.frameIndex + 1) % len(w.masks)
	}
}

// rotate derives the tilt from velocity (steeper dive, steeper nose
// down) and recomputes the collision silhouette from the rotated frame.
func (w *Wolf) rotate() {
	w.Angle = common.Clamp(-2*w.Velocity, -90, 45)
	w.mask = w.masks[w.frameIndex].Rotate(w.Angle)
}

// pointDown freezes the sprite nose down once the run has ended.
func (w *Wolf) pointDown() {
	w.Angle = -90
	w.mask = w.masks[w.frameIndex].Rotate(-90)
}

// Bounds is the axis-aligned box of the current rotated silhouette,
// centered on the sprite position.
func (w *Wolf) Bounds() Rect {
	mw, mh := w.mask.Size()
	return Rect{
		X:      w.X - float64(mw)/2,
		Y:      w.Y - float64(mh)/2,
		Width:  float64(mw),
		Height: float64(mh),
	}
}

// Mask is the current rotated collision silhouette.
func (w *Wolf) Mask() *Mask {
	return w.mask
}

// Reset restores the spawn position and zeroes all per-run state.
func (w *Wolf) Reset(x, y float64) {
	w.X = x
	w.Y = y
	w.Velocity = 0
	w.Angle = 0
	w.isClicked = false
	w.frameIndex = 0
	w.animCounter = 0
	w.mask = w.masks[0].Rotate(0)
}

func (w *Wolf) Draw(screen *ebiten.Image) {
	if w.frames == nil {
		return
	}
	frame := w.frames[w.frameIndex]
	fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(fw)/2, -float64(fh)/2)
	// Ebiten rotates clockwise on screen for positive angles; the tilt
	// convention here is positive = nose up, so negate.
	op.GeoM.Rotate(-w.Angle * math.Pi / 180)
	op.GeoM.Translate(w.X, w.Y)
	screen.DrawImage(frame, op)
}
