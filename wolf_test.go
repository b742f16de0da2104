package main

import (
	"testing"

	"github.com/wolfython/wolfython/config"
)

func newTestWolf(in *Input) *Wolf {
	masks := []*Mask{SolidMask(50, 35), SolidMask(50, 35), SolidMask(50, 35)}
	cfg := config.Default()
	return NewWolf(100, 468, nil, masks, in, cfg.Physics, cfg.GroundLine())
}

func TestWolfTerminalVelocity(t *testing.T) {
	w := newTestWolf(&Input{})

	for i := 0; i < 120; i++ {
		w.Update(StatePlaying)
		if w.Velocity > config.Default().Physics.MaxFallSpeed {
			t.Fatalf("tick %d: velocity %v above terminal", i, w.Velocity)
		}
	}
	if w.Velocity != config.Default().Physics.MaxFallSpeed {
		t.Fatalf("velocity = %v, want terminal %v", w.Velocity, config.Default().Physics.MaxFallSpeed)
	}
}

func TestWolfJumpEdge(t *testing.T) {
	in := &Input{}
	w := newTestWolf(in)

	in.Pressed = true
	if !w.Update(StatePlaying) {
		t.Fatalf("press edge did not jump")
	}
	if w.Velocity != config.Default().Physics.JumpImpulse {
		t.Fatalf("velocity = %v, want %v", w.Velocity, config.Default().Physics.JumpImpulse)
	}

	// A held input must not re-trigger.
	for i := 0; i < 10; i++ {
		if w.Update(StatePlaying) {
			t.Fatalf("held input re-triggered jump on tick %d", i)
		}
	}

	in.Pressed = false
	w.Update(StatePlaying)
	in.Pressed = true
	if !w.Update(StatePlaying) {
		t.Fatalf("release then press did not jump again")
	}
}

func TestWolfStopsAtGroundLine(t *testing.T) {
	w := newTestWolf(&Input{})
	groundLine := config.Default().GroundLine()

	var prev float64
	for i := 0; i < 600; i++ {
		prev = w.Y
		w.Update(StatePlaying)
	}
	if w.Y != prev {
		t.Fatalf("still falling after reaching the ground line")
	}
	if w.Bounds().Bottom() < groundLine {
		t.Fatalf("stopped early: bottom %v above line %v", w.Bounds().Bottom(), groundLine)
	}
}

func TestWolfAnimationCycle(t *testing.T) {
	w := newTestWolf(&Input{})
	cooldown := config.Default().Physics.FlapCooldown

	if w.frameIndex != 0 {
		t.Fatalf("frameIndex = %d at spawn, want 0", w.frameIndex)
	}
	for i := 0; i < cooldown+1; i++ {
		w.Update(StatePlaying)
	}
	if w.frameIndex != 1 {
		t.Fatalf("frameIndex = %d after one cycle, want 1", w.frameIndex)
	}
	for i := 0; i < 2*(cooldown+1); i++ {
		w.Update(StatePlaying)
	}
	if w.frameIndex != 0 {
		t.Fatalf("frameIndex = %d after full wrap, want 0", w.frameIndex)
	}
}

func TestWolfTilt(t *testing.T) {
	t.Run("dive_tilts_down", func(t *testing.T) {
		w := newTestWolf(&Input{})
		for i := 0; i < 60; i++ {
			w.Update(StatePlaying)
		}
		if want := -2 * w.Velocity; w.Angle != want {
			t.Fatalf("Angle = %v, want %v", w.Angle, want)
		}
	})

	t.Run("climb_clamped_at_45", func(t *testing.T) {
		w := newTestWolf(&Input{})
		w.Velocity = -60
		w.Update(StatePlaying)
		if w.Angle != 45 {
			t.Fatalf("Angle = %v, want clamp at 45", w.Angle)
		}
	})

	t.Run("game_over_points_down", func(t *testing.T) {
		w := newTestWolf(&Input{})
		w.Update(StateGameOver)
		if w.Angle != -90 {
			t.Fatalf("Angle = %v, want -90", w.Angle)
		}
	})
}

func TestWolfReset(t *testing.T) {
	in := &Input{Pressed: true}
	w := newTestWolf(in)
	for i := 0; i < 30; i++ {
		w.Update(StatePlaying)
	}

	w.Reset(100, 468)

	if w.X != 100 || w.Y != 468 {
		t.Fatalf("position = (%v, %v), want (100, 468)", w.X, w.Y)
	}
	if w.Velocity != 0 || w.Angle != 0 {
		t.Fatalf("velocity/angle not zeroed: %v, %v", w.Velocity, w.Angle)
	}
	if w.frameIndex != 0 {
		t.Fatalf("frameIndex = %d, want 0", w.frameIndex)
	}
}
