package main

import (
	"image"
	"image/color"
	"testing"
)

func TestMaskFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{A: 0xff})
	img.SetNRGBA(1, 0, color.NRGBA{A: 0x80})
	img.SetNRGBA(2, 0, color.NRGBA{A: 0x7f})
	img.SetNRGBA(0, 1, color.NRGBA{A: 0x00})

	m := MaskFromImage(img)

	cases := []struct {
		name string
		x, y int
		want bool
	}{
		{"fully_opaque", 0, 0, true},
		{"at_threshold", 1, 0, true},
		{"below_threshold", 2, 0, false},
		{"transparent", 0, 1, false},
		{"out_of_bounds", -1, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := m.At(c.x, c.y); got != c.want {
				t.Fatalf("At(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}

	if m.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", m.Count())
	}
}

func TestMaskFlipV(t *testing.T) {
	m := NewMask(2, 3)
	m.Set(0, 0, true)
	m.Set(1, 2, true)

	f := m.FlipV()

	if !f.At(0, 2) || !f.At(1, 0) {
		t.Fatalf("flipped pixels not where expected")
	}
	if f.Count() != m.Count() {
		t.Fatalf("flip changed pixel count: %d != %d", f.Count(), m.Count())
	}
	if !m.At(0, 0) {
		t.Fatalf("FlipV mutated the source mask")
	}
}

func TestMaskRotate(t *testing.T) {
	t.Run("zero_angle_copies", func(t *testing.T) {
		m := SolidMask(4, 3)
		r := m.Rotate(0)
		if w, h := r.Size(); w != 4 || h != 3 {
			t.Fatalf("Size() = (%d, %d), want (4, 3)", w, h)
		}
		r.Set(0, 0, false)
		if !m.At(0, 0) {
			t.Fatalf("Rotate(0) shares storage with the source")
		}
	})

	t.Run("bounds_grow_to_fit", func(t *testing.T) {
		m := SolidMask(50, 35)
		r := m.Rotate(45)
		w, h := r.Size()
		if w <= 50 || h <= 35 {
			t.Fatalf("rotated bounds (%d, %d) did not grow", w, h)
		}
		if w > 50+35 || h > 50+35 {
			t.Fatalf("rotated bounds (%d, %d) grew past the diagonal sum", w, h)
		}
	})

	t.Run("center_stays_opaque", func(t *testing.T) {
		for _, deg := range []float64{-90, -16, 20, 45, 90} {
			r := SolidMask(50, 35).Rotate(deg)
			w, h := r.Size()
			if !r.At(w/2, h/2) {
				t.Fatalf("center transparent after Rotate(%v)", deg)
			}
		}
	})

	t.Run("no_edge_widening", func(t *testing.T) {
		// A solid 2x1 strip rotated 45 degrees covers only the center
		// sample of the grown 3x3 bounds. Truncating the inverse-mapped
		// coordinates instead of flooring them aliases source
		// coordinates in (-1, 0) to row/column 0 and lights up the
		// edge pixels too.
		r := SolidMask(2, 1).Rotate(45)
		if w, h := r.Size(); w != 3 || h != 3 {
			t.Fatalf("Size() = (%d, %d), want (3, 3)", w, h)
		}
		if !r.At(1, 1) {
			t.Fatalf("center pixel transparent")
		}
		if n := r.Count(); n != 1 {
			t.Fatalf("Count() = %d, want 1", n)
		}
	})

	t.Run("empty_stays_empty", func(t *testing.T) {
		if n := NewMask(10, 10).Rotate(30).Count(); n != 0 {
			t.Fatalf("Count() = %d, want 0", n)
		}
	})
}

func TestMaskOverlaps(t *testing.T) {
	a := SolidMask(4, 4)
	single := NewMask(4, 4)
	single.Set(0, 0, true)

	cases := []struct {
		name   string
		other  *Mask
		dx, dy int
		want   bool
	}{
		{"aligned_solid", SolidMask(4, 4), 0, 0, true},
		{"one_pixel_corner", single, 3, 3, true},
		{"offset_past_edge", single, 4, 0, false},
		{"negative_offset_touch", SolidMask(4, 4), -3, -3, true},
		{"fully_disjoint", SolidMask(4, 4), 10, 10, false},
		{"empty_other", NewMask(4, 4), 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := a.Overlaps(c.other, c.dx, c.dy); got != c.want {
				t.Fatalf("Overlaps(dx=%d, dy=%d) = %v, want %v", c.dx, c.dy, got, c.want)
			}
		})
	}
}
