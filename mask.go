package main

import (
	"image"
	"math"
)

// alphaThreshold is the minimum alpha for a pixel to count as opaque.
const alphaThreshold = 0x80

// Mask is the opaque-pixel silhouette of a sprite, used for
// pixel-level collision tests. Coordinates are local to the sprite's
// top-left corner.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask returns an empty (fully transparent) mask.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// MaskFromImage builds a mask from an image's alpha channel.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 >= alphaThreshold {
				m.bits[y*m.w+x] = true
			}
		}
	}
	return m
}

// SolidMask returns a fully opaque mask, for sprites without an alpha
// channel (pipes, placeholders).
func SolidMask(w, h int) *Mask {
	m := NewMask(w, h)
	for i := range m.bits {
		m.bits[i] = true
	}
	return m
}

func (m *Mask) Size() (int, int) { return m.w, m.h }

// At reports whether the pixel at local coordinates is opaque.
// Out-of-bounds coordinates are transparent.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

func (m *Mask) Set(x, y int, opaque bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = opaque
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// FlipV returns the mask mirrored vertically, matching a sprite drawn
// upside down (the top pipe of a pair).
func (m *Mask) FlipV() *Mask {
	out := NewMask(m.w, m.h)
	for y := 0; y < m.h; y++ {
		copy(out.bits[(m.h-1-y)*m.w:(m.h-y)*m.w], m.bits[y*m.w:(y+1)*m.w])
	}
	return out
}

// Rotate returns the silhouette of the sprite rotated by the given
// angle in degrees (positive = counter-clockwise on screen), with
// bounds grown to fit. The rotation pivots around the sprite center, so
// a rotated sprite keeps its center when the caller re-centers the new
// bounds. Each target pixel is inverse-mapped into the source mask.
func (m *Mask) Rotate(degrees float64) *Mask {
	if degrees == 0 || m.w == 0 || m.h == 0 {
		out := NewMask(m.w, m.h)
		copy(out.bits, m.bits)
		return out
	}

	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)

	w2 := int(math.Ceil(math.Abs(float64(m.w)*cos) + math.Abs(float64(m.h)*sin)))
	h2 := int(math.Ceil(math.Abs(float64(m.w)*sin) + math.Abs(float64(m.h)*cos)))
	out := NewMask(w2, h2)

	cx1 := float64(m.w) / 2
	cy1 := float64(m.h) / 2
	cx2 := float64(w2) / 2
	cy2 := float64(h2) / 2

	for y := 0; y < h2; y++ {
		for x := 0; x < w2; x++ {
			// Screen y grows downward, so a positive (counter-clockwise
			// on screen) angle is a clockwise rotation in math terms.
			dx := float64(x) + 0.5 - cx2
			dy := float64(y) + 0.5 - cy2
			sx := cos*dx - sin*dy + cx1
			sy := sin*dx + cos*dy + cy1
			// Floor, not truncate: a source coordinate in (-1, 0) is
			// out of bounds, not column/row 0.
			if m.At(int(math.Floor(sx)), int(math.Floor(sy))) {
				out.bits[y*w2+x] = true
			}
		}
	}
	return out
}

// Overlaps reports whether any opaque pixel of m coincides with an
// opaque pixel of other, where (dx, dy) is other's top-left corner
// relative to m's. It short-circuits on the first overlapping pair.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.w, dx+other.w)
	y1 := min(m.h, dy+other.h)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.bits[y*m.w+x] && other.bits[(y-dy)*other.w+(x-dx)] {
				return true
			}
		}
	}
	return false
}
