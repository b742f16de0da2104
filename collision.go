package main

import "github.com/jakecoffman/cp"

// Collision detection: a cheap AABB broad phase prunes pipes that
// cannot touch the character, then the pixel masks decide. Any hit is
// terminal, so iteration order does not matter.

func bbFromRect(r Rect) cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.Right(), T: r.Bottom()}
}

// hitsPipes reports whether any opaque pixel of the character's rotated
// silhouette overlaps an opaque pipe pixel.
func hitsPipes(w *Wolf, pipes []*Pipe) bool {
	wb := w.Bounds()
	wbb := bbFromRect(wb)
	for _, p := range pipes {
		pr := p.Rect()
		if !wbb.Intersects(bbFromRect(pr)) {
			continue
		}
		dx := int(pr.X - wb.X)
		dy := int(pr.Y - wb.Y)
		if w.Mask().Overlaps(p.Mask(), dx, dy) {
			return true
		}
	}
	return false
}

// hitsBounds reports whether the character flew above the screen or
// reached the ground line. Touching the line exactly ends the run.
func hitsBounds(w *Wolf, groundLine float64) bool {
	b := w.Bounds()
	return b.Y < 0 || b.Bottom() >= groundLine
}
