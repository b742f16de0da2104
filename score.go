package main

import "math"

// pairMarkTolerance groups the two pipes of a pair by center x when
// marking them scored; pairs spawn at the same x so anything closer
// than this belongs to the same pair.
const pairMarkTolerance = 10

// ScoreTracker counts passed pairs. A single passing flag is shared
// across all pairs, which is correct as long as the spawn interval and
// scroll speed keep pairs from ever overlapping in x-range on screen.
type ScoreTracker struct {
	score   int
	passing bool
}

func (t *ScoreTracker) Score() int {
	return t.score
}

// Update checks the nearest pair against the character's x center and
// returns true on the single tick a pair is scored.
func (t *ScoreTracker) Update(wolfCenterX float64, pipes []*Pipe) bool {
	if len(pipes) == 0 {
		return false
	}

	first := pipes[0]
	for _, p := range pipes[1:] {
		if p.Rect().CenterX() < first.Rect().CenterX() {
			first = p
		}
	}
	r := first.Rect()

	if r.X < wolfCenterX && wolfCenterX < r.Right() && !t.passing {
		t.passing = true
	}

	if !t.passing || wolfCenterX <= r.Right() {
		return false
	}

	scored := false
	if !first.Scored {
		t.score++
		scored = true
		// Mark both halves of the pair so neither can count again.
		for _, p := range pipes {
			if math.Abs(p.Rect().CenterX()-r.CenterX()) < pairMarkTolerance {
				p.Scored = true
			}
		}
	}
	t.passing = false
	return scored
}

func (t *ScoreTracker) Reset() {
	t.score = 0
	t.passing = false
}
