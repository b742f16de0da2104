package main

import "testing"

func testPair(x float64) []*Pipe {
	return []*Pipe{
		{X: x, Y: 0, Width: 80, Height: 400, Top: true},
		{X: x, Y: 550, Width: 80, Height: 400},
	}
}

func TestScoreExactlyOnce(t *testing.T) {
	tr := &ScoreTracker{}
	pipes := testPair(80)

	// Approach: character center still left of the pair.
	if tr.Update(50, pipes) {
		t.Fatalf("scored before entering the pair")
	}

	// Inside the pair.
	if tr.Update(100, pipes) {
		t.Fatalf("scored while still inside the pair")
	}

	// Past the trailing edge: exactly one point.
	if !tr.Update(170, pipes) {
		t.Fatalf("did not score after clearing the pair")
	}
	if tr.Score() != 1 {
		t.Fatalf("Score() = %d, want 1", tr.Score())
	}

	// Repeated ticks past the same pair never score again.
	for i := 0; i < 5; i++ {
		if tr.Update(170, pipes) {
			t.Fatalf("pair scored twice")
		}
	}
	if tr.Score() != 1 {
		t.Fatalf("Score() = %d after re-checks, want 1", tr.Score())
	}
}

func TestScoreMarksBothHalves(t *testing.T) {
	tr := &ScoreTracker{}
	pipes := testPair(80)
	far := &Pipe{X: 500, Y: 550, Width: 80, Height: 400}
	pipes = append(pipes, far)

	tr.Update(100, pipes)
	tr.Update(170, pipes)

	if !pipes[0].Scored || !pipes[1].Scored {
		t.Fatalf("pair halves not both marked: %v, %v", pipes[0].Scored, pipes[1].Scored)
	}
	if far.Scored {
		t.Fatalf("distant pipe marked as part of the pair")
	}
}

func TestScoreNearestPairFirst(t *testing.T) {
	tr := &ScoreTracker{}
	near := testPair(80)
	pipes := append(testPair(500), near...)

	tr.Update(100, pipes)
	if !tr.Update(170, pipes) {
		t.Fatalf("nearest pair did not score")
	}
	if near[0].Scored != true {
		t.Fatalf("nearest pair not marked")
	}
	if pipes[0].Scored {
		t.Fatalf("far pair marked early")
	}
}

func TestScoreEdgeCases(t *testing.T) {
	t.Run("no_pipes", func(t *testing.T) {
		tr := &ScoreTracker{}
		if tr.Update(100, nil) {
			t.Fatalf("scored with no pipes")
		}
	})

	t.Run("past_without_entering", func(t *testing.T) {
		// The passing flag was never set, so being past the pair alone
		// must not score.
		tr := &ScoreTracker{}
		if tr.Update(170, testPair(80)) {
			t.Fatalf("scored without ever being inside the pair")
		}
	})

	t.Run("reset_clears_score", func(t *testing.T) {
		tr := &ScoreTracker{}
		pipes := testPair(80)
		tr.Update(100, pipes)
		tr.Update(170, pipes)
		tr.Reset()
		if tr.Score() != 0 {
			t.Fatalf("Score() = %d after Reset, want 0", tr.Score())
		}
	})
}
