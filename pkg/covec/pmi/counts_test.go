package pmi

import "testing"

func TestCounterBasics(t *testing.T) {
	c := NewCounter()
	c.AddWindow([]string{"the", "cat", "sat"})
	c.AddWindow([]string{"cat", "sat", "on"})

	if c.TotalWindows() != 2 {
		t.Errorf("expected 2 windows, got %d", c.TotalWindows())
	}
	if c.WordCount("cat") != 2 {
		t.Errorf("expected cat in 2 windows, got %d", c.WordCount("cat"))
	}
	if c.WordCount("the") != 1 {
		t.Errorf("expected the in 1 window, got %d", c.WordCount("the"))
	}
	if c.PairCount("cat", "sat") != 2 {
		t.Errorf("expected cat/sat pair count 2, got %d", c.PairCount("cat", "sat"))
	}
	if c.PairCount("the", "on") != 0 {
		t.Errorf("expected the/on pair count 0, got %d", c.PairCount("the", "on"))
	}
}

func TestCounterPairOrderCanonical(t *testing.T) {
	c := NewCounter()
	c.AddWindow([]string{"beta", "alpha"})

	if c.PairCount("alpha", "beta") != c.PairCount("beta", "alpha") {
		t.Error("pair counts must be order-independent")
	}
	if c.PairCount("alpha", "beta") != 1 {
		t.Errorf("expected pair count 1, got %d", c.PairCount("alpha", "beta"))
	}
}

func TestCounterDuplicatesWithinWindow(t *testing.T) {
	c := NewCounter()
	c.AddWindow([]string{"the", "cat", "the"})

	// Window membership is a set: duplicates count once
	if c.WordCount("the") != 1 {
		t.Errorf("duplicate word must count once per window, got %d", c.WordCount("the"))
	}
	if c.PairCount("the", "cat") != 1 {
		t.Errorf("expected pair count 1, got %d", c.PairCount("the", "cat"))
	}
}

func TestScoresSymmetric(t *testing.T) {
	c := NewCounter()
	c.AddWindow([]string{"a", "b"})
	c.AddWindow([]string{"a", "b", "c"})
	c.AddWindow([]string{"b", "c"})

	calc := NewCalculator(0)
	scores := calc.Scores(c)

	byPair := make(map[[2]string]float64, len(scores))
	for _, s := range scores {
		byPair[[2]string{s.A, s.B}] = s.Value
	}

	// Both orderings present with a shared value
	for pair, v := range byPair {
		rev, ok := byPair[[2]string{pair[1], pair[0]}]
		if !ok {
			t.Fatalf("missing reverse row for %v", pair)
		}
		if rev != v {
			t.Errorf("PMI(%s,%s)=%f but PMI(%s,%s)=%f", pair[0], pair[1], v, pair[1], pair[0], rev)
		}
	}
}

func TestZeroCooccurrenceOmitted(t *testing.T) {
	c := NewCounter()
	c.AddWindow([]string{"cat", "sat"})
	c.AddWindow([]string{"dog", "ran"})

	calc := NewCalculator(0)
	scores := calc.Scores(c)

	for _, s := range scores {
		if (s.A == "cat" && s.B == "dog") || (s.A == "dog" && s.B == "cat") {
			t.Error("pair with zero co-occurrence must not be materialized")
		}
	}

	// 2 pairs, both directions
	if len(scores) != 4 {
		t.Errorf("expected 4 rows, got %d", len(scores))
	}
}
