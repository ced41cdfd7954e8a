package pmi

import "math"

// Calculator handles PMI (Pointwise Mutual Information) calculations
type Calculator struct {
	epsilon float64 // smoothing constant, 0 for plain PMI
}

// NewCalculator creates a PMI calculator with the given epsilon.
// Epsilon 0 gives the plain log-ratio; pairs that never co-occur are
// simply absent from the counter, so -Inf never materializes.
func NewCalculator(epsilon float64) *Calculator {
	if epsilon < 0 {
		epsilon = 0
	}
	return &Calculator{epsilon: epsilon}
}

// PMI calculates the pointwise mutual information between two words
//
// PMI(a,b) = log((N_ab + ε) * N / ((N_a + ε)(N_b + ε)))
//
// Where:
//   - N_ab = number of windows containing both a and b
//   - N_a, N_b = number of windows containing each word
//   - N = total number of windows
//   - ε = smoothing constant (default 0)
func (c *Calculator) PMI(nAB, nA, nB, N int64) float64 {
	if N == 0 {
		return 0
	}

	numerator := (float64(nAB) + c.epsilon) * float64(N)
	denominator := (float64(nA) + c.epsilon) * (float64(nB) + c.epsilon)

	if denominator == 0 {
		return 0
	}

	return math.Log(numerator / denominator)
}

// NPMI calculates normalized PMI (range: -1 to 1)
// NPMI(a,b) = PMI(a,b) / -log(P(a,b))
func (c *Calculator) NPMI(nAB, nA, nB, N int64) float64 {
	if N == 0 || nAB == 0 {
		return 0
	}

	pmi := c.PMI(nAB, nA, nB, N)
	pAB := (float64(nAB) + c.epsilon) / float64(N)
	logPAB := math.Log(pAB)

	if logPAB == 0 {
		return 0
	}

	return pmi / -logPAB
}

// Score is one symmetric PMI triplet row
type Score struct {
	A     string
	B     string
	Value float64
}

// Scores materializes every co-occurring pair's PMI, emitting both
// orderings (a,b) and (b,a) with a shared value. Pairs with zero
// co-occurrence are omitted entirely.
func (c *Calculator) Scores(counts *Counter) []Score {
	out := make([]Score, 0, 2*len(counts.Nxy))
	c.EachScore(counts, func(s Score) {
		out = append(out, s)
	})
	return out
}

// EachScore streams symmetric PMI rows to fn without materializing the
// full triplet table. Both orderings of each pair are emitted.
func (c *Calculator) EachScore(counts *Counter, fn func(Score)) {
	for pair, nAB := range counts.Nxy {
		if nAB == 0 {
			continue
		}
		v := c.PMI(nAB, counts.Nx[pair.A], counts.Nx[pair.B], counts.N)
		fn(Score{A: pair.A, B: pair.B, Value: v})
		fn(Score{A: pair.B, B: pair.A, Value: v})
	}
}
