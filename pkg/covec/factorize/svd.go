// Package factorize turns a sparse symmetric PMI matrix into dense
// word vectors via truncated singular value decomposition.
//
// Scaling convention: each retained singular vector is scaled by its
// signed Ritz value, so the returned row for word w in dimension d is
// θ_d·V[w,d] (equivalently U·Σ with U = V·sign(Θ)). Dot products
// between rows therefore reflect the squared spectrum; the convention
// affects magnitudes, not the ranking order under a fixed model.
package factorize

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/cognicore/covec/pkg/covec/internalerr"
)

// Options controls the truncated factorization
type Options struct {
	Dimensions    int // retained singular vectors, capped at vocab size
	MaxIterations int // iteration cap for the subspace solver
}

// Factorization holds the dense word-vector output
type Factorization struct {
	Words          []string
	Vectors        *mat.Dense // len(Words) × Dimensions, scaled rows
	SingularValues []float64
	Dimensions     int
	Converged      bool
	Iterations     int
}

const (
	convergenceTol = 1e-7
	randomSeed     = 1 // factorization is part of a deterministic batch transform
)

// Truncated computes a rank-k factorization of the matrix. When k
// equals the matrix dimension the exact dense eigendecomposition is
// used; otherwise a randomized subspace iteration runs until the Ritz
// value estimates settle or MaxIterations is reached. Hitting the cap
// is not an error: the best approximation found is returned with
// Converged set to false.
func Truncated(m *Matrix, opts Options) (*Factorization, error) {
	n := m.Dim()
	if n == 0 {
		return nil, fmt.Errorf("factorize: %w", internalerr.ErrEmptyVocabulary)
	}
	if opts.Dimensions < 1 {
		return nil, fmt.Errorf("factorize: dimensions must be >= 1, got %d", opts.Dimensions)
	}
	if opts.MaxIterations < 1 {
		opts.MaxIterations = 1
	}

	k := opts.Dimensions
	if k >= n {
		return full(m, n)
	}
	return subspace(m, n, k, opts.MaxIterations)
}

// full is the exact path: dense symmetric eigendecomposition, all
// pairs ±λ retained.
func full(m *Matrix, n int) (*Factorization, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(m.dense(), true); !ok {
		return nil, fmt.Errorf("factorize: eigendecomposition failed")
	}

	values := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	return assemble(m.Words(), values, &vecs, n, true, 0), nil
}

// subspace is the iterative path: randomized block power iteration
// with an orthonormal basis maintained by thin SVD, Ritz values from
// the projected k×k problem.
func subspace(m *Matrix, n, k, maxIter int) (*Factorization, error) {
	rng := rand.New(rand.NewSource(randomSeed))

	q := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			q.Set(i, j, rng.NormFloat64())
		}
	}
	if err := orthonormalize(q); err != nil {
		return nil, err
	}

	z := mat.NewDense(n, k, nil)
	prev := make([]float64, k)
	converged := false
	iterations := 0

	for it := 1; it <= maxIter; it++ {
		iterations = it
		m.mulDense(z, q)

		// Singular values of A·Q estimate the dominant spectrum
		// magnitudes; stable estimates mean the basis has settled.
		var svd mat.SVD
		if ok := svd.Factorize(z, mat.SVDThin); !ok {
			return nil, fmt.Errorf("factorize: orthonormalization failed at iteration %d", it)
		}
		sigma := svd.Values(nil)

		if it > 1 && settled(prev, sigma) {
			converged = true
		}
		copy(prev, sigma)

		var u mat.Dense
		svd.UTo(&u)
		q.Copy(&u)

		if converged {
			break
		}
	}

	// Ritz step: project A onto the final basis and solve the small
	// symmetric problem exactly.
	m.mulDense(z, q)
	t := mat.NewDense(k, k, nil)
	t.Mul(q.T(), z)

	sym := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			sym.SetSym(i, j, (t.At(i, j)+t.At(j, i))/2)
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, fmt.Errorf("factorize: ritz eigendecomposition failed")
	}

	values := eig.Values(nil)
	var w mat.Dense
	eig.VectorsTo(&w)

	var ritz mat.Dense
	ritz.Mul(q, &w)

	return assemble(m.Words(), values, &ritz, k, converged, iterations), nil
}

// assemble orders the spectrum by magnitude, keeps the top k entries
// and scales each retained vector by its signed value.
func assemble(words []string, values []float64, vecs *mat.Dense, k int, converged bool, iterations int) *Factorization {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		va, vb := math.Abs(values[order[a]]), math.Abs(values[order[b]])
		if va != vb {
			return va > vb
		}
		return values[order[a]] > values[order[b]]
	})
	if k > len(order) {
		k = len(order)
	}
	order = order[:k]

	n := len(words)
	out := mat.NewDense(n, k, nil)
	sigma := make([]float64, k)
	for d, idx := range order {
		sigma[d] = math.Abs(values[idx])
		for i := 0; i < n; i++ {
			out.Set(i, d, values[idx]*vecs.At(i, idx))
		}
	}

	return &Factorization{
		Words:          words,
		Vectors:        out,
		SingularValues: sigma,
		Dimensions:     k,
		Converged:      converged,
		Iterations:     iterations,
	}
}

// settled reports whether two successive spectrum estimates agree to
// within the relative tolerance.
func settled(prev, cur []float64) bool {
	for i := range cur {
		scale := math.Abs(cur[i])
		if scale < 1 {
			scale = 1
		}
		if math.Abs(cur[i]-prev[i]) > convergenceTol*scale {
			return false
		}
	}
	return true
}

func orthonormalize(q *mat.Dense) error {
	var svd mat.SVD
	if ok := svd.Factorize(q, mat.SVDThin); !ok {
		return fmt.Errorf("factorize: initial basis orthonormalization failed")
	}
	var u mat.Dense
	svd.UTo(&u)
	q.Copy(&u)
	return nil
}
