package factorize

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cognicore/covec/pkg/covec/pmi"
)

// Matrix is a sparse symmetric word-by-word score matrix in row-major
// adjacency form. Rows and columns share one word index assigned in
// first-seen order.
type Matrix struct {
	words []string
	index map[string]int
	rows  [][]entry
}

type entry struct {
	col int
	val float64
}

// NewMatrix creates an empty sparse matrix
func NewMatrix() *Matrix {
	return &Matrix{index: make(map[string]int)}
}

// FromCounts builds the PMI matrix directly from streamed counter
// scores, never holding a triplet table.
func FromCounts(counts *pmi.Counter, calc *pmi.Calculator) *Matrix {
	m := NewMatrix()
	calc.EachScore(counts, func(s pmi.Score) {
		m.Add(s.A, s.B, s.Value)
	})
	return m
}

// Add records one directed score row. Symmetric input is the caller's
// responsibility; pmi.Calculator emits both directions.
func (m *Matrix) Add(a, b string, v float64) {
	i := m.wordIndex(a)
	j := m.wordIndex(b)
	m.rows[i] = append(m.rows[i], entry{col: j, val: v})
}

func (m *Matrix) wordIndex(w string) int {
	if i, ok := m.index[w]; ok {
		return i
	}
	i := len(m.words)
	m.index[w] = i
	m.words = append(m.words, w)
	m.rows = append(m.rows, nil)
	return i
}

// Dim returns the number of distinct words in the matrix
func (m *Matrix) Dim() int {
	return len(m.words)
}

// Words returns the word corresponding to each row, in index order
func (m *Matrix) Words() []string {
	return m.words
}

// mulDense computes dst = A * x for a dense n×k block, walking only the
// stored entries.
func (m *Matrix) mulDense(dst, x *mat.Dense) {
	n := m.Dim()
	_, k := x.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			dst.Set(i, j, 0)
		}
		for _, e := range m.rows[i] {
			for j := 0; j < k; j++ {
				dst.Set(i, j, dst.At(i, j)+e.val*x.At(e.col, j))
			}
		}
	}
}

// dense materializes the full symmetric matrix for the exact
// factorization path.
func (m *Matrix) dense() *mat.SymDense {
	n := m.Dim()
	s := mat.NewSymDense(n, nil)
	for i, row := range m.rows {
		for _, e := range row {
			if e.col >= i {
				s.SetSym(i, e.col, e.val)
			}
		}
	}
	return s
}
