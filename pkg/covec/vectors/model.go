// Package vectors answers nearest-neighbor and analogy queries over a
// trained dense word-vector model.
package vectors

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/cognicore/covec/pkg/covec/internalerr"
)

// Model is an immutable trained word-vector set
type Model struct {
	id        string
	words     []string
	index     map[string]int
	matrix    *mat.Dense // len(words) × dims
	dims      int
	converged bool
}

// New creates a model from a word list and its dense coordinate matrix.
// The matrix row order must match the word order.
func New(id string, words []string, matrix *mat.Dense, converged bool) (*Model, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("vectors: %w", internalerr.ErrEmptyVocabulary)
	}

	rows, dims := matrix.Dims()
	if rows != len(words) {
		return nil, fmt.Errorf("vectors: %d words but %d matrix rows", len(words), rows)
	}

	index := make(map[string]int, len(words))
	for i, w := range words {
		index[w] = i
	}

	return &Model{
		id:        id,
		words:     words,
		index:     index,
		matrix:    matrix,
		dims:      dims,
		converged: converged,
	}, nil
}

// ID returns the model identifier assigned at training time
func (m *Model) ID() string { return m.id }

// Dimensions returns the vector width
func (m *Model) Dimensions() int { return m.dims }

// Converged reports whether the factorizer settled before its
// iteration cap.
func (m *Model) Converged() bool { return m.converged }

// Words returns the vocabulary in matrix row order
func (m *Model) Words() []string { return m.words }

// Vector returns the dense coordinates for a word
func (m *Model) Vector(word string) ([]float64, error) {
	i, ok := m.index[word]
	if !ok {
		return nil, fmt.Errorf("vectors: %q: %w", word, internalerr.ErrUnknownWord)
	}
	return mat.Row(nil, i, m.matrix), nil
}

// Match is one ranked query result
type Match struct {
	Word  string
	Score float64
}

// NearestSynonyms ranks the whole vocabulary by dot product against the
// word's own vector, highest first. The query word stays in the
// ranking; callers wanting neighbors only should skip it. k <= 0
// returns every word.
func (m *Model) NearestSynonyms(word string, k int) ([]Match, error) {
	target, err := m.Vector(word)
	if err != nil {
		return nil, err
	}
	return m.rank(target, k), nil
}

// Analogy ranks the vocabulary against vector(a) - vector(b) +
// vector(c). Any unknown input word fails before ranking.
func (m *Model) Analogy(a, b, c string, k int) ([]Match, error) {
	va, err := m.Vector(a)
	if err != nil {
		return nil, err
	}
	vb, err := m.Vector(b)
	if err != nil {
		return nil, err
	}
	vc, err := m.Vector(c)
	if err != nil {
		return nil, err
	}

	target := make([]float64, m.dims)
	for i := range target {
		target[i] = va[i] - vb[i] + vc[i]
	}
	return m.rank(target, k), nil
}

// rank scores every row against the target vector and sorts
// descending; ties break alphabetically so results are deterministic.
func (m *Model) rank(target []float64, k int) []Match {
	matches := make([]Match, len(m.words))
	for i, w := range m.words {
		score := 0.0
		for j := 0; j < m.dims; j++ {
			score += m.matrix.At(i, j) * target[j]
		}
		matches[i] = Match{Word: w, Score: score}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Word < matches[j].Word
	})

	if k > 0 && len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// Each walks the model as (word, dimension, value) triplets in row
// order, the boundary format consumed by stores and export tools.
func (m *Model) Each(fn func(word string, dim int, value float64)) {
	for i, w := range m.words {
		for j := 0; j < m.dims; j++ {
			fn(w, j, m.matrix.At(i, j))
		}
	}
}
