// Package covec trains dense word vectors from a document corpus:
// normalize → tokenize → frequency floor → skip-gram windows → PMI →
// truncated SVD, then answers nearest-neighbor and analogy queries
// over the result.
package covec

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/cognicore/covec/pkg/covec/analytics"
	"github.com/cognicore/covec/pkg/covec/config"
	"github.com/cognicore/covec/pkg/covec/corpus"
	"github.com/cognicore/covec/pkg/covec/factorize"
	"github.com/cognicore/covec/pkg/covec/ingest"
	"github.com/cognicore/covec/pkg/covec/internalerr"
	"github.com/cognicore/covec/pkg/covec/pmi"
	"github.com/cognicore/covec/pkg/covec/store"
	"github.com/cognicore/covec/pkg/covec/vectors"
	"github.com/cognicore/covec/pkg/covec/window"
)

// Covec is the main training and query facade
type Covec struct {
	store     store.Store
	tokenizer *ingest.Tokenizer
	cfg       config.Config
	entropy   *ulid.MonotonicEntropy
}

// Options configures a Covec instance
type Options struct {
	Store     store.Store
	Tokenizer *ingest.Tokenizer
	Config    config.Config
}

// New creates a Covec instance with the given dependencies
func New(opts Options) *Covec {
	tok := opts.Tokenizer
	if tok == nil {
		tok = ingest.NewTokenizer(nil)
	}
	return &Covec{
		store:     opts.Store,
		tokenizer: tok,
		cfg:       opts.Config,
		entropy:   ulid.Monotonic(rand.Reader, 0),
	}
}

// Result bundles a trained model with its run statistics
type Result struct {
	Model  *vectors.Model
	Report analytics.Report
}

// Train runs the full pipeline over the corpus store. It fails fast
// with ErrEmptyVocabulary when the corpus is empty or the frequency
// floor removes every word.
func (c *Covec) Train(ctx context.Context) (*Result, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	collector := analytics.NewCollector()

	// Pass 1: normalize, tokenize, count corpus-wide frequencies. The
	// floor is global, so counting must finish before filtering.
	vocab := ingest.NewVocabulary(c.cfg.MinWordCount)
	type tokenizedDoc struct {
		id     int64
		tokens []string
	}
	var docs []tokenizedDoc

	err := c.store.EachDoc(ctx, func(d store.Doc) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		tokens := c.tokenizer.Tokenize(corpus.Normalize(d.Text))
		collector.Doc(len(tokens))
		vocab.Add(tokens)
		docs = append(docs, tokenizedDoc{id: d.ID, tokens: tokens})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	collector.Vocabulary(vocab, 20)
	if len(docs) == 0 || vocab.Size() == 0 {
		return nil, fmt.Errorf("train: %w", internalerr.ErrEmptyVocabulary)
	}

	// Pass 2: filter to surviving words and build the flat token
	// stream in document order.
	var stream []window.Token
	for _, d := range docs {
		kept := vocab.Filter(d.tokens)
		collector.Surviving(len(kept))
		for _, w := range kept {
			stream = append(stream, window.Token{DocID: d.id, Word: w})
		}
	}
	docs = nil

	// Windows, then window-level co-occurrence counts. Windows are
	// consumed as they stream into the counter and discarded.
	builder := window.NewBuilder(c.cfg.WindowSize)
	windows := builder.Build(stream)
	stream = nil
	collector.Windows(len(windows), builder.Dropped())

	counts := pmi.NewCounter()
	for _, w := range windows {
		counts.AddWindow(w.Words())
	}
	windows = nil
	collector.Pairs(counts.UniquePairs())

	// PMI and factorization.
	calc := pmi.NewCalculator(c.cfg.Epsilon)
	matrix := factorize.FromCounts(counts, calc)

	fact, err := factorize.Truncated(matrix, factorize.Options{
		Dimensions:    c.cfg.NumDimensions,
		MaxIterations: c.cfg.MaxIterations,
	})
	if err != nil {
		return nil, err
	}
	collector.SVD(fact.Iterations, fact.Converged)

	id := ulid.MustNew(ulid.Now(), c.entropy).String()
	model, err := vectors.New(id, fact.Words, fact.Vectors, fact.Converged)
	if err != nil {
		return nil, err
	}

	return &Result{Model: model, Report: collector.Report()}, nil
}

// SaveModel persists a trained model's metadata and vector triplets
func (c *Covec) SaveModel(ctx context.Context, m *vectors.Model) error {
	rows := make([]store.VectorRow, 0, len(m.Words())*m.Dimensions())
	m.Each(func(word string, dim int, value float64) {
		rows = append(rows, store.VectorRow{Word: word, Dim: dim, Value: value})
	})

	meta := store.ModelMeta{
		ID:             m.ID(),
		Dimensions:     m.Dimensions(),
		WindowSize:     c.cfg.WindowSize,
		MinWordCount:   c.cfg.MinWordCount,
		VocabularySize: len(m.Words()),
		Converged:      m.Converged(),
		TrainedAt:      time.Now(),
	}
	return c.store.SaveModel(ctx, meta, rows)
}

// LoadModel rebuilds a model from persisted vector triplets. An empty
// id loads the latest model.
func (c *Covec) LoadModel(ctx context.Context, id string) (*vectors.Model, error) {
	var meta store.ModelMeta
	var found bool
	var err error

	if id == "" {
		meta, found, err = c.store.LatestModel(ctx)
	} else {
		meta, found, err = c.store.GetModel(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("model %q: %w", id, internalerr.ErrNotFound)
	}

	rows, err := c.store.LoadVectors(ctx, meta.ID)
	if err != nil {
		return nil, err
	}

	// Rows arrive ordered by word then dimension.
	var words []string
	for _, r := range rows {
		if len(words) == 0 || words[len(words)-1] != r.Word {
			words = append(words, r.Word)
		}
	}

	matrix := mat.NewDense(len(words), meta.Dimensions, nil)
	rowIdx := make(map[string]int, len(words))
	for i, w := range words {
		rowIdx[w] = i
	}
	for _, r := range rows {
		if r.Dim < 0 || r.Dim >= meta.Dimensions {
			return nil, fmt.Errorf("model %s: dimension %d out of range", meta.ID, r.Dim)
		}
		matrix.Set(rowIdx[r.Word], r.Dim, r.Value)
	}

	return vectors.New(meta.ID, words, matrix, meta.Converged)
}
