package store

import (
	"context"
	"time"
)

// Store is the main interface for the corpus source and trained-vector
// persistence.
type Store interface {
	Close() error

	// Corpus
	AddDoc(ctx context.Context, title, text string) (int64, error)
	GetDoc(ctx context.Context, id int64) (Doc, error)
	CountDocs(ctx context.Context) (int64, error)
	EachDoc(ctx context.Context, fn func(Doc) error) error

	// Models
	SaveModel(ctx context.Context, meta ModelMeta, rows []VectorRow) error
	GetModel(ctx context.Context, id string) (ModelMeta, bool, error)
	LatestModel(ctx context.Context) (ModelMeta, bool, error)
	LoadVectors(ctx context.Context, modelID string) ([]VectorRow, error)
}

// Doc is a stored corpus document. IDs follow insertion order.
type Doc struct {
	ID    int64
	Title string
	Text  string
}

// ModelMeta describes one trained vector set
type ModelMeta struct {
	ID             string
	Dimensions     int
	WindowSize     int
	MinWordCount   int
	VocabularySize int
	Converged      bool
	TrainedAt      time.Time
}

// VectorRow is one (word, dimension, value) triplet of a trained model
type VectorRow struct {
	Word  string
	Dim   int
	Value float64
}
