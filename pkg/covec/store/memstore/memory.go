// Package memstore is an in-memory store.Store implementation used by
// tests and short-lived pipelines.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/covec/pkg/covec/corpus"
	"github.com/cognicore/covec/pkg/covec/internalerr"
	"github.com/cognicore/covec/pkg/covec/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu      sync.RWMutex
	nextID  int64
	docs    map[int64]store.Doc
	order   []int64
	models  map[string]store.ModelMeta
	vectors map[string][]store.VectorRow
	latest  string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		nextID:  1,
		docs:    make(map[int64]store.Doc),
		models:  make(map[string]store.ModelMeta),
		vectors: make(map[string][]store.VectorRow),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// AddDoc validates and appends a document, assigning the next id in
// row order.
func (s *Store) AddDoc(ctx context.Context, title, text string) (int64, error) {
	doc := corpus.Document{Title: title, Text: text}
	if err := doc.Validate(); err != nil {
		return 0, fmt.Errorf("add doc: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.docs[id] = store.Doc{ID: id, Title: title, Text: text}
	s.order = append(s.order, id)
	return id, nil
}

// GetDoc returns a document by id.
func (s *Store) GetDoc(ctx context.Context, id int64) (store.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return store.Doc{}, fmt.Errorf("doc %d: %w", id, internalerr.ErrNotFound)
	}
	return doc, nil
}

// CountDocs returns the number of stored documents.
func (s *Store) CountDocs(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.docs)), nil
}

// EachDoc visits every document in insertion order.
func (s *Store) EachDoc(ctx context.Context, fn func(store.Doc) error) error {
	s.mu.RLock()
	ids := make([]int64, len(s.order))
	copy(ids, s.order)
	s.mu.RUnlock()

	for _, id := range ids {
		s.mu.RLock()
		doc, ok := s.docs[id]
		s.mu.RUnlock()
		if !ok {
			continue
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
	return nil
}

// SaveModel stores model metadata and its vector rows.
func (s *Store) SaveModel(ctx context.Context, meta store.ModelMeta, rows []store.VectorRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]store.VectorRow, len(rows))
	copy(copied, rows)

	s.models[meta.ID] = meta
	s.vectors[meta.ID] = copied
	s.latest = meta.ID
	return nil
}

// GetModel returns model metadata by id.
func (s *Store) GetModel(ctx context.Context, id string) (store.ModelMeta, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meta, ok := s.models[id]
	return meta, ok, nil
}

// LatestModel returns the most recently saved model.
func (s *Store) LatestModel(ctx context.Context) (store.ModelMeta, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == "" {
		return store.ModelMeta{}, false, nil
	}
	meta, ok := s.models[s.latest]
	return meta, ok, nil
}

// LoadVectors returns all vector rows for a model, ordered by word
// then dimension.
func (s *Store) LoadVectors(ctx context.Context, modelID string) ([]store.VectorRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, ok := s.vectors[modelID]
	if !ok {
		return nil, fmt.Errorf("model %s: %w", modelID, internalerr.ErrNotFound)
	}

	out := make([]store.VectorRow, len(rows))
	copy(out, rows)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Word != out[j].Word {
			return out[i].Word < out[j].Word
		}
		return out[i].Dim < out[j].Dim
	})
	return out, nil
}
