// Package sqlite persists the corpus and trained vector sets in a
// single SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/covec/pkg/covec/corpus"
	"github.com/cognicore/covec/pkg/covec/internalerr"
	"github.com/cognicore/covec/pkg/covec/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema. Any failure to reach or prepare the database wraps
// internalerr.ErrStoreUnavailable.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, unavailable(path, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, unavailable(path, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, unavailable(path, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, unavailable(path, err)
	}

	return &sqliteStore{db: db}, nil
}

func unavailable(path string, err error) error {
	return fmt.Errorf("open %s: %w: %v", path, internalerr.ErrStoreUnavailable, err)
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS docs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT,
	text TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS models (
	id TEXT PRIMARY KEY,
	dimensions INTEGER NOT NULL,
	window_size INTEGER NOT NULL,
	min_word_count INTEGER NOT NULL,
	vocabulary_size INTEGER NOT NULL,
	converged INTEGER NOT NULL,
	trained_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS model_vectors (
	model_id TEXT NOT NULL,
	word TEXT NOT NULL,
	dim INTEGER NOT NULL,
	value REAL NOT NULL,
	PRIMARY KEY(model_id, word, dim),
	FOREIGN KEY(model_id) REFERENCES models(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_model_vectors_model ON model_vectors(model_id);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// AddDoc validates and inserts a document; SQLite assigns the
// row-order id.
func (s *sqliteStore) AddDoc(ctx context.Context, title, text string) (int64, error) {
	doc := corpus.Document{Title: title, Text: text}
	if err := doc.Validate(); err != nil {
		return 0, fmt.Errorf("add doc: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO docs (title, text) VALUES (?, ?)", title, text)
	if err != nil {
		return 0, fmt.Errorf("insert doc: %w", err)
	}
	return res.LastInsertId()
}

// GetDoc returns a document by id
func (s *sqliteStore) GetDoc(ctx context.Context, id int64) (store.Doc, error) {
	var d store.Doc
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, text FROM docs WHERE id = ?", id).
		Scan(&d.ID, &d.Title, &d.Text)
	if err == sql.ErrNoRows {
		return store.Doc{}, fmt.Errorf("doc %d: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Doc{}, err
	}
	return d, nil
}

// CountDocs returns the number of stored documents
func (s *sqliteStore) CountDocs(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM docs").Scan(&n)
	return n, err
}

// EachDoc streams documents in id order without loading the corpus
// into memory at once.
func (s *sqliteStore) EachDoc(ctx context.Context, fn func(store.Doc) error) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, text FROM docs ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var d store.Doc
		if err := rows.Scan(&d.ID, &d.Title, &d.Text); err != nil {
			return err
		}
		if err := fn(d); err != nil {
			return err
		}
	}
	return rows.Err()
}

// SaveModel stores model metadata and vector rows in one transaction
func (s *sqliteStore) SaveModel(ctx context.Context, meta store.ModelMeta, rows []store.VectorRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	converged := 0
	if meta.Converged {
		converged = 1
	}

	_, err = tx.ExecContext(ctx, `
INSERT OR REPLACE INTO models
	(id, dimensions, window_size, min_word_count, vocabulary_size, converged, trained_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		meta.ID, meta.Dimensions, meta.WindowSize, meta.MinWordCount,
		meta.VocabularySize, converged, meta.TrainedAt.UTC().Format("2006-01-02T15:04:05Z"))
	if err != nil {
		return fmt.Errorf("insert model: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO model_vectors (model_id, word, dim, value) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, meta.ID, r.Word, r.Dim, r.Value); err != nil {
			return fmt.Errorf("insert vector row: %w", err)
		}
	}

	return tx.Commit()
}

// GetModel returns model metadata by id
func (s *sqliteStore) GetModel(ctx context.Context, id string) (store.ModelMeta, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, dimensions, window_size, min_word_count, vocabulary_size, converged, trained_at
FROM models WHERE id = ?`, id)
	return scanModel(row)
}

// LatestModel returns the most recently created model. ULIDs sort
// lexicographically by creation time, so max(id) is the newest.
func (s *sqliteStore) LatestModel(ctx context.Context) (store.ModelMeta, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, dimensions, window_size, min_word_count, vocabulary_size, converged, trained_at
FROM models ORDER BY id DESC LIMIT 1`)
	return scanModel(row)
}

func scanModel(row *sql.Row) (store.ModelMeta, bool, error) {
	var meta store.ModelMeta
	var converged int
	var trainedAt string

	err := row.Scan(&meta.ID, &meta.Dimensions, &meta.WindowSize,
		&meta.MinWordCount, &meta.VocabularySize, &converged, &trainedAt)
	if err == sql.ErrNoRows {
		return store.ModelMeta{}, false, nil
	}
	if err != nil {
		return store.ModelMeta{}, false, err
	}

	meta.Converged = converged != 0
	if t, perr := parseTime(trainedAt); perr == nil {
		meta.TrainedAt = t
	}
	return meta, true, nil
}

func parseTime(s string) (time.Time, error) {
	return time.Parse("2006-01-02T15:04:05Z", s)
}

// LoadVectors returns all vector rows for a model, ordered by word
// then dimension.
func (s *sqliteStore) LoadVectors(ctx context.Context, modelID string) ([]store.VectorRow, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT word, dim, value FROM model_vectors
WHERE model_id = ? ORDER BY word, dim`, modelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.VectorRow
	for rows.Next() {
		var r store.VectorRow
		if err := rows.Scan(&r.Word, &r.Dim, &r.Value); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("model %s: %w", modelID, internalerr.ErrNotFound)
	}
	return out, nil
}
