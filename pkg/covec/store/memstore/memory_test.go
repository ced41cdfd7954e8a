package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cognicore/covec/pkg/covec/internalerr"
	"github.com/cognicore/covec/pkg/covec/store"
)

func TestDocRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	id1, err := s.AddDoc(ctx, "first", "first text")
	if err != nil {
		t.Fatalf("AddDoc: %v", err)
	}
	id2, _ := s.AddDoc(ctx, "second", "second text")

	if id2 != id1+1 {
		t.Errorf("ids must follow insertion order, got %d then %d", id1, id2)
	}

	doc, err := s.GetDoc(ctx, id1)
	if err != nil {
		t.Fatalf("GetDoc: %v", err)
	}
	if doc.Title != "first" || doc.Text != "first text" {
		t.Errorf("unexpected doc %+v", doc)
	}

	n, _ := s.CountDocs(ctx)
	if n != 2 {
		t.Errorf("expected 2 docs, got %d", n)
	}
}

func TestAddDocRejectsBlankText(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.AddDoc(ctx, "title", "   "); err == nil {
		t.Error("blank text should fail validation before insert")
	}

	n, err := s.CountDocs(ctx)
	if err != nil {
		t.Fatalf("CountDocs: %v", err)
	}
	if n != 0 {
		t.Errorf("rejected document was stored, count = %d", n)
	}
}

func TestGetDocNotFound(t *testing.T) {
	s := New()

	_, err := s.GetDoc(context.Background(), 99)
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEachDocOrder(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.AddDoc(ctx, "a", "one")
	s.AddDoc(ctx, "b", "two")
	s.AddDoc(ctx, "c", "three")

	var got []int64
	err := s.EachDoc(ctx, func(d store.Doc) error {
		got = append(got, d.ID)
		return nil
	})
	if err != nil {
		t.Fatalf("EachDoc: %v", err)
	}

	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("EachDoc must visit in insertion order, got %v", got)
		}
	}
}

func TestModelRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	meta := store.ModelMeta{
		ID:             "01HMODEL",
		Dimensions:     2,
		WindowSize:     8,
		MinWordCount:   20,
		VocabularySize: 2,
		Converged:      true,
		TrainedAt:      time.Now(),
	}
	rows := []store.VectorRow{
		{Word: "b", Dim: 0, Value: 0.5},
		{Word: "b", Dim: 1, Value: -0.5},
		{Word: "a", Dim: 0, Value: 1.5},
		{Word: "a", Dim: 1, Value: 2.5},
	}

	if err := s.SaveModel(ctx, meta, rows); err != nil {
		t.Fatalf("SaveModel: %v", err)
	}

	got, found, err := s.GetModel(ctx, meta.ID)
	if err != nil || !found {
		t.Fatalf("GetModel: found=%v err=%v", found, err)
	}
	if got.Dimensions != 2 || !got.Converged {
		t.Errorf("unexpected meta %+v", got)
	}

	latest, found, _ := s.LatestModel(ctx)
	if !found || latest.ID != meta.ID {
		t.Errorf("expected latest model %s, got %+v", meta.ID, latest)
	}

	loaded, err := s.LoadVectors(ctx, meta.ID)
	if err != nil {
		t.Fatalf("LoadVectors: %v", err)
	}
	if len(loaded) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(loaded))
	}
	// Ordered by word then dimension
	if loaded[0].Word != "a" || loaded[0].Dim != 0 || loaded[0].Value != 1.5 {
		t.Errorf("unexpected first row %+v", loaded[0])
	}
	if loaded[3].Word != "b" || loaded[3].Dim != 1 {
		t.Errorf("unexpected last row %+v", loaded[3])
	}
}

func TestLoadVectorsUnknownModel(t *testing.T) {
	s := New()

	_, err := s.LoadVectors(context.Background(), "missing")
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLatestModelEmpty(t *testing.T) {
	s := New()

	_, found, err := s.LatestModel(context.Background())
	if err != nil {
		t.Fatalf("LatestModel: %v", err)
	}
	if found {
		t.Error("empty store must report no latest model")
	}
}
