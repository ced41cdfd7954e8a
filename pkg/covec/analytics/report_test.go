package analytics

import (
	"testing"

	"github.com/cognicore/covec/pkg/covec/ingest"
)

func TestCollectorAccumulates(t *testing.T) {
	c := NewCollector()

	c.Doc(6)
	c.Doc(6)

	v := ingest.NewVocabulary(2)
	v.Add([]string{"the", "the", "cat"})
	c.Vocabulary(v, 5)

	c.Surviving(2)
	c.Surviving(2)
	c.Windows(4, 0)
	c.Pairs(3)
	c.SVD(42, true)

	r := c.Report()

	if r.Docs != 2 {
		t.Errorf("expected 2 docs, got %d", r.Docs)
	}
	if r.Tokens != 12 {
		t.Errorf("expected 12 tokens, got %d", r.Tokens)
	}
	if r.SurvivingTokens != 4 {
		t.Errorf("expected 4 surviving tokens, got %d", r.SurvivingTokens)
	}
	if r.VocabBefore != 2 || r.VocabAfter != 1 {
		t.Errorf("expected vocabulary 2 -> 1, got %d -> %d", r.VocabBefore, r.VocabAfter)
	}
	if r.Windows != 4 || r.DroppedWindows != 0 {
		t.Errorf("unexpected window stats %d/%d", r.Windows, r.DroppedWindows)
	}
	if r.Pairs != 3 {
		t.Errorf("expected 3 pairs, got %d", r.Pairs)
	}
	if r.SVDIterations != 42 || !r.SVDConverged {
		t.Errorf("unexpected SVD stats %d/%v", r.SVDIterations, r.SVDConverged)
	}
	if len(r.TopWords) != 1 || r.TopWords[0].Word != "the" {
		t.Errorf("unexpected top words %v", r.TopWords)
	}
}
