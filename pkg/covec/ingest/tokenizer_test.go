package ingest

import (
	"reflect"
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("The cat sat on the mat.")
	want := []string{"the", "cat", "sat", "on", "the", "mat"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenizePreservesOrder(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("zebra apple zebra")
	want := []string{"zebra", "apple", "zebra"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("order must be preserved: expected %v, got %v", want, got)
	}
}

func TestTokenizeCaseFolding(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("GoLang GOLANG golang")
	for _, w := range got {
		if w != "golang" {
			t.Errorf("expected case-folded token, got %q", w)
		}
	}
	if len(got) != 3 {
		t.Errorf("expected 3 tokens, got %d", len(got))
	}
}

func TestTokenizeHyphens(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("state-of-the-art --weird-- plain")
	want := []string{"state-of-the-art", "weird", "plain"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenizeDropsPureNumbers(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("in 2024 the gpt-4 model")
	want := []string{"in", "the", "gpt-4", "model"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenizeStopwords(t *testing.T) {
	tok := NewTokenizer([]string{"the", "a"})

	got := tok.Tokenize("the cat and a dog")
	want := []string{"cat", "and", "dog"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenizeLastToken(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("no trailing punctuation here")

	if len(got) == 0 || got[len(got)-1] != "here" {
		t.Errorf("final token must not be lost, got %v", got)
	}
}

func TestAddStopword(t *testing.T) {
	tok := NewTokenizer(nil)
	tok.AddStopword("Noise")

	got := tok.Tokenize("signal noise signal")
	want := []string{"signal", "signal"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
