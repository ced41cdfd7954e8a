package ingest

import "sort"

// Vocabulary holds corpus-wide word occurrence counts and the frequency
// floor used to decide which words survive into windowing.
type Vocabulary struct {
	counts   map[string]int64
	minCount int64
}

// NewVocabulary creates an empty vocabulary with the given frequency floor
func NewVocabulary(minCount int) *Vocabulary {
	if minCount < 1 {
		minCount = 1
	}
	return &Vocabulary{
		counts:   make(map[string]int64),
		minCount: int64(minCount),
	}
}

// Add counts one document's tokens. Call once per document before any
// Keep or Filter call; the floor is corpus-wide, so counting must be
// complete before filtering starts.
func (v *Vocabulary) Add(tokens []string) {
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		v.counts[tok]++
	}
}

// Keep reports whether a word meets the frequency floor
func (v *Vocabulary) Keep(word string) bool {
	return v.counts[word] >= v.minCount
}

// Filter removes tokens below the frequency floor, preserving order.
// Filtering happens before windowing: rare words are invisible to the
// window builder, so the surviving words become adjacent.
func (v *Vocabulary) Filter(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if v.Keep(tok) {
			kept = append(kept, tok)
		}
	}
	return kept
}

// Count returns a word's corpus-wide occurrence count
func (v *Vocabulary) Count(word string) int64 {
	return v.counts[word]
}

// TotalWords returns the number of distinct words seen, including
// words below the floor.
func (v *Vocabulary) TotalWords() int {
	return len(v.counts)
}

// Size returns the number of distinct words meeting the floor
func (v *Vocabulary) Size() int {
	n := 0
	for _, c := range v.counts {
		if c >= v.minCount {
			n++
		}
	}
	return n
}

// WordCount pairs a word with its occurrence count
type WordCount struct {
	Word  string
	Count int64
}

// Top returns the k most frequent surviving words, ties broken
// alphabetically for determinism.
func (v *Vocabulary) Top(k int) []WordCount {
	all := make([]WordCount, 0, len(v.counts))
	for w, c := range v.counts {
		if c >= v.minCount {
			all = append(all, WordCount{Word: w, Count: c})
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Word < all[j].Word
	})

	if k > 0 && len(all) > k {
		all = all[:k]
	}
	return all
}
