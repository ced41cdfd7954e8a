package pmi

import "sort"

// Counter aggregates window-level co-occurrence counts for PMI
// calculation. Windows stream through AddWindow one at a time; only
// the running count maps are held, never the window set itself.
type Counter struct {
	N   int64              // total number of windows
	Nx  map[string]int64   // window frequency per word
	Nxy map[WordPair]int64 // co-occurrence count per word pair
}

// WordPair represents an ordered pair of words (A < B)
type WordPair struct {
	A, B string
}

// NewCounter creates a new co-occurrence counter
func NewCounter() *Counter {
	return &Counter{
		Nx:  make(map[string]int64),
		Nxy: make(map[WordPair]int64),
	}
}

// AddWindow updates counts for one window's words. Duplicate words
// within a window count once; a window is a membership set for
// co-occurrence purposes.
func (c *Counter) AddWindow(words []string) {
	c.N++

	unique := uniqueSorted(words)

	for _, w := range unique {
		c.Nx[w]++
	}

	for i := 0; i < len(unique); i++ {
		for j := i + 1; j < len(unique); j++ {
			c.Nxy[WordPair{A: unique[i], B: unique[j]}]++
		}
	}
}

// PairCount returns the co-occurrence count for a word pair
func (c *Counter) PairCount(a, b string) int64 {
	if a > b {
		a, b = b, a
	}
	return c.Nxy[WordPair{A: a, B: b}]
}

// WordCount returns the window frequency for a word
func (c *Counter) WordCount(w string) int64 {
	return c.Nx[w]
}

// TotalWindows returns the total number of windows processed
func (c *Counter) TotalWindows() int64 {
	return c.N
}

// UniqueWords returns the number of distinct words seen
func (c *Counter) UniqueWords() int {
	return len(c.Nx)
}

// UniquePairs returns the number of distinct co-occurring pairs
func (c *Counter) UniquePairs() int {
	return len(c.Nxy)
}

func uniqueSorted(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	unique := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		unique = append(unique, w)
	}
	sort.Strings(unique)
	return unique
}
