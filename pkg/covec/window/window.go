// Package window builds skip-gram windows over per-document token
// sequences. A window is the unit within which word co-occurrence is
// counted downstream.
package window

// Token is one word occurrence tied to its source document
type Token struct {
	DocID int64
	Word  string
}

// Window is a short run of consecutive tokens drawn from exactly one
// document.
type Window struct {
	ID     int64
	Tokens []Token
}

// DocID returns the document the window belongs to.
// Only valid after the membership check has passed.
func (w Window) DocID() int64 {
	if len(w.Tokens) == 0 {
		return 0
	}
	return w.Tokens[0].DocID
}

// Words returns the window's words in position order
func (w Window) Words() []string {
	words := make([]string, len(w.Tokens))
	for i, t := range w.Tokens {
		words[i] = t.Word
	}
	return words
}

// Builder produces windows with globally increasing ids
type Builder struct {
	size    int
	nextID  int64
	dropped int64
}

// NewBuilder creates a window builder with the given window size
func NewBuilder(size int) *Builder {
	if size < 1 {
		size = 1
	}
	return &Builder{size: size, nextID: 1}
}

// Build consumes a token stream ordered by document and position and
// returns one window per token position:
//
//   - A document with N >= size tokens yields N windows; window i holds
//     positions [i, i+size) clipped to the document end.
//   - A document with N < size tokens yields a single window holding
//     all N tokens.
//
// Window ids increase across documents. Every returned window passes
// the single-document membership check; a window whose members touch
// more than one document is dropped and counted, never returned.
func (b *Builder) Build(tokens []Token) []Window {
	var windows []Window

	start := 0
	for start < len(tokens) {
		end := start
		for end < len(tokens) && tokens[end].DocID == tokens[start].DocID {
			end++
		}
		windows = append(windows, b.document(tokens[start:end])...)
		start = end
	}

	return b.Validate(windows)
}

// document emits windows for one document's ordered token run.
func (b *Builder) document(run []Token) []Window {
	n := len(run)
	if n == 0 {
		return nil
	}

	// Too short for sliding windows: one window with everything.
	if n < b.size {
		members := make([]Token, n)
		copy(members, run)
		w := Window{ID: b.nextID, Tokens: members}
		b.nextID++
		return []Window{w}
	}

	windows := make([]Window, 0, n)
	for i := 0; i < n; i++ {
		end := i + b.size
		if end > n {
			end = n
		}
		members := make([]Token, end-i)
		copy(members, run[i:end])
		windows = append(windows, Window{ID: b.nextID, Tokens: members})
		b.nextID++
	}

	return windows
}

// Validate drops any window whose members touch more than one document
// or that is empty. The per-document scan in Build cannot produce such
// a window, so for Build output this is an invariant check rather than
// a correction; Dropped exposes whether it ever fired.
func (b *Builder) Validate(windows []Window) []Window {
	kept := windows[:0]
	for _, w := range windows {
		if distinctDocs(w) == 1 {
			kept = append(kept, w)
		} else {
			b.dropped++
		}
	}
	return kept
}

func distinctDocs(w Window) int {
	docs := make(map[int64]struct{}, 1)
	for _, t := range w.Tokens {
		docs[t.DocID] = struct{}{}
	}
	return len(docs)
}

// Dropped returns how many windows failed the membership check
func (b *Builder) Dropped() int64 {
	return b.dropped
}
