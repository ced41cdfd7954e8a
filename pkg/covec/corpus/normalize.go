package corpus

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Normalize strips HTML markup and entity-encoded characters from raw
// document text and collapses runs of whitespace to single spaces.
// Plain text passes through unchanged apart from whitespace cleanup.
func Normalize(s string) string {
	return collapseWhitespace(stripHTML(s))
}

func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to the raw string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			// Block-level breaks would otherwise glue words together
			if c.Type == html.ElementNode {
				buf.WriteString(" ")
			}
			extractText(c)
		}
	}
	extractText(doc)

	return buf.String()
}

func collapseWhitespace(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		space = false
		buf.WriteRune(r)
	}

	return buf.String()
}
