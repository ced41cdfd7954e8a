package corpus

import (
	"errors"
	"strings"
)

// Document is one corpus entry. The store assigns ids in row order on
// insert, so a zero id means not yet stored.
type Document struct {
	ID    int64
	Title string
	Text  string
}

// Validate checks that the document is storable. Stores call it before
// inserting, when the id is still zero.
func (d *Document) Validate() error {
	if d.ID < 0 {
		return errors.New("document id must not be negative")
	}

	if strings.TrimSpace(d.Text) == "" {
		return errors.New("document text is required")
	}

	return nil
}
