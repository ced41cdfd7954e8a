package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrUnknownWord      = errors.New("unknown word")
	ErrEmptyVocabulary  = errors.New("empty vocabulary")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrStoreUnavailable = errors.New("store unavailable")
)
