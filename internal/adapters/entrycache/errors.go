package entrycache

import "errors"

// Sentinel kinds for cache errors.
var (
	// ErrMiss reports an identifier with no cached document. It is a
	// signal to fetch remotely, not a failure.
	ErrMiss = errors.New("entry not cached")
)
