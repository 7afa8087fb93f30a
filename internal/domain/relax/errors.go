package relax

import "errors"

// Sentinel kinds for normalization errors.
var (
	// ErrMalformedEntry marks an entry holding a present but undecodable
	// value or shape; the whole entry is discarded when it occurs.
	ErrMalformedEntry = errors.New("malformed archive entry")
)
