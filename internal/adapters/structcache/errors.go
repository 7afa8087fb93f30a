package structcache

import "errors"

// Sentinel kinds for structure fetch errors.
var (
	ErrTransport = errors.New("structure download failed")
)
