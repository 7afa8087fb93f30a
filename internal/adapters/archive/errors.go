package archive

import "errors"

// Sentinel kinds for archive client errors.
var (
	ErrTransport = errors.New("archive fetch failed")
	ErrDecode    = errors.New("archive response decode failed")
)
