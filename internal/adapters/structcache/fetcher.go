// Package structcache downloads structure files and caches them on disk.
package structcache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// Default fetcher configuration constants.
const (
	defaultBaseURL = "https://files.rcsb.org/download"
	defaultDir     = "./bmrb_data"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Fetcher retrieves structure files, consulting a file cache first.
//
// The cache check is file presence at a deterministic path. Like the
// entry cache this is read-check-then-write without locking; concurrent
// downloads of the same structure race benignly on an idempotent write.
type Fetcher struct {
	baseURL    string
	dir        string
	httpClient *http.Client
}

// New creates a structure fetcher with configuration options.
func New(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		baseURL:    defaultBaseURL,
		dir:        defaultDir,
		httpClient: http.DefaultClient,
	}

	// Apply all options
	for _, opt := range opts {
		opt(f)
	}

	if err := os.MkdirAll(f.dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create structure dir %s: %w", f.dir, err)
	}
	return f, nil
}

// Path returns the deterministic cache path for a structure identifier.
func (f *Fetcher) Path(structureID string) string {
	return filepath.Join(f.dir, structureID+".pdb")
}

// Fetch returns the local path of a structure file, downloading it on a
// cache miss. The downloaded text is persisted verbatim. Returns
// (path, true, nil) with cached=true when the file was already present.
func (f *Fetcher) Fetch(ctx context.Context, structureID string) (string, bool, error) {
	path := f.Path(structureID)
	if _, err := os.Stat(path); err == nil {
		return path, true, nil
	}

	url := fmt.Sprintf("%s/%s.pdb", f.baseURL, structureID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, fmt.Errorf("build request for structure %s: %w", structureID, err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("%w: structure %s: %v", ErrTransport, structureID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("%w: structure %s: status %d", ErrTransport, structureID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("%w: structure %s: %v", ErrTransport, structureID, err)
	}
	if err := os.WriteFile(path, body, filePerm); err != nil {
		return "", false, fmt.Errorf("write structure %s: %w", structureID, err)
	}
	return path, false, nil
}
