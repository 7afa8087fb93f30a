// Package entrycache provides the durable identifier to raw-document cache.
package entrycache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okian/larmor/internal/domain/model"
)

// Default cache configuration constants.
const (
	defaultDir = "./bmrb_data"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Store provides read/write access to cached archive entries.
type Store interface {
	// Get returns the cached document for an identifier.
	// Returns ErrMiss if the identifier is not cached.
	Get(ctx context.Context, id int) (model.RawEntry, error)

	// Put durably stores a document under its identifier.
	Put(ctx context.Context, id int, raw model.RawEntry) error
}

// FileStore implements Store with one JSON file per identifier.
//
// Writes are read-check-then-write with no locking. Concurrent callers
// for the same identifier may race on the write, but writes are
// idempotent (same identifier, same content), so the race is benign.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed entry store, creating its directory
// on demand.
func NewFileStore(opts ...Option) (*FileStore, error) {
	s := &FileStore{
		dir: defaultDir,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create cache dir %s: %w", s.dir, err)
	}
	return s, nil
}

// Path returns the deterministic cache file path for an identifier.
func (s *FileStore) Path(id int) string {
	return filepath.Join(s.dir, fmt.Sprintf("bmrb_%d.json", id))
}

// Get loads a cached entry document.
func (s *FileStore) Get(_ context.Context, id int) (model.RawEntry, error) {
	b, err := os.ReadFile(s.Path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: entry %d", ErrMiss, id)
		}
		return nil, fmt.Errorf("read cached entry %d: %w", id, err)
	}

	var raw model.RawEntry
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode cached entry %d: %w", id, err)
	}
	return raw, nil
}

// Put stores an entry document under its identifier.
func (s *FileStore) Put(_ context.Context, id int, raw model.RawEntry) error {
	b, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encode entry %d: %w", id, err)
	}
	if err := os.WriteFile(s.Path(id), b, filePerm); err != nil {
		return fmt.Errorf("write cached entry %d: %w", id, err)
	}
	return nil
}
