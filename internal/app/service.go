// Package service provides the core fetch-normalize-cache flow that the
// command line entrypoint drives.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/larmor/internal/adapters/archive"
	"github.com/okian/larmor/internal/adapters/entrycache"
	"github.com/okian/larmor/internal/adapters/structcache"
	"github.com/okian/larmor/internal/domain/model"
	"github.com/okian/larmor/internal/domain/relax"
	"github.com/okian/larmor/internal/domain/structure"
	"github.com/okian/larmor/pkg/logger"
	"github.com/okian/larmor/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultCacheDir     = "./bmrb_data"
	defaultAPIURL       = "https://api.bmrb.io/v2"
	defaultStructureURL = "https://files.rcsb.org/download"
	defaultHTTPTimeout  = 30 * time.Second
)

// Service implements the fetch pipeline: cache-first entry acquisition,
// normalization into typed record sets, and structure cross-reference
// resolution with cached downloads.
//
// All operations are synchronous and blocking; the only shared state is
// the on-disk caches, whose unsynchronized writes are idempotent.
type Service struct {
	mu sync.Mutex

	// Core components
	entries    entrycache.Store
	client     *archive.Client
	structures *structcache.Fetcher
	normalizer *relax.Normalizer

	// Configuration
	cacheDir     string
	apiURL       string
	structureURL string
	httpTimeout  time.Duration

	// State
	started bool
	runID   string

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCacheDir sets the on-disk cache directory.
func WithCacheDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.cacheDir = dir
		}
	}
}

// WithAPIURL sets the archive API base URL.
func WithAPIURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.apiURL = url
		}
	}
}

// WithStructureURL sets the structure download base URL.
func WithStructureURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.structureURL = url
		}
	}
}

// WithHTTPTimeout sets the transport timeout for remote calls.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.httpTimeout = timeout
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cacheDir:     defaultCacheDir,
		apiURL:       defaultAPIURL,
		structureURL: defaultStructureURL,
		httpTimeout:  defaultHTTPTimeout,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components and the cache directory.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.runID = uuid.NewString()

	store, err := entrycache.NewFileStore(entrycache.WithDir(s.cacheDir))
	if err != nil {
		return fmt.Errorf("init entry cache: %w", err)
	}
	s.entries = store

	s.client = archive.New(
		archive.WithBaseURL(s.apiURL),
		archive.WithTimeout(s.httpTimeout),
	)

	s.structures, err = structcache.New(
		structcache.WithBaseURL(s.structureURL),
		structcache.WithDir(s.cacheDir),
		structcache.WithTimeout(s.httpTimeout),
	)
	if err != nil {
		return fmt.Errorf("init structure cache: %w", err)
	}

	s.normalizer = relax.New()

	s.started = true
	s.logger.Info(ctx, "fetcher service started",
		logger.String("run_id", s.runID),
		logger.String("cache_dir", s.cacheDir),
		logger.String("api_url", s.apiURL),
	)
	return nil
}

// Stop shuts the service down. There are no background components; this
// only flips the started flag and logs.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "fetcher service stopped", logger.String("run_id", s.runID))
}

// FetchEntry returns the raw document for an archive identifier,
// consulting the cache before the remote API. A successful remote fetch
// is persisted before returning. A transport failure surfaces as an
// error with no document and nothing cached; there are no retries.
func (s *Service) FetchEntry(ctx context.Context, id int) (model.RawEntry, error) {
	raw, err := s.entries.Get(ctx, id)
	if err == nil {
		s.logger.Debug(ctx, "loaded cached entry", logger.Int("entry_id", id))
		metrics.RecordEntryCacheHit()
		return raw, nil
	}
	if !errors.Is(err, entrycache.ErrMiss) {
		// A corrupt cache file is not a miss; refetching would mask it.
		return nil, fmt.Errorf("entry cache read: %w", err)
	}
	metrics.RecordEntryCacheMiss()

	s.logger.Info(ctx, "fetching entry", logger.Int("entry_id", id), logger.String("run_id", s.runID))
	start := time.Now()
	raw, err = s.client.FetchEntry(ctx, id)
	metrics.RecordFetchLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordEntryFetchFailure()
		s.logger.Warn(ctx, "entry fetch failed", logger.Int("entry_id", id), logger.Error(err))
		return nil, err
	}
	metrics.RecordEntryFetched()

	if err := s.entries.Put(ctx, id, raw); err != nil {
		// The document is still usable this run; only durability is lost.
		s.logger.Warn(ctx, "entry cache write failed", logger.Int("entry_id", id), logger.Error(err))
	}
	return raw, nil
}

// Normalize converts a raw entry into a typed RecordSet and logs the
// per-kind measurement counts. The counts are advisory diagnostics only.
func (s *Service) Normalize(ctx context.Context, raw model.RawEntry, id int) (*model.RecordSet, error) {
	set, err := s.normalizer.Normalize(ctx, raw, id)
	if err != nil {
		metrics.RecordNormalizationFailure()
		s.logger.Warn(ctx, "normalization aborted", logger.Int("entry_id", id), logger.Error(err))
		return nil, err
	}
	if set == nil {
		return nil, nil
	}

	metrics.RecordEntryNormalized()
	for _, kind := range model.Kinds {
		count := len(set.ByKind(kind))
		metrics.RecordMeasurements(string(kind), count)
		s.logger.Info(ctx, "extracted measurements",
			logger.Int("entry_id", id),
			logger.String("kind", string(kind)),
			logger.Int("count", count),
		)
	}
	return set, nil
}

// FetchStructure resolves an entry's PDB cross-reference and ensures the
// structure file is cached locally, returning its path. Absence of a
// cross-reference or a failed download yields ("", false); structure
// acquisition never fails the entry.
func (s *Service) FetchStructure(ctx context.Context, raw model.RawEntry, id int) (string, bool) {
	pdbID, ok := structure.ResolvePDB(raw)
	if !ok {
		s.logger.Debug(ctx, "no structure cross-reference", logger.Int("entry_id", id))
		return "", false
	}

	path, cached, err := s.structures.Fetch(ctx, pdbID)
	if err != nil {
		metrics.RecordStructureFailure()
		s.logger.Warn(ctx, "structure download failed",
			logger.Int("entry_id", id),
			logger.String("pdb_id", pdbID),
			logger.Error(err),
		)
		return "", false
	}
	if cached {
		metrics.RecordStructureCacheHit()
	} else {
		metrics.RecordStructureDownload()
	}
	s.logger.Info(ctx, "structure available",
		logger.Int("entry_id", id),
		logger.String("pdb_id", pdbID),
		logger.String("path", path),
	)
	return path, true
}

// ProcessEntry runs the full pipeline for one identifier: acquire,
// normalize, and resolve the cross-referenced structure.
func (s *Service) ProcessEntry(ctx context.Context, id int) (*model.RecordSet, error) {
	raw, err := s.FetchEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	set, err := s.Normalize(ctx, raw, id)
	if err != nil {
		return nil, err
	}

	s.FetchStructure(ctx, raw, id)
	return set, nil
}

// Run processes a batch of identifiers sequentially. A failed entry is
// logged and skipped; the batch never aborts. Returns the record sets of
// the entries that succeeded, in input order.
func (s *Service) Run(ctx context.Context, ids []int) []*model.RecordSet {
	sets := make([]*model.RecordSet, 0, len(ids))
	for _, id := range ids {
		if ctx.Err() != nil {
			s.logger.Warn(ctx, "run cancelled", logger.String("run_id", s.runID))
			break
		}
		set, err := s.ProcessEntry(ctx, id)
		if err != nil {
			s.logger.Warn(ctx, "skipping entry",
				logger.Int("entry_id", id),
				logger.String("run_id", s.runID),
				logger.Error(err),
			)
			continue
		}
		if set != nil {
			sets = append(sets, set)
		}
	}
	return sets
}
