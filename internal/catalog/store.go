// Package catalog implements the in-memory manuscript query engine: table
// and chunk loading, id normalization and chunk routing, search and filter
// evaluation, facet indexing, and sorted/paginated view projection.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ammusto/khazain-browser/internal/fetch"
)

const (
	// metadataKey is the resource key of the main manuscript table.
	metadataKey = "manuscript_metadata.csv"
	// chunkKeyFmt addresses one location chunk by 1-based index.
	chunkKeyFmt = "chunks/locations_%d.csv"

	// chunkSize must match the partitioning that produced the chunk
	// files. It is an external contract, not a tunable.
	chunkSize = 1000
)

// Store owns the in-memory manuscript table and the lazily loaded location
// chunks for the life of the process. Cached state is immutable once
// populated; every query operation is read-only. Construct one Store in
// main and inject it wherever queries run.
type Store struct {
	fetcher fetch.Fetcher
	logger  *slog.Logger

	group singleflight.Group

	mu          sync.RWMutex
	manuscripts []Manuscript
	loaded      bool
	chunks      map[int][]locationRecord
}

// NewStore creates a Store reading table text through fetcher. A nil
// logger falls back to slog.Default().
func NewStore(fetcher fetch.Fetcher, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		fetcher: fetcher,
		logger:  logger,
		chunks:  make(map[int][]locationRecord),
	}
}

// Manuscripts returns the full metadata table, fetching and parsing it on
// first call and serving the cached slice afterwards. A failed load caches
// nothing, so a later call retries. Callers must not mutate the returned
// slice.
func (s *Store) Manuscripts(ctx context.Context) ([]Manuscript, error) {
	s.mu.RLock()
	if s.loaded {
		ms := s.manuscripts
		s.mu.RUnlock()
		return ms, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.group.Do(metadataKey, func() (interface{}, error) {
		s.mu.RLock()
		if s.loaded {
			ms := s.manuscripts
			s.mu.RUnlock()
			return ms, nil
		}
		s.mu.RUnlock()

		text, err := s.fetcher.FetchText(ctx, metadataKey)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", metadataKey, err)
		}
		ms, err := parseManuscripts(text)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", metadataKey, err)
		}

		s.mu.Lock()
		s.manuscripts = ms
		s.loaded = true
		s.mu.Unlock()

		s.logger.Info("manuscript table loaded", "records", len(ms))
		return ms, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Manuscript), nil
}

// ensureChunk returns the records of chunk n, loading it on first use.
// Every load outcome is cached, including the empty set for a missing or
// unreadable chunk, so gaps in chunk numbering are fetched at most once.
func (s *Store) ensureChunk(ctx context.Context, n int) []locationRecord {
	s.mu.RLock()
	if recs, ok := s.chunks[n]; ok {
		s.mu.RUnlock()
		return recs
	}
	s.mu.RUnlock()

	key := fmt.Sprintf(chunkKeyFmt, n)
	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		s.mu.RLock()
		if recs, ok := s.chunks[n]; ok {
			s.mu.RUnlock()
			return recs, nil
		}
		s.mu.RUnlock()

		recs := s.loadChunk(ctx, n, key)

		s.mu.Lock()
		s.chunks[n] = recs
		s.mu.Unlock()
		return recs, nil
	})
	return v.([]locationRecord)
}

// loadChunk fetches and parses one chunk. Absence and parse failures both
// resolve to the empty record set; a missing chunk is expected sparse
// data, not an error.
func (s *Store) loadChunk(ctx context.Context, n int, key string) []locationRecord {
	text, err := s.fetcher.FetchText(ctx, key)
	if err != nil {
		if errors.Is(err, fetch.ErrNotFound) {
			s.logger.Debug("location chunk missing", "chunk", n)
		} else {
			s.logger.Warn("location chunk unreadable", "chunk", n, "error", err)
		}
		return []locationRecord{}
	}

	recs, err := parseLocationChunk(text, s.logger)
	if err != nil {
		s.logger.Warn("location chunk unparseable", "chunk", n, "error", err)
		return []locationRecord{}
	}
	s.logger.Debug("location chunk loaded", "chunk", n, "records", len(recs))
	return recs
}
