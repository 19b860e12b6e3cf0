package app

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"programas/adapters/excel"
	"programas/adapters/source"
	"programas/domain/catalog"
	"programas/internal/errors"
)

// CatalogService owns the session's dataset: it loads it exactly once,
// keeps it immutable afterwards, and answers filtered views, statistics
// and facet option sets. Views and statistics are pure functions of
// (dataset, filter state); the service only memoizes the last result.
type CatalogService struct {
	fetcher   *source.Fetcher
	sourceRef string

	mu       sync.RWMutex
	dataset  *catalog.Dataset
	facets   catalog.FacetOptions
	loadErr  error
	loadedAt time.Time

	// Collapses concurrent Load callers onto one fetch+decode.
	loadGroup singleflight.Group

	// Last filtered view, keyed by the filter state that produced it.
	viewMu    sync.Mutex
	viewState catalog.FilterState
	view      []catalog.Program
	viewOK    bool
}

// NewCatalogService creates a service for the given source ref.
func NewCatalogService(fetcher *source.Fetcher, sourceRef string) *CatalogService {
	return &CatalogService{
		fetcher:   fetcher,
		sourceRef: sourceRef,
	}
}

// Load fetches and decodes the dataset. It runs the underlying load at
// most once per session: concurrent callers share the single flight, and
// later calls return the already-loaded dataset or the terminal load
// error. There is no retry and no refresh.
func (s *CatalogService) Load(ctx context.Context) error {
	s.mu.RLock()
	if s.dataset != nil || s.loadErr != nil {
		err := s.loadErr
		s.mu.RUnlock()
		return err
	}
	s.mu.RUnlock()

	_, err, _ := s.loadGroup.Do("load", func() (interface{}, error) {
		return nil, s.loadOnce(ctx)
	})
	return err
}

func (s *CatalogService) loadOnce(ctx context.Context) error {
	s.mu.RLock()
	if s.dataset != nil || s.loadErr != nil {
		err := s.loadErr
		s.mu.RUnlock()
		return err
	}
	s.mu.RUnlock()

	log.Printf("[CatalogService] Loading dataset from %s", s.sourceRef)

	data, err := s.fetcher.Fetch(ctx, s.sourceRef)
	if err != nil {
		loadErr := errors.FetchFailed(err)
		s.recordFailure(loadErr)
		return loadErr
	}

	sheet, err := excel.NewDecoder(s.sourceRef).Decode(data)
	if err != nil {
		loadErr := errors.DecodeFailed(err)
		s.recordFailure(loadErr)
		return loadErr
	}

	dataset := &catalog.Dataset{Programs: excel.MapPrograms(sheet)}

	s.mu.Lock()
	s.dataset = dataset
	s.facets = catalog.AllFacetValues(dataset)
	s.loadedAt = time.Now()
	s.mu.Unlock()

	log.Printf("[CatalogService] Dataset loaded (%d programs, %d institutions, %d departments)",
		dataset.Len(), len(s.facets.Institutions), len(s.facets.Departments))
	return nil
}

func (s *CatalogService) recordFailure(err error) {
	s.mu.Lock()
	s.loadErr = err
	s.mu.Unlock()
	log.Printf("[CatalogService] Load failed: %v", err)
}

// Loaded reports whether the dataset populated this session.
func (s *CatalogService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset != nil
}

// LoadError returns the terminal load error, if any.
func (s *CatalogService) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Programs returns the filtered view for a filter state. The last view is
// memoized by state so repeated renders of an unchanged query skip the
// scan; correctness never depends on the memo.
func (s *CatalogService) Programs(state catalog.FilterState) ([]catalog.Program, error) {
	s.mu.RLock()
	dataset := s.dataset
	s.mu.RUnlock()
	if dataset == nil {
		return nil, errors.NotLoaded()
	}

	s.viewMu.Lock()
	defer s.viewMu.Unlock()
	if s.viewOK && s.viewState == state {
		return s.view, nil
	}

	view := catalog.Filter(dataset, state)
	s.viewState = state
	s.view = view
	s.viewOK = true
	return view, nil
}

// Stats returns the summary statistics for a filter state.
func (s *CatalogService) Stats(state catalog.FilterState) (catalog.Statistics, error) {
	view, err := s.Programs(state)
	if err != nil {
		return catalog.Statistics{}, err
	}
	return catalog.Summarize(view), nil
}

// Facets returns the three facet option sets. They are computed from the
// full dataset at load time and never change with filter state.
func (s *CatalogService) Facets() (catalog.FacetOptions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return catalog.FacetOptions{}, errors.NotLoaded()
	}
	return s.facets, nil
}
