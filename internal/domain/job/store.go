package job

import (
	"sync"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
)

// Store holds the per-region catalog snapshots of one session.
// Each region is written at most once; the stored slice is shared with every
// reader and must be treated as read-only.
type Store struct {
	mu       sync.RWMutex
	catalogs map[domain.Region][]domain.Job
}

// NewStore creates an empty catalog store
func NewStore() *Store {
	return &Store{catalogs: make(map[domain.Region][]domain.Job)}
}

// Get returns the snapshot for region, if one has been stored
func (s *Store) Get(region domain.Region) ([]domain.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs, ok := s.catalogs[region]
	return jobs, ok
}

// Put stores jobs for region unless a snapshot already exists.
// It returns the snapshot that is stored after the call.
func (s *Store) Put(region domain.Region, jobs []domain.Job) []domain.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.catalogs[region]; ok {
		return existing
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	s.catalogs[region] = jobs
	return jobs
}

// Regions lists the regions that have a stored snapshot
func (s *Store) Regions() []domain.Region {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Region, 0, len(s.catalogs))
	for _, r := range domain.Regions() {
		if _, ok := s.catalogs[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Reset drops every snapshot, starting a fresh session
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalogs = make(map[domain.Region][]domain.Job)
}
