package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"complyd/internal/domain"
)

// InMemoryStore keeps screening records in process memory. Suitable for
// tests and development; production uses the Postgres store.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]*domain.ScreeningRecord
	now     func() time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records: make(map[string]*domain.ScreeningRecord),
		now:     time.Now,
	}
}

func (s *InMemoryStore) Create(_ context.Context, record *domain.ScreeningRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.Version = 1
	now := s.now()
	record.CreatedAt = now
	record.UpdatedAt = now
	s.records[record.ScreeningID] = record.Clone()
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, screeningID string) (*domain.ScreeningRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[screeningID]
	if !ok {
		return nil, ErrNotFound
	}
	return record.Clone(), nil
}

func (s *InMemoryStore) Update(_ context.Context, record *domain.ScreeningRecord, expectedVersion int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[record.ScreeningID]
	if !ok {
		return ErrNotFound
	}
	if current.Version != expectedVersion {
		return ErrStaleVersion
	}

	record.Version = expectedVersion + 1
	record.CreatedAt = current.CreatedAt
	record.UpdatedAt = s.now()
	s.records[record.ScreeningID] = record.Clone()
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*domain.ScreeningRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.ScreeningRecord, 0, len(s.records))
	for _, record := range s.records {
		out = append(out, record.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
