package store

import (
	"context"
	"sync"

	"github.com/shelfcheck/backend/internal/domain"
)

// MemoryStore is a thread-safe in-memory verification record store.
// Append-only, matching the persistence contract: records are never updated
// or deleted once written.
type MemoryStore struct {
	mutex   sync.RWMutex
	records []domain.VerificationRecord
	byID    map[string]int
}

// NewMemoryStore creates a new in-memory record store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]int),
	}
}

// Append adds a record to the store. A record with a duplicate ID shadows
// the earlier one for Get but both remain in List order.
func (s *MemoryStore) Append(ctx context.Context, record domain.VerificationRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.byID[record.ID] = len(s.records)
	s.records = append(s.records, record)
	return nil
}

// List returns all records in append order.
func (s *MemoryStore) List(ctx context.Context) ([]domain.VerificationRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]domain.VerificationRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Get returns the record with the given ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (domain.VerificationRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return domain.VerificationRecord{}, domain.ErrRecordNotFound
	}
	return s.records[idx], nil
}

// Size returns the current number of records (for debugging/monitoring)
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.records)
}
