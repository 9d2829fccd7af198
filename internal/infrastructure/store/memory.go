package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/taglens/backend/internal/domain"
)

// MemoryStore is a thread-safe in-memory bill store. It keeps bills in
// insertion order and ids stable, standing in for a real document store
// behind the BillRepository interface.
type MemoryStore struct {
	bills []domain.Bill
	seq   int
	mutex sync.RWMutex
}

// NewMemoryStore creates a new in-memory bill store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save persists a bill and returns its assigned id
func (s *MemoryStore) Save(ctx context.Context, bill *domain.Bill) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.seq++
	id := fmt.Sprintf("bill-%06x", s.seq)

	stored := *bill
	stored.ID = id
	stored.Items = make([]domain.BillItem, len(bill.Items))
	copy(stored.Items, bill.Items)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	s.bills = append(s.bills, stored)
	bill.ID = id
	return id, nil
}

// List returns the most recently created bills, newest first, capped at limit
func (s *MemoryStore) List(ctx context.Context, limit int) ([]domain.Bill, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if limit <= 0 || limit > len(s.bills) {
		limit = len(s.bills)
	}

	result := make([]domain.Bill, 0, limit)
	for i := len(s.bills) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, s.bills[i])
	}
	return result, nil
}

// Count returns the number of stored bills
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.bills), nil
}
