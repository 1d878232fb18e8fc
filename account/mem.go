package account

import (
	"context"
	"sync"
)

// MemStore is an in-memory ChipStore used when no database is configured,
// and by tests. Unknown players start at the configured opening balance on
// first touch.
type MemStore struct {
	mu       sync.Mutex
	balances map[int]int
	opening  int
}

// NewMemStore creates a memory-backed ledger. Every player's account opens
// with the given balance.
func NewMemStore(openingBalance int) *MemStore {
	return &MemStore{balances: make(map[int]int), opening: openingBalance}
}

func (s *MemStore) balanceLocked(playerID int) int {
	if b, ok := s.balances[playerID]; ok {
		return b
	}
	s.balances[playerID] = s.opening
	return s.opening
}

func (s *MemStore) Balance(_ context.Context, playerID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balanceLocked(playerID), nil
}

func (s *MemStore) Debit(_ context.Context, playerID, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.balanceLocked(playerID)
	if b < amount {
		return ErrInsufficientChips
	}
	s.balances[playerID] = b - amount
	return nil
}

func (s *MemStore) Credit(_ context.Context, playerID, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[playerID] = s.balanceLocked(playerID) + amount
	return nil
}
