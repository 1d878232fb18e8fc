package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_OpensWithStartingBalance(t *testing.T) {
	s := NewMemStore(5000)
	b, err := s.Balance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5000, b)
}

func TestMemStore_DebitAndCredit(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(1000)

	require.NoError(t, s.Debit(ctx, 1, 600))
	b, _ := s.Balance(ctx, 1)
	assert.Equal(t, 400, b)

	require.NoError(t, s.Credit(ctx, 1, 50))
	b, _ = s.Balance(ctx, 1)
	assert.Equal(t, 450, b)
}

func TestMemStore_DebitBeyondBalance(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(100)

	err := s.Debit(ctx, 1, 101)
	assert.ErrorIs(t, err, ErrInsufficientChips)

	b, _ := s.Balance(ctx, 1)
	assert.Equal(t, 100, b, "a failed debit changes nothing")
}
