package account

import (
	"context"
	"errors"
)

// ErrInsufficientChips is returned by Debit when the balance cannot cover
// the requested amount.
var ErrInsufficientChips = errors.New("account: insufficient chips")

// ErrNoAccount is returned when a player has no chip account.
var ErrNoAccount = errors.New("account: no such account")

// ChipStore is the banked-chip ledger behind the tables. Table chips live
// in the game state; the store holds everything else. Buy-ins debit the
// store before chips appear on the table, cash-outs credit it after chips
// leave the table, so chips are conserved across the boundary.
type ChipStore interface {
	// Balance returns the banked balance for a player.
	Balance(ctx context.Context, playerID int) (int, error)

	// Debit atomically withdraws amount; ErrInsufficientChips if the
	// balance cannot cover it.
	Debit(ctx context.Context, playerID, amount int) error

	// Credit deposits amount, creating the account if needed.
	Credit(ctx context.Context, playerID, amount int) error
}
