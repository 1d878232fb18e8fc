package account

import (
	"context"
	"embed"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema embed.FS

// PGStore is the Postgres-backed ChipStore. Debits and credits are single
// statements so the balance invariant holds without explicit transactions.
type PGStore struct{ pool *pgxpool.Pool }

// OpenPG connects a pool to the given DSN.
func OpenPG(ctx context.Context, dsn string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &PGStore{pool: pool}, nil
}

// Migrate applies the embedded schema. Idempotent.
func (s *PGStore) Migrate(ctx context.Context) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, string(sqlBytes))
	return err
}

// Close releases the pool.
func (s *PGStore) Close() { s.pool.Close() }

func (s *PGStore) Balance(ctx context.Context, playerID int) (int, error) {
	var balance int
	err := s.pool.QueryRow(ctx,
		`SELECT balance FROM chip_accounts WHERE player_id = $1`,
		playerID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNoAccount
	}
	return balance, err
}

func (s *PGStore) Debit(ctx context.Context, playerID, amount int) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE chip_accounts
		   SET balance = balance - $2, updated_at = now()
		 WHERE player_id = $1 AND balance >= $2
	`, playerID, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientChips
	}
	return nil
}

func (s *PGStore) Credit(ctx context.Context, playerID, amount int) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO chip_accounts (player_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (player_id) DO UPDATE
		   SET balance = chip_accounts.balance + EXCLUDED.balance,
		       updated_at = now()
	`, playerID, amount)
	return err
}
