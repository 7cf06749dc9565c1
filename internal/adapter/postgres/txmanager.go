package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxManager manages database transactions using the context pattern.
// Nested calls are NOT supported: calling RunInTx inside a RunInTx callback
// opens a second independent transaction.
type TxManager struct {
	db DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a read-write transaction at the server's
// default isolation level (Read Committed).
// On success: commits.
// Begin, commit and rollback failures are persistence errors.
// On error from fn: rolls back and returns the error. If the rollback fails
// too, the result matches both errors.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.TxOptions{}, fn)
}

// RunInSnapshot executes fn within a REPEATABLE READ READ ONLY transaction,
// so every query fn issues sees the same snapshot of the database.
// A pgx.Tx serves one query at a time; fn must not query concurrently.
func (m *TxManager) RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, fn)
}

func (m *TxManager) run(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return MapError(err, "tx.begin")
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return MapError(fmt.Errorf("rollback failed: %w (original error: %w)", rbErr, err), "tx.rollback")
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return MapError(err, "tx.commit")
	}

	return nil
}
