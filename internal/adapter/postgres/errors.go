package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
)

// MapError wraps any store failure into a domain.PersistenceError naming op.
// The cause stays reachable through errors.Is/As, including
// context.Canceled and context.DeadlineExceeded. pgx.ErrNoRows also
// matches domain.ErrNotFound; callers that treat absence as an empty
// result check for it before calling MapError.
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewPersistenceError(op, fmt.Errorf("%w: %w", domain.ErrNotFound, err))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return domain.NewPersistenceError(op, fmt.Errorf("sqlstate %s: %w", pgErr.Code, err))
	}

	return domain.NewPersistenceError(op, err)
}
