// Package user implements editor and author lookups using PostgreSQL.
package user

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/kbss-cvut/termit-sub001/internal/adapter/postgres"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
)

// Repo reads user identities.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getByIDsSQL = `
SELECT id, username, first_name, last_name, created_at
FROM users
WHERE id = ANY($1)`

// GetByIDs returns the users with the given ids in no particular order.
// Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, postgres.MapError(err, "user.get_by_ids")
	}
	defer rows.Close()

	users := make([]domain.User, 0, len(ids))
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "user.get_by_ids")
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user.get_by_ids")
	}

	return users, nil
}
