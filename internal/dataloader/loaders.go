package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
)

// ---------------------------------------------------------------------------
// Users by ID
// ---------------------------------------------------------------------------

func newUserBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		return mapResults(keys, byID, nilValue[*domain.User])
	}
}

// ---------------------------------------------------------------------------
// Comments by ID
// ---------------------------------------------------------------------------

func newCommentBatchFn(repo commentRepo) dataloader.BatchFunc[string, *domain.Comment] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.Comment] {
		comments, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Comment](len(keys), err)
		}

		byID := make(map[string]*domain.Comment, len(comments))
		for i := range comments {
			byID[comments[i].URI] = &comments[i]
		}

		return mapResults(keys, byID, nilValue[*domain.Comment])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps found values back to key order, using defaultFn for
// missing keys.
func mapResults[K comparable, V any](keys []K, found map[K]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := found[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[V any]() V {
	var zero V
	return zero
}
