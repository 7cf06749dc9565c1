// Package dataloader batches editor and comment lookups. Loaders cache
// within one request, so an identity that appears in several feed items
// is fetched once.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type commentRepo interface {
	GetByIDs(ctx context.Context, ids []string) ([]domain.Comment, error)
}

// Repos holds the repositories the loaders read from.
type Repos struct {
	User    userRepo
	Comment commentRepo
}

// ---------------------------------------------------------------------------
// Loaders
// ---------------------------------------------------------------------------

// Loaders holds one request's loader instances.
type Loaders struct {
	UserByID    *dataloader.Loader[uuid.UUID, *domain.User]
	CommentByID *dataloader.Loader[string, *domain.Comment]
}

// NewLoaders creates a fresh set of loaders over repos.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID:    newLoader(newUserBatchFn(repos.User)),
		CommentByID: newLoader(newCommentBatchFn(repos.Comment)),
	}
}

func newLoader[K comparable, V any](batchFn dataloader.BatchFunc[K, V]) *dataloader.Loader[K, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[K, V](wait),
		dataloader.WithBatchCapacity[K, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// For returns the request's loaders when the middleware installed them,
// otherwise a fresh set over repos.
func For(ctx context.Context, repos *Repos) *Loaders {
	if l, ok := ctx.Value(loadersKey).(*Loaders); ok && l != nil {
		return l
	}
	return NewLoaders(repos)
}
