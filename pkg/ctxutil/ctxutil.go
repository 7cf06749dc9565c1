// Package ctxutil carries request-scoped identifiers through a context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// key is a typed context key; values stored under it always have type T.
type key[T any] struct{ name string }

func (k key[T]) with(ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, k, v)
}

func (k key[T]) from(ctx context.Context) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

var (
	userIDKey    = key[uuid.UUID]{name: "user_id"}
	requestIDKey = key[string]{name: "request_id"}
)

// WithUserID stores the authenticated user's ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return userIDKey.with(ctx, id)
}

// UserIDFromCtx returns the authenticated user's ID. The nil UUID counts as
// no user.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := userIDKey.from(ctx)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return requestIDKey.with(ctx, id)
}

// RequestIDFromCtx returns the request ID, or "" when absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := requestIDKey.from(ctx)
	return id
}
