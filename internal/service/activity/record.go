package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/internal/eventbus"
	"github.com/kbss-cvut/termit-sub001/pkg/ctxutil"
)

// RecordChangeInput describes one mutation of an asset.
type RecordChangeInput struct {
	Entity    string
	Kind      domain.ChangeKind
	AssetType domain.AssetType // optional; empty invalidates every cached last-modified value
}

// Validate checks all fields and collects all errors.
func (i RecordChangeInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Entity) == "" {
		errs = append(errs, domain.FieldError{Field: "entity", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be CREATE or UPDATE"})
	}
	if i.AssetType != "" && !i.AssetType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "asset_type", Message: "unknown asset type"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordChange appends a change by the authenticated user to the change
// log and announces it on the event bus.
func (s *Service) RecordChange(ctx context.Context, input RecordChangeInput) (*domain.ChangeRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec := domain.ChangeRecord{
		ID:            uuid.New(),
		ChangedEntity: strings.TrimSpace(input.Entity),
		Kind:          input.Kind,
		Author:        userID,
		Timestamp:     s.now().UTC(),
	}

	// Subscribers reload from the log, so the event goes out after commit.
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.changes.Create(ctx, rec)
	})
	if err != nil {
		return nil, fmt.Errorf("record change: %w", err)
	}

	published := s.events.Publish(ctx, eventbus.Event{
		Type:      eventbus.ChangeRecorded,
		AssetType: input.AssetType,
		Entity:    rec.ChangedEntity,
		At:        rec.Timestamp,
	})

	s.log.InfoContext(ctx, "change recorded",
		slog.String("entity", rec.ChangedEntity),
		slog.String("kind", rec.Kind.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("published", published),
	)
	return &rec, nil
}

// LastModified returns the newest change time of any asset of assetType.
// The zero time means no asset of that type has changed.
func (s *Service) LastModified(ctx context.Context, assetType domain.AssetType) (time.Time, error) {
	if !assetType.IsValid() {
		return time.Time{}, domain.NewValidationError("asset_type", "unknown asset type")
	}
	return s.modified.Get(ctx, assetType)
}
