// Package activity builds the recently edited and recently commented
// asset feeds and records changes to assets.
package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kbss-cvut/termit-sub001/internal/config"
	"github.com/kbss-cvut/termit-sub001/internal/dataloader"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/internal/eventbus"
)

type changeLog interface {
	Create(ctx context.Context, rec domain.ChangeRecord) error
	FindChangedEntities(ctx context.Context, assetType domain.AssetType, author *uuid.UUID, offset, limit int) ([]string, error)
	LatestChange(ctx context.Context, entity string, assetType domain.AssetType, author *uuid.UUID) (*domain.RecentlyModifiedAsset, error)
}

type commentFeeds interface {
	FindLastCommented(ctx context.Context, limit int) ([]domain.RecentlyCommentedAsset, error)
	FindMyLastCommented(ctx context.Context, user uuid.UUID, limit int) ([]domain.RecentlyCommentedAsset, error)
	FindLastCommentedInReaction(ctx context.Context, user uuid.UUID, limit int) ([]domain.RecentlyCommentedAsset, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, evt eventbus.Event) bool
}

type lastModifiedCache interface {
	Get(ctx context.Context, assetType domain.AssetType) (time.Time, error)
}

type roundObserver interface {
	ObserveDedupRounds(assetType domain.AssetType, rounds int)
}

// Service provides the activity feeds.
type Service struct {
	changes  changeLog
	comments commentFeeds
	lookups  *dataloader.Repos
	tx       txManager
	events   publisher
	modified lastModifiedCache
	metrics  roundObserver
	cfg      config.ActivityConfig
	now      func() time.Time
	log      *slog.Logger
}

// Deps groups the collaborators of Service.
type Deps struct {
	Changes  changeLog
	Comments commentFeeds
	Lookups  *dataloader.Repos
	Tx       txManager
	Events   publisher
	Modified lastModifiedCache
	Metrics  roundObserver
}

// NewService creates a new activity service.
func NewService(log *slog.Logger, cfg config.ActivityConfig, deps Deps) *Service {
	return &Service{
		changes:  deps.Changes,
		comments: deps.Comments,
		lookups:  deps.Lookups,
		tx:       deps.Tx,
		events:   deps.Events,
		modified: deps.Modified,
		metrics:  deps.Metrics,
		cfg:      cfg,
		now:      time.Now,
		log:      log.With("service", "activity"),
	}
}

// validateCount rejects non-positive counts and counts above the configured
// maximum.
func (s *Service) validateCount(count int) error {
	switch {
	case count <= 0:
		return domain.NewValidationError("count", "must be > 0")
	case s.cfg.MaxLimit > 0 && count > s.cfg.MaxLimit:
		return domain.NewValidationError("count", "exceeds maximum")
	}
	return nil
}
