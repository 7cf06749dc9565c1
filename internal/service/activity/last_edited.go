package activity

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kbss-cvut/termit-sub001/internal/dataloader"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/pkg/ctxutil"
)

// FindLastEdited returns up to count recently changed assets of every
// type, newest first.
func (s *Service) FindLastEdited(ctx context.Context, count int) ([]domain.RecentlyModifiedAsset, error) {
	if err := s.validateCount(count); err != nil {
		return nil, err
	}
	return s.lastEdited(ctx, count, nil)
}

// FindLastEditedBy is FindLastEdited restricted to changes made by user.
func (s *Service) FindLastEditedBy(ctx context.Context, user uuid.UUID, count int) ([]domain.RecentlyModifiedAsset, error) {
	if user == uuid.Nil {
		return nil, domain.NewValidationError("user", "required")
	}
	if err := s.validateCount(count); err != nil {
		return nil, err
	}
	return s.lastEdited(ctx, count, &user)
}

// FindMyLastEdited is FindLastEditedBy for the authenticated user.
func (s *Service) FindMyLastEdited(ctx context.Context, count int) ([]domain.RecentlyModifiedAsset, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.FindLastEditedBy(ctx, userID, count)
}

// lastEdited asks every asset type for count items and keeps the newest
// count of the union. No single type can contribute more than count items
// to the result, so the sources need not coordinate.
func (s *Service) lastEdited(ctx context.Context, count int, author *uuid.UUID) ([]domain.RecentlyModifiedAsset, error) {
	perType := make([][]domain.RecentlyModifiedAsset, len(domain.AssetTypes))

	g, gctx := errgroup.WithContext(ctx)
	for i, assetType := range domain.AssetTypes {
		g.Go(func() error {
			assets, err := s.recentlyModified(gctx, assetType, count, author)
			if err != nil {
				return err
			}
			perType[i] = assets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("find last edited: %w", err)
	}

	merged := mergeByRecency(count, perType...)
	if err := s.resolveEditors(ctx, merged); err != nil {
		return nil, fmt.Errorf("find last edited: %w", err)
	}
	return merged, nil
}

// recentlyModified is one typed source: a unique page of changed entities
// hydrated into assets. With snapshot reads enabled the whole source runs
// in one read-only snapshot.
func (s *Service) recentlyModified(ctx context.Context, assetType domain.AssetType, count int, author *uuid.UUID) ([]domain.RecentlyModifiedAsset, error) {
	if !s.cfg.SnapshotReads {
		return s.readSource(ctx, assetType, count, author, s.cfg.HydrationWorkers)
	}

	var assets []domain.RecentlyModifiedAsset
	err := s.tx.RunInSnapshot(ctx, func(ctx context.Context) error {
		var err error
		// A transaction serves one query at a time.
		assets, err = s.readSource(ctx, assetType, count, author, 1)
		return err
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (s *Service) readSource(ctx context.Context, assetType domain.AssetType, count int, author *uuid.UUID, workers int) ([]domain.RecentlyModifiedAsset, error) {
	entities, err := s.uniquePage(ctx, assetType, domain.FirstPage(count), author)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, assetType, entities, author, workers)
}

// hydrate resolves each entity into its latest change. Entities with no
// qualifying change are dropped. Order follows entities.
func (s *Service) hydrate(ctx context.Context, assetType domain.AssetType, entities []string, author *uuid.UUID, workers int) ([]domain.RecentlyModifiedAsset, error) {
	resolved := make([]*domain.RecentlyModifiedAsset, len(entities))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, entity := range entities {
		g.Go(func() error {
			asset, err := s.changes.LatestChange(gctx, entity, assetType, author)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", entity, err)
			}
			resolved[i] = asset
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	assets := make([]domain.RecentlyModifiedAsset, 0, len(resolved))
	for _, a := range resolved {
		if a == nil {
			continue
		}
		assets = append(assets, *a)
	}
	return assets, nil
}

// mergeByRecency concatenates sources, orders by Modified descending and
// keeps the first count. Equal timestamps order by URI.
func mergeByRecency(count int, sources ...[]domain.RecentlyModifiedAsset) []domain.RecentlyModifiedAsset {
	var merged []domain.RecentlyModifiedAsset
	for _, src := range sources {
		merged = append(merged, src...)
	}

	slices.SortStableFunc(merged, func(a, b domain.RecentlyModifiedAsset) int {
		if c := b.Modified.Compare(a.Modified); c != 0 {
			return c
		}
		return cmp.Compare(a.URI, b.URI)
	})

	if len(merged) > count {
		merged = merged[:count]
	}
	if merged == nil {
		merged = []domain.RecentlyModifiedAsset{}
	}
	return merged
}

// resolveEditors fills Editor from EditorID in one batched lookup.
func (s *Service) resolveEditors(ctx context.Context, assets []domain.RecentlyModifiedAsset) error {
	if len(assets) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(assets))
	for i := range assets {
		ids[i] = assets[i].EditorID
	}

	users, errs := dataloader.For(ctx, s.lookups).UserByID.LoadMany(ctx, ids)()
	if err := firstError(errs); err != nil {
		return fmt.Errorf("resolve editors: %w", err)
	}

	for i := range assets {
		assets[i].Editor = users[i]
	}
	return nil
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
