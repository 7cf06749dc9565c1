package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
)

// FindUniquePage returns up to page.Size distinct entities of assetType in
// most-recent-change-first order. The change log holds one record per
// mutation, so a single window of page.Size records may name fewer than
// page.Size entities; further windows are read until the page is full or
// the log is exhausted.
//
// Rounds are separate reads. A change recorded between rounds can shift
// the windows, so an entity may be skipped. Run inside a snapshot
// transaction to rule that out.
func (s *Service) FindUniquePage(ctx context.Context, assetType domain.AssetType, page domain.PageSpec, author *uuid.UUID) ([]string, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if !assetType.IsValid() {
		return nil, domain.NewValidationError("asset_type", "unknown asset type")
	}
	return s.uniquePage(ctx, assetType, page, author)
}

func (s *Service) uniquePage(ctx context.Context, assetType domain.AssetType, page domain.PageSpec, author *uuid.UUID) ([]string, error) {
	seen := make(map[string]struct{}, page.Size)
	unique := make([]string, 0, page.Size)

	rounds := 0
	for {
		offset := page.Offset + rounds*page.Size
		batch, err := s.changes.FindChangedEntities(ctx, assetType, author, offset, page.Size)
		rounds++
		if err != nil {
			return nil, fmt.Errorf("find changed %s (round %d): %w", assetType, rounds, err)
		}

		for _, entity := range batch {
			if _, dup := seen[entity]; dup {
				continue
			}
			seen[entity] = struct{}{}
			unique = append(unique, entity)
		}

		if len(unique) >= page.Size || len(batch) == 0 {
			break
		}
	}

	s.metrics.ObserveDedupRounds(assetType, rounds)
	s.log.DebugContext(ctx, "unique page",
		slog.String("asset_type", assetType.String()),
		slog.Int("rounds", rounds),
		slog.Int("found", len(unique)),
	)

	if len(unique) > page.Size {
		unique = unique[:page.Size]
	}
	return unique, nil
}
