package activity

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kbss-cvut/termit-sub001/internal/config"
	"github.com/kbss-cvut/termit-sub001/internal/dataloader"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/internal/eventbus"
)

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func at(minutes int) time.Time { return t0.Add(time.Duration(minutes) * time.Minute) }

type fixture struct {
	changes  *changeLogMock
	feeds    *commentFeedsMock
	users    *userRepoMock
	comments *commentRepoMock
	tx       *txManagerMock
	events   *publisherMock
	modified *lastModifiedCacheMock
	rounds   *roundObserverMock
	cfg      config.ActivityConfig
}

// newFixture returns mocks that succeed with empty results.
func newFixture() *fixture {
	return &fixture{
		changes: &changeLogMock{
			CreateFunc: func(context.Context, domain.ChangeRecord) error { return nil },
			FindChangedEntitiesFunc: func(context.Context, domain.AssetType, *uuid.UUID, int, int) ([]string, error) {
				return nil, nil
			},
			LatestChangeFunc: func(context.Context, string, domain.AssetType, *uuid.UUID) (*domain.RecentlyModifiedAsset, error) {
				return nil, nil
			},
		},
		feeds: &commentFeedsMock{},
		users: &userRepoMock{
			GetByIDsFunc: func(context.Context, []uuid.UUID) ([]domain.User, error) { return nil, nil },
		},
		comments: &commentRepoMock{
			GetByIDsFunc: func(context.Context, []string) ([]domain.Comment, error) { return nil, nil },
		},
		tx: &txManagerMock{
			RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			},
			RunInSnapshotFunc: func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			},
		},
		events: &publisherMock{
			PublishFunc: func(context.Context, eventbus.Event) bool { return true },
		},
		modified: &lastModifiedCacheMock{},
		rounds: &roundObserverMock{
			ObserveDedupRoundsFunc: func(domain.AssetType, int) {},
		},
		cfg: config.ActivityConfig{DefaultLimit: 10, MaxLimit: 100, HydrationWorkers: 4},
	}
}

func (f *fixture) service() *Service {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), f.cfg, Deps{
		Changes:  f.changes,
		Comments: f.feeds,
		Lookups:  &dataloader.Repos{User: f.users, Comment: f.comments},
		Tx:       f.tx,
		Events:   f.events,
		Modified: f.modified,
		Metrics:  f.rounds,
	})
	svc.now = func() time.Time { return t0 }
	return svc
}

// change is one row of an in-memory change log.
type change struct {
	entity string
	at     time.Time
	author uuid.UUID
}

// memLog serves FindChangedEntities and LatestChange from per-type change
// logs ordered newest first.
type memLog map[domain.AssetType][]change

func (m memLog) window(_ context.Context, t domain.AssetType, author *uuid.UUID, offset, limit int) ([]string, error) {
	var rows []string
	for _, c := range m[t] {
		if author != nil && c.author != *author {
			continue
		}
		rows = append(rows, c.entity)
	}
	if offset >= len(rows) {
		return nil, nil
	}
	return rows[offset:min(offset+limit, len(rows))], nil
}

func (m memLog) latest(_ context.Context, entity string, t domain.AssetType, author *uuid.UUID) (*domain.RecentlyModifiedAsset, error) {
	for _, c := range m[t] {
		if c.entity != entity || (author != nil && c.author != *author) {
			continue
		}
		return &domain.RecentlyModifiedAsset{
			URI:        c.entity,
			Label:      "label of " + c.entity,
			Modified:   c.at,
			EditorID:   c.author,
			Type:       t,
			ChangeKind: domain.ChangeKindUpdate,
		}, nil
	}
	return nil, nil
}

func (f *fixture) useLog(m memLog) {
	f.changes.FindChangedEntitiesFunc = m.window
	f.changes.LatestChangeFunc = m.latest
}

func uris(assets []domain.RecentlyModifiedAsset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.URI
	}
	return out
}
