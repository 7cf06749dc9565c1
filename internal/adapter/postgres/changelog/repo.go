// Package changelog implements change-log reads and writes using PostgreSQL.
// Change records are append-only; many records may reference one entity.
package changelog

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/kbss-cvut/termit-sub001/internal/adapter/postgres"
	"github.com/kbss-cvut/termit-sub001/internal/config"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
)

// Repo reads and appends change records.
type Repo struct {
	db  postgres.Querier
	cfg config.RepositoryConfig
}

// New creates a new changelog repository.
func New(db postgres.Querier, cfg config.RepositoryConfig) *Repo {
	return &Repo{db: db, cfg: cfg}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertChangeSQL = `
INSERT INTO change_records (id, changed_entity, change_kind, author_id, created_at)
VALUES ($1, $2, $3, $4, $5)`

// Create appends a change record.
func (r *Repo) Create(ctx context.Context, rec domain.ChangeRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, insertChangeSQL,
		rec.ID, rec.ChangedEntity, string(rec.Kind), rec.Author, rec.Timestamp,
	); err != nil {
		return postgres.MapError(err, "changelog.create")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindChangedEntities returns the changed entity of every change record of
// the given asset type in one offset/limit window of the log, newest first.
// The same entity may appear more than once. Snapshots and entities without
// a label in the configured language are left out, as LatestChange would
// drop them. A non-nil author restricts the log to that author's changes.
func (r *Repo) FindChangedEntities(ctx context.Context, assetType domain.AssetType, author *uuid.UUID, offset, limit int) ([]string, error) {
	b := postgres.Builder().
		Select("cr.changed_entity").
		From("change_records cr").
		Where(postgres.AssetTypeFilter(r.cfg, "cr.changed_entity", assetType)).
		Where(postgres.NotSnapshot(r.cfg, "cr.changed_entity")).
		Where(postgres.HasLabel(r.cfg, "cr.changed_entity")).
		OrderBy("cr.created_at DESC", "cr.id").
		Offset(uint64(offset)).
		Limit(uint64(limit))
	if author != nil {
		b = b.Where(postgres.UserIs("cr.author_id", *author))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "changelog.find_changed")
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "changelog.find_changed")
	}
	defer rows.Close()

	var entities []string
	for rows.Next() {
		var e string
		if err := rows.Scan(&e); err != nil {
			return nil, postgres.MapError(err, "changelog.find_changed")
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "changelog.find_changed")
	}

	return entities, nil
}

type latestChangeRow struct {
	Entity     string    `db:"changed_entity"`
	Label      string    `db:"label"`
	Modified   time.Time `db:"created_at"`
	AuthorID   uuid.UUID `db:"author_id"`
	ChangeKind string    `db:"change_kind"`
	Vocabulary *string   `db:"vocabulary"`
}

// LatestChange returns the newest change of entity as a recently modified
// asset of the given type, labelled in the configured language. It returns
// nil, nil when no change qualifies: the entity is not of that type, has no
// label in the language, is a snapshot, or has no change by author.
func (r *Repo) LatestChange(ctx context.Context, entity string, assetType domain.AssetType, author *uuid.UUID) (*domain.RecentlyModifiedAsset, error) {
	vocabSub := sq.Select("v.object").
		From("triples v").
		Where("v.subject = cr.changed_entity").
		Where(sq.Eq{"v.predicate": r.cfg.InVocabulary}).
		OrderBy("v.object").
		Limit(1)

	b := postgres.Builder().
		Select(
			"cr.changed_entity",
			"lbl.object AS label",
			"cr.created_at",
			"cr.author_id",
			"cr.change_kind",
		).
		Column(sq.Alias(vocabSub, "vocabulary")).
		From("change_records cr").
		Join("triples lbl ON lbl.subject = cr.changed_entity").
		Where(sq.Eq{"cr.changed_entity": entity}).
		Where(sq.Eq{"lbl.predicate": r.cfg.LabelPredicates}).
		Where(sq.Eq{"lbl.lang": r.cfg.Language}).
		Where(postgres.AssetTypeFilter(r.cfg, "cr.changed_entity", assetType)).
		Where(postgres.NotSnapshot(r.cfg, "cr.changed_entity")).
		OrderBy("cr.created_at DESC", "cr.id").
		Limit(1)
	if author != nil {
		b = b.Where(postgres.UserIs("cr.author_id", *author))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "changelog.latest_change")
	}

	var row latestChangeRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...)
	if pgxscan.NotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "changelog.latest_change")
	}

	return &domain.RecentlyModifiedAsset{
		URI:          row.Entity,
		Label:        row.Label,
		Modified:     row.Modified,
		EditorID:     row.AuthorID,
		VocabularyID: row.Vocabulary,
		Type:         assetType,
		ChangeKind:   domain.ChangeKind(row.ChangeKind),
	}, nil
}

// LastModified returns the timestamp of the newest change to any asset of
// the given type, or the zero time when there is none.
func (r *Repo) LastModified(ctx context.Context, assetType domain.AssetType) (time.Time, error) {
	query, args, err := postgres.Builder().
		Select("max(cr.created_at)").
		From("change_records cr").
		Where(postgres.AssetTypeFilter(r.cfg, "cr.changed_entity", assetType)).
		ToSql()
	if err != nil {
		return time.Time{}, postgres.MapError(err, "changelog.last_modified")
	}

	var last *time.Time
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&last); err != nil {
		return time.Time{}, postgres.MapError(err, "changelog.last_modified")
	}
	if last == nil {
		return time.Time{}, nil
	}
	return *last, nil
}
