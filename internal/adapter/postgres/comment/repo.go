// Package comment implements the comment feeds using PostgreSQL.
//
// Every feed picks one comment per topic entity: the one with the greatest
// effective time (modified, else created). Ties go to the smallest comment id.
package comment

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

const effectiveTime = "COALESCE(c.modified, c.created)"

// Repo reads comments.
type Repo struct {
	db  postgres.Querier
	cfg config.RepositoryConfig
}

// New creates a new comment repository.
func New(db postgres.Querier, cfg config.RepositoryConfig) *Repo {
	return &Repo{db: db, cfg: cfg}
}

type feedRow struct {
	Entity        string  `db:"topic_entity"`
	LastComment   string  `db:"last_comment"`
	MyLastComment *string `db:"my_last_comment"`
	AssetType     *string `db:"asset_type"`
}

type commentRow struct {
	ID       string     `db:"id"`
	Topic    string     `db:"topic_entity"`
	AuthorID uuid.UUID  `db:"author_id"`
	Content  string     `db:"content"`
	Created  time.Time  `db:"created"`
	Modified *time.Time `db:"modified"`
}

// ---------------------------------------------------------------------------
// Feeds
// ---------------------------------------------------------------------------

// FindLastCommented returns, for the limit most recently commented
// entities, the entity and its latest comment id.
func (r *Repo) FindLastCommented(ctx context.Context, limit int) ([]domain.RecentlyCommentedAsset, error) {
	return r.latestFeed(ctx, "comment.find_last_commented", commentsSource(), limit)
}

// FindMyLastCommented is FindLastCommented restricted to entities user has
// edited at least once.
func (r *Repo) FindMyLastCommented(ctx context.Context, user uuid.UUID, limit int) ([]domain.RecentlyCommentedAsset, error) {
	editedByUser := sq.Select("cr.changed_entity").
		From("change_records cr").
		Where(postgres.UserIs("cr.author_id", user))

	src := commentsSource().Where(sq.Expr("c.topic_entity IN (?)", editedByUser))
	return r.latestFeed(ctx, "comment.find_my_last_commented", src, limit)
}

// FindLastCommentedInReaction returns entities where someone commented
// after user's own latest comment, with both the latest comment and
// user's latest comment.
func (r *Repo) FindLastCommentedInReaction(ctx context.Context, user uuid.UUID, limit int) ([]domain.RecentlyCommentedAsset, error) {
	global := latestPerTopic(commentsSource()).Inner()
	mine := latestPerTopic(commentsSource().Where(postgres.UserIs("c.author_id", user))).Inner()

	query, args, err := postgres.Builder().
		Select("g.topic_entity", "g.id AS last_comment", "m.id AS my_last_comment").
		Column(postgres.AssetTypeColumn(r.cfg, "g.topic_entity", "asset_type")).
		FromSelect(global, "g").
		JoinClause(sq.Expr("JOIN (?) m ON m.topic_entity = g.topic_entity", mine)).
		Where("m.id <> g.id").
		OrderBy("g.effective DESC", "g.id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "comment.find_in_reaction")
	}

	return r.scanFeed(ctx, "comment.find_in_reaction", query, args)
}

// ---------------------------------------------------------------------------
// Hydration
// ---------------------------------------------------------------------------

const getByIDsSQL = `
SELECT id, topic_entity, author_id, content, created, modified
FROM comments
WHERE id = ANY($1)`

// GetByIDs returns the comments with the given ids in no particular order.
// Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []string) ([]domain.Comment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []commentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, getByIDsSQL, ids); err != nil {
		return nil, postgres.MapError(err, "comment.get_by_ids")
	}

	comments := make([]domain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = domain.Comment{
			URI:         row.ID,
			TopicEntity: row.Topic,
			Author:      row.AuthorID,
			Content:     row.Content,
			Created:     row.Created,
			Modified:    row.Modified,
		}
	}
	return comments, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func commentsSource() sq.SelectBuilder {
	return sq.Select("c.id", "c.topic_entity", effectiveTime+" AS effective").
		From("comments c")
}

func latestPerTopic(src sq.SelectBuilder) postgres.LatestPerGroup {
	return postgres.LatestPerGroup{
		Source:    src,
		Group:     "c.topic_entity",
		Effective: effectiveTime,
		TieBreak:  "c.id",
	}
}

func (r *Repo) latestFeed(ctx context.Context, op string, src sq.SelectBuilder, limit int) ([]domain.RecentlyCommentedAsset, error) {
	query, args, err := latestPerTopic(src).
		Select("lc", "effective", "id", "lc.topic_entity", "lc.id AS last_comment").
		Column(postgres.AssetTypeColumn(r.cfg, "lc.topic_entity", "asset_type")).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, op)
	}

	return r.scanFeed(ctx, op, query, args)
}

func (r *Repo) scanFeed(ctx context.Context, op, query string, args []any) ([]domain.RecentlyCommentedAsset, error) {
	var rows []feedRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, op)
	}

	out := make([]domain.RecentlyCommentedAsset, len(rows))
	for i, row := range rows {
		out[i] = domain.RecentlyCommentedAsset{
			EntityURI:        row.Entity,
			LastCommentURI:   row.LastComment,
			MyLastCommentURI: row.MyLastComment,
		}
		if row.AssetType != nil {
			out[i].Type = domain.AssetType(*row.AssetType)
		}
	}
	return out, nil
}
