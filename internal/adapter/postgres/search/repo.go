// Package search implements faceted and full-text term search using
// PostgreSQL. Snapshots never appear in results unless a caller asks for
// them in full-text search.
package search

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/kbss-cvut/termit-sub001/internal/adapter/postgres"
	"github.com/kbss-cvut/termit-sub001/internal/config"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/internal/vocabulary"
)

// Repo runs search queries.
type Repo struct {
	db  postgres.Querier
	cfg config.RepositoryConfig
	fts Template
}

// New creates a new search repository. tmpl is the full-text query.
func New(db postgres.Querier, cfg config.RepositoryConfig, tmpl Template) *Repo {
	return &Repo{db: db, cfg: cfg, fts: tmpl}
}

type facetRow struct {
	URI   string `db:"uri"`
	Label string `db:"label"`
}

// BuildFacetQuery assembles the faceted search over terms labelled in the
// configured language.
func (r *Repo) BuildFacetQuery(params []domain.SearchParam, page domain.PageSpec) (FacetQuery, error) {
	q := FacetQuery{
		Prefix: postgres.Builder().
			Select("t.subject AS uri", "t.object AS label").
			From("triples t").
			Where(sq.Eq{"t.predicate": vocabulary.SKOSPrefLabel}).
			Where(sq.Eq{"t.lang": r.cfg.Language}).
			Where(postgres.AssetTypeFilter(r.cfg, "t.subject", domain.AssetTypeTerm)).
			Where(postgres.NotSnapshot(r.cfg, "t.subject")),
		Page: page,
	}

	for i, p := range params {
		c, err := NewClause(i, p)
		if err != nil {
			return FacetQuery{}, err
		}
		q.Clauses = append(q.Clauses, c)
	}
	return q, nil
}

// FacetedSearch returns one page of terms matching every facet.
func (r *Repo) FacetedSearch(ctx context.Context, params []domain.SearchParam, page domain.PageSpec) ([]domain.FacetedSearchResult, error) {
	q, err := r.BuildFacetQuery(params, page)
	if err != nil {
		return nil, err
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "search.faceted")
	}

	var rows []facetRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "search.faceted")
	}

	results := make([]domain.FacetedSearchResult, len(rows))
	for i, row := range rows {
		results[i] = domain.FacetedSearchResult{URI: row.URI, Label: row.Label, Type: domain.AssetTypeTerm}
	}
	return results, nil
}
