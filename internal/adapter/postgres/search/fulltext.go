package search

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/kbss-cvut/termit-sub001/internal/adapter/postgres"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/internal/vocabulary"
)

//go:embed fts.sql
var defaultTemplate string

// SnapshotExclusion is the exact template line that keeps snapshots out of
// full-text results. Templates must contain it; it is cut out of the query
// when snapshots are requested.
const SnapshotExclusion = "AND NOT EXISTS (SELECT 1 FROM triples s WHERE s.subject = l.subject AND s.predicate = @rdfType AND s.object = @snapshotType)"

// Template is a loaded full-text query in both of its forms.
type Template struct {
	Default          string
	IncludeSnapshots string
}

// ParseTemplate checks that text carries the snapshot exclusion and
// derives the snapshot-including variant from it.
func ParseTemplate(text string) (Template, error) {
	if !strings.Contains(text, SnapshotExclusion) {
		return Template{}, fmt.Errorf("full-text template: snapshot exclusion clause not found")
	}
	return Template{
		Default:          text,
		IncludeSnapshots: strings.Replace(text, SnapshotExclusion, "", 1),
	}, nil
}

// LoadTemplate reads the template at path, or the embedded one when path
// is empty.
func LoadTemplate(path string) (Template, error) {
	if path == "" {
		return ParseTemplate(defaultTemplate)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("full-text template: %w", err)
	}
	return ParseTemplate(string(b))
}

type ftsRow struct {
	URI        string  `db:"uri"`
	Label      string  `db:"label"`
	AssetType  string  `db:"asset_type"`
	Vocabulary *string `db:"vocabulary"`
	Score      float64 `db:"score"`
	Snippet    string  `db:"snippet"`
}

// FullTextSearch runs the template for searchString, best match first.
func (r *Repo) FullTextSearch(ctx context.Context, searchString string, includeSnapshots bool) ([]domain.FullTextSearchResult, error) {
	query := r.fts.Default
	if includeSnapshots {
		query = r.fts.IncludeSnapshots
	}

	args := pgx.NamedArgs{
		"searchString":    searchString,
		"lang":            r.cfg.Language,
		"labelPredicates": r.cfg.LabelPredicates,
		"rdfType":         vocabulary.RDFType,
		"termType":        r.cfg.TermType,
		"assetTypes":      []string{r.cfg.TermType, r.cfg.VocabularyType},
		"inVocabulary":    r.cfg.InVocabulary,
		"snapshotType":    r.cfg.SnapshotType,
	}

	var rows []ftsRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args); err != nil {
		return nil, postgres.MapError(err, "search.full_text")
	}

	results := make([]domain.FullTextSearchResult, len(rows))
	for i, row := range rows {
		results[i] = domain.FullTextSearchResult{
			URI:        row.URI,
			Label:      row.Label,
			Type:       domain.AssetType(row.AssetType),
			Vocabulary: row.Vocabulary,
			Score:      row.Score,
			Snippet:    row.Snippet,
		}
	}
	return results, nil
}
