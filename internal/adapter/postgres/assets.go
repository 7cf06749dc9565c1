package postgres

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/kbss-cvut/termit-sub001/internal/config"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/internal/vocabulary"
)

// TypedAs selects 1 when the subject in subjectCol has rdf:type class.
// Use it inside EXISTS / NOT EXISTS.
func TypedAs(subjectCol, class string) sq.SelectBuilder {
	return sq.Select("1").
		From("triples ty").
		Where("ty.subject = " + subjectCol).
		Where(sq.Eq{"ty.predicate": vocabulary.RDFType}).
		Where(sq.Eq{"ty.object": class})
}

// AssetTypeFilter keeps subjects typed as assetType. Vocabularies are
// resources too, but resource queries leave them out.
func AssetTypeFilter(cfg config.RepositoryConfig, subjectCol string, assetType domain.AssetType) sq.Sqlizer {
	cond := sq.And{sq.Expr("EXISTS (?)", TypedAs(subjectCol, cfg.TypeIRI(assetType)))}
	if assetType == domain.AssetTypeResource {
		cond = append(cond, sq.Expr("NOT EXISTS (?)", TypedAs(subjectCol, cfg.VocabularyType)))
	}
	return cond
}

// NotSnapshot drops subjects typed as a snapshot.
func NotSnapshot(cfg config.RepositoryConfig, subjectCol string) sq.Sqlizer {
	return sq.Expr("NOT EXISTS (?)", TypedAs(subjectCol, cfg.SnapshotType))
}

// HasLabel keeps subjects labelled by one of the configured label
// predicates in the configured language.
func HasLabel(cfg config.RepositoryConfig, subjectCol string) sq.Sqlizer {
	return sq.Expr("EXISTS (?)", sq.Select("1").
		From("triples lb").
		Where("lb.subject = "+subjectCol).
		Where(sq.Eq{"lb.predicate": cfg.LabelPredicates}).
		Where(sq.Eq{"lb.lang": cfg.Language}))
}

// AssetTypeColumn renders the asset type of subjectCol as alias: TERM,
// VOCABULARY, RESOURCE, or NULL for anything else.
func AssetTypeColumn(cfg config.RepositoryConfig, subjectCol, alias string) sq.Sqlizer {
	return sq.Alias(sq.Expr(
		"CASE WHEN EXISTS (?) THEN '"+string(domain.AssetTypeTerm)+"'"+
			" WHEN EXISTS (?) THEN '"+string(domain.AssetTypeVocabulary)+"'"+
			" WHEN EXISTS (?) THEN '"+string(domain.AssetTypeResource)+"' END",
		TypedAs(subjectCol, cfg.TermType),
		TypedAs(subjectCol, cfg.VocabularyType),
		TypedAs(subjectCol, cfg.ResourceType),
	), alias)
}
