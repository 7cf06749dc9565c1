package search

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
)

// Filter restricts the object bound by a property clause.
type Filter interface {
	Condition(alias string) sq.Sqlizer
}

// IRIFilter matches objects that are one of Values, compared as identifiers.
type IRIFilter struct {
	Values []string
}

func (f IRIFilter) Condition(alias string) sq.Sqlizer {
	return sq.And{
		sq.Eq{alias + ".object": f.Values},
		sq.Eq{alias + ".object_is_iri": true},
	}
}

// ExactFilter matches objects equal to Value, case-sensitively.
type ExactFilter struct {
	Value string
}

func (f ExactFilter) Condition(alias string) sq.Sqlizer {
	return sq.Eq{alias + ".object": f.Value}
}

// SubstringFilter matches objects containing Value, ignoring case.
type SubstringFilter struct {
	Value string
}

func (f SubstringFilter) Condition(alias string) sq.Sqlizer {
	return sq.Expr("strpos(lower("+alias+".object), lower(?)) > 0", f.Value)
}

// PropertyClause binds a fresh alias to the subject through Predicate and
// applies Filter to it. It renders as an EXISTS subquery so several
// clauses on the same predicate stay independent.
type PropertyClause struct {
	Alias     string
	Predicate string
	Filter    Filter
}

func (c PropertyClause) ToSql() (string, []any, error) {
	sub := sq.Select("1").
		From("triples " + c.Alias).
		Where(c.Alias + ".subject = t.subject").
		Where(sq.Eq{c.Alias + ".predicate": c.Predicate}).
		Where(c.Filter.Condition(c.Alias))
	return sq.Expr("EXISTS (?)", sub).ToSql()
}

// NewClause turns the i-th facet into a property clause.
func NewClause(i int, p domain.SearchParam) (PropertyClause, error) {
	c := PropertyClause{Alias: fmt.Sprintf("f%d", i), Predicate: p.Property}

	switch p.MatchKind {
	case domain.MatchKindIRI:
		c.Filter = IRIFilter{Values: p.Values}
	case domain.MatchKindExactMatch:
		if len(p.Values) != 1 {
			return PropertyClause{}, domain.NewValidationError("value", "exact match takes exactly one value")
		}
		c.Filter = ExactFilter{Value: p.Values[0]}
	case domain.MatchKindSubstring:
		if len(p.Values) != 1 {
			return PropertyClause{}, domain.NewValidationError("value", "substring match takes exactly one value")
		}
		c.Filter = SubstringFilter{Value: p.Values[0]}
	default:
		return PropertyClause{}, domain.NewValidationError("matchType", fmt.Sprintf("unknown match type %q", p.MatchKind))
	}

	return c, nil
}

// FacetQuery is a faceted search before rendering: a prefix selecting
// labelled, typed subjects as t, then one clause per facet, all ANDed.
type FacetQuery struct {
	Prefix  sq.SelectBuilder
	Clauses []sq.Sqlizer
	Page    domain.PageSpec
}

// ToSql renders the query ordered by label, ignoring case.
func (q FacetQuery) ToSql() (string, []any, error) {
	b := q.Prefix
	for _, c := range q.Clauses {
		b = b.Where(c)
	}
	return b.
		OrderBy("lower(t.object)", "t.subject").
		Offset(uint64(q.Page.Offset)).
		Limit(uint64(q.Page.Size)).
		ToSql()
}
