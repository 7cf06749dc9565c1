package postgres

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// UserIs matches col against id. sq.Eq would bind id through its
// driver.Valuer as a string; this keeps the uuid.UUID argument.
func UserIs(col string, id uuid.UUID) sq.Sqlizer {
	return sq.Expr(col+" = ?", id)
}

// LatestPerGroup picks, for every distinct value of Group, the single row
// of Source with the greatest Effective value. Ties on Effective are broken
// by TieBreak ascending, so the pick is deterministic.
type LatestPerGroup struct {
	Source    sq.SelectBuilder
	Group     string
	Effective string
	TieBreak  string
}

// Inner renders the per-group pick with DISTINCT ON. Its rows come out
// ordered by group, not by recency.
func (l LatestPerGroup) Inner() sq.SelectBuilder {
	return l.Source.
		Options("DISTINCT ON (" + l.Group + ")").
		OrderBy(l.Group, l.Effective+" DESC", l.TieBreak)
}

// Select wraps Inner under alias and orders the picked rows by effective
// time, newest first. effectiveCol and tieBreakCol name the columns as
// they are visible through alias.
func (l LatestPerGroup) Select(alias, effectiveCol, tieBreakCol string, columns ...string) sq.SelectBuilder {
	if len(columns) == 0 {
		columns = []string{alias + ".*"}
	}
	return Builder().
		Select(columns...).
		FromSelect(l.Inner(), alias).
		OrderBy(alias+"."+effectiveCol+" DESC", alias+"."+tieBreakCol)
}
