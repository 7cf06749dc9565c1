package domain

// MatchKind selects the comparison applied to a facet's values.
type MatchKind string

const (
	MatchKindIRI        MatchKind = "IRI"
	MatchKindExactMatch MatchKind = "EXACT_MATCH"
	MatchKindSubstring  MatchKind = "SUBSTRING"
)

func (k MatchKind) String() string { return string(k) }

func (k MatchKind) IsValid() bool {
	switch k {
	case MatchKindIRI, MatchKindExactMatch, MatchKindSubstring:
		return true
	}
	return false
}

// SearchParam is a single user-supplied facet.
type SearchParam struct {
	Property  string
	MatchKind MatchKind
	Values    []string
}

// FacetedSearchResult is a term matched by faceted search.
type FacetedSearchResult struct {
	URI   string
	Label string
	Type  AssetType
}

// FullTextSearchResult is an asset matched by full-text search.
type FullTextSearchResult struct {
	URI        string
	Label      string
	Type       AssetType
	Vocabulary *string
	Score      float64
	Snippet    string
}
