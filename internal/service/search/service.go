// Package search serves faceted and full-text term search.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
)

type searchRepo interface {
	FacetedSearch(ctx context.Context, params []domain.SearchParam, page domain.PageSpec) ([]domain.FacetedSearchResult, error)
	FullTextSearch(ctx context.Context, searchString string, includeSnapshots bool) ([]domain.FullTextSearchResult, error)
}

// Service provides search operations.
type Service struct {
	repo searchRepo
	log  *slog.Logger
}

// NewService creates a new search service.
func NewService(log *slog.Logger, repo searchRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "search"),
	}
}

// FacetedSearchInput holds the facets and the result window.
type FacetedSearchInput struct {
	Params []domain.SearchParam
	Page   domain.PageSpec
}

// Validate checks all fields and collects all errors.
func (i FacetedSearchInput) Validate() error {
	var errs []domain.FieldError

	if i.Params == nil {
		errs = append(errs, domain.FieldError{Field: "params", Message: "required"})
	}
	for n, p := range i.Params {
		field := fmt.Sprintf("params[%d]", n)
		if strings.TrimSpace(p.Property) == "" {
			errs = append(errs, domain.FieldError{Field: field + ".property", Message: "required"})
		}
		if !p.MatchKind.IsValid() {
			errs = append(errs, domain.FieldError{Field: field + ".matchType", Message: "must be IRI, EXACT_MATCH or SUBSTRING"})
		}
		switch {
		case len(p.Values) == 0:
			errs = append(errs, domain.FieldError{Field: field + ".value", Message: "required"})
		case p.MatchKind != domain.MatchKindIRI && len(p.Values) > 1:
			errs = append(errs, domain.FieldError{Field: field + ".value", Message: "takes exactly one value"})
		}
	}

	if err := i.Page.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FacetedSearch returns one page of non-snapshot terms matching every
// facet, ordered by label ignoring case.
func (s *Service) FacetedSearch(ctx context.Context, input FacetedSearchInput) ([]domain.FacetedSearchResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	results, err := s.repo.FacetedSearch(ctx, input.Params, input.Page)
	if err != nil {
		return nil, fmt.Errorf("faceted search: %w", err)
	}

	s.log.DebugContext(ctx, "faceted search",
		slog.Int("facets", len(input.Params)),
		slog.Int("results", len(results)),
	)
	return results, nil
}

// FullTextSearch matches searchString against asset labels and
// definitions. A blank search string yields no results without a query.
func (s *Service) FullTextSearch(ctx context.Context, searchString string, includeSnapshots bool) ([]domain.FullTextSearchResult, error) {
	searchString = strings.TrimSpace(searchString)
	if searchString == "" {
		return []domain.FullTextSearchResult{}, nil
	}

	results, err := s.repo.FullTextSearch(ctx, searchString, includeSnapshots)
	if err != nil {
		return nil, fmt.Errorf("full-text search: %w", err)
	}
	if results == nil {
		results = []domain.FullTextSearchResult{}
	}
	return results, nil
}
