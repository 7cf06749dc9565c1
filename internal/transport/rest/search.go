package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/internal/service/search"
)

type searchService interface {
	FacetedSearch(ctx context.Context, input search.FacetedSearchInput) ([]domain.FacetedSearchResult, error)
	FullTextSearch(ctx context.Context, searchString string, includeSnapshots bool) ([]domain.FullTextSearchResult, error)
}

// SearchHandler serves full-text and faceted search.
type SearchHandler struct {
	svc             searchService
	defaultPageSize int
	log             *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(logger *slog.Logger, svc searchService, defaultPageSize int) *SearchHandler {
	return &SearchHandler{
		svc:             svc,
		defaultPageSize: defaultPageSize,
		log:             logger.With("handler", "search"),
	}
}

type facetRequest struct {
	Property  string   `json:"property"`
	MatchType string   `json:"matchType"`
	Value     []string `json:"value"`
}

// FullText handles GET /search/fts.
func (h *SearchHandler) FullText(w http.ResponseWriter, r *http.Request) {
	includeSnapshots, err := queryBool(r, "includeSnapshots")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	results, err := h.svc.FullTextSearch(r.Context(), r.URL.Query().Get("searchString"), includeSnapshots)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFullTextResultDTOs(results))
}

// Faceted handles POST /search/faceted. The body is a JSON array of facets;
// an empty array matches every term, a null body is rejected.
func (h *SearchHandler) Faceted(w http.ResponseWriter, r *http.Request) {
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	size, err := queryInt(r, "size", h.defaultPageSize)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req []facetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var params []domain.SearchParam
	if req != nil {
		params = make([]domain.SearchParam, len(req))
		for i, f := range req {
			params[i] = domain.SearchParam{
				Property:  f.Property,
				MatchKind: domain.MatchKind(f.MatchType),
				Values:    f.Value,
			}
		}
	}

	results, err := h.svc.FacetedSearch(r.Context(), search.FacetedSearchInput{
		Params: params,
		Page:   domain.PageSpec{Offset: offset, Size: size},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFacetedResultDTOs(results))
}
