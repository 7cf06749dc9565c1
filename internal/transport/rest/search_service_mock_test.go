package rest

import (
	"context"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/internal/service/search"
	"sync"
)

var _ searchService = &searchServiceMock{}

type searchServiceMock struct {
	FacetedSearchFunc  func(ctx context.Context, input search.FacetedSearchInput) ([]domain.FacetedSearchResult, error)
	FullTextSearchFunc func(ctx context.Context, searchString string, includeSnapshots bool) ([]domain.FullTextSearchResult, error)

	calls struct {
		FacetedSearch []struct {
			Ctx   context.Context
			Input search.FacetedSearchInput
		}
		FullTextSearch []struct {
			Ctx              context.Context
			SearchString     string
			IncludeSnapshots bool
		}
	}
	lockFacetedSearch  sync.RWMutex
	lockFullTextSearch sync.RWMutex
}

func (mock *searchServiceMock) FacetedSearch(ctx context.Context, input search.FacetedSearchInput) ([]domain.FacetedSearchResult, error) {
	if mock.FacetedSearchFunc == nil {
		panic("searchServiceMock.FacetedSearchFunc: method is nil but searchService.FacetedSearch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input search.FacetedSearchInput
	}{Ctx: ctx, Input: input}
	mock.lockFacetedSearch.Lock()
	mock.calls.FacetedSearch = append(mock.calls.FacetedSearch, callInfo)
	mock.lockFacetedSearch.Unlock()
	return mock.FacetedSearchFunc(ctx, input)
}

func (mock *searchServiceMock) FacetedSearchCalls() []struct {
	Ctx   context.Context
	Input search.FacetedSearchInput
} {
	mock.lockFacetedSearch.RLock()
	calls := mock.calls.FacetedSearch
	mock.lockFacetedSearch.RUnlock()
	return calls
}

func (mock *searchServiceMock) FullTextSearch(ctx context.Context, searchString string, includeSnapshots bool) ([]domain.FullTextSearchResult, error) {
	if mock.FullTextSearchFunc == nil {
		panic("searchServiceMock.FullTextSearchFunc: method is nil but searchService.FullTextSearch was just called")
	}
	callInfo := struct {
		Ctx              context.Context
		SearchString     string
		IncludeSnapshots bool
	}{Ctx: ctx, SearchString: searchString, IncludeSnapshots: includeSnapshots}
	mock.lockFullTextSearch.Lock()
	mock.calls.FullTextSearch = append(mock.calls.FullTextSearch, callInfo)
	mock.lockFullTextSearch.Unlock()
	return mock.FullTextSearchFunc(ctx, searchString, includeSnapshots)
}

func (mock *searchServiceMock) FullTextSearchCalls() []struct {
	Ctx              context.Context
	SearchString     string
	IncludeSnapshots bool
} {
	mock.lockFullTextSearch.RLock()
	calls := mock.calls.FullTextSearch
	mock.lockFullTextSearch.RUnlock()
	return calls
}
