package search

import (
	"context"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"sync"
)

var _ searchRepo = &searchRepoMock{}

type searchRepoMock struct {
	FacetedSearchFunc  func(ctx context.Context, params []domain.SearchParam, page domain.PageSpec) ([]domain.FacetedSearchResult, error)
	FullTextSearchFunc func(ctx context.Context, searchString string, includeSnapshots bool) ([]domain.FullTextSearchResult, error)

	calls struct {
		FacetedSearch []struct {
			Ctx    context.Context
			Params []domain.SearchParam
			Page   domain.PageSpec
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

func (mock *searchRepoMock) FacetedSearch(ctx context.Context, params []domain.SearchParam, page domain.PageSpec) ([]domain.FacetedSearchResult, error) {
	if mock.FacetedSearchFunc == nil {
		panic("searchRepoMock.FacetedSearchFunc: method is nil but searchRepo.FacetedSearch was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Params []domain.SearchParam
		Page   domain.PageSpec
	}{Ctx: ctx, Params: params, Page: page}
	mock.lockFacetedSearch.Lock()
	mock.calls.FacetedSearch = append(mock.calls.FacetedSearch, callInfo)
	mock.lockFacetedSearch.Unlock()
	return mock.FacetedSearchFunc(ctx, params, page)
}

func (mock *searchRepoMock) FacetedSearchCalls() []struct {
	Ctx    context.Context
	Params []domain.SearchParam
	Page   domain.PageSpec
} {
	mock.lockFacetedSearch.RLock()
	calls := mock.calls.FacetedSearch
	mock.lockFacetedSearch.RUnlock()
	return calls
}

func (mock *searchRepoMock) FullTextSearch(ctx context.Context, searchString string, includeSnapshots bool) ([]domain.FullTextSearchResult, error) {
	if mock.FullTextSearchFunc == nil {
		panic("searchRepoMock.FullTextSearchFunc: method is nil but searchRepo.FullTextSearch was just called")
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

func (mock *searchRepoMock) FullTextSearchCalls() []struct {
	Ctx              context.Context
	SearchString     string
	IncludeSnapshots bool
} {
	mock.lockFullTextSearch.RLock()
	calls := mock.calls.FullTextSearch
	mock.lockFullTextSearch.RUnlock()
	return calls
}
