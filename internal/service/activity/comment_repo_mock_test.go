package activity

import (
	"context"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"sync"
)

type commentRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []string) ([]domain.Comment, error)

	calls struct {
		GetByIDs []struct {
			Ctx context.Context
			Ids []string
		}
	}
	lockGetByIDs sync.RWMutex
}

func (mock *commentRepoMock) GetByIDs(ctx context.Context, ids []string) ([]domain.Comment, error) {
	if mock.GetByIDsFunc == nil {
		panic("commentRepoMock.GetByIDsFunc: method is nil but commentRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []string
	}{Ctx: ctx, Ids: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *commentRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []string
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
