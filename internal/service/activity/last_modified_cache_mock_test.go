package activity

import (
	"context"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"sync"
	"time"
)

var _ lastModifiedCache = &lastModifiedCacheMock{}

type lastModifiedCacheMock struct {
	GetFunc func(ctx context.Context, assetType domain.AssetType) (time.Time, error)

	calls struct {
		Get []struct {
			Ctx       context.Context
			AssetType domain.AssetType
		}
	}
	lockGet sync.RWMutex
}

func (mock *lastModifiedCacheMock) Get(ctx context.Context, assetType domain.AssetType) (time.Time, error) {
	if mock.GetFunc == nil {
		panic("lastModifiedCacheMock.GetFunc: method is nil but lastModifiedCache.Get was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AssetType domain.AssetType
	}{Ctx: ctx, AssetType: assetType}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, assetType)
}

func (mock *lastModifiedCacheMock) GetCalls() []struct {
	Ctx       context.Context
	AssetType domain.AssetType
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
