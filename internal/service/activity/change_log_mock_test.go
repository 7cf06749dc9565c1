package activity

import (
	"context"
	"github.com/google/uuid"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"sync"
)

var _ changeLog = &changeLogMock{}

type changeLogMock struct {
	CreateFunc              func(ctx context.Context, rec domain.ChangeRecord) error
	FindChangedEntitiesFunc func(ctx context.Context, assetType domain.AssetType, author *uuid.UUID, offset int, limit int) ([]string, error)
	LatestChangeFunc        func(ctx context.Context, entity string, assetType domain.AssetType, author *uuid.UUID) (*domain.RecentlyModifiedAsset, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec domain.ChangeRecord
		}
		FindChangedEntities []struct {
			Ctx       context.Context
			AssetType domain.AssetType
			Author    *uuid.UUID
			Offset    int
			Limit     int
		}
		LatestChange []struct {
			Ctx       context.Context
			Entity    string
			AssetType domain.AssetType
			Author    *uuid.UUID
		}
	}
	lockCreate              sync.RWMutex
	lockFindChangedEntities sync.RWMutex
	lockLatestChange        sync.RWMutex
}

func (mock *changeLogMock) Create(ctx context.Context, rec domain.ChangeRecord) error {
	if mock.CreateFunc == nil {
		panic("changeLogMock.CreateFunc: method is nil but changeLog.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.ChangeRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *changeLogMock) CreateCalls() []struct {
	Ctx context.Context
	Rec domain.ChangeRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *changeLogMock) FindChangedEntities(ctx context.Context, assetType domain.AssetType, author *uuid.UUID, offset int, limit int) ([]string, error) {
	if mock.FindChangedEntitiesFunc == nil {
		panic("changeLogMock.FindChangedEntitiesFunc: method is nil but changeLog.FindChangedEntities was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AssetType domain.AssetType
		Author    *uuid.UUID
		Offset    int
		Limit     int
	}{Ctx: ctx, AssetType: assetType, Author: author, Offset: offset, Limit: limit}
	mock.lockFindChangedEntities.Lock()
	mock.calls.FindChangedEntities = append(mock.calls.FindChangedEntities, callInfo)
	mock.lockFindChangedEntities.Unlock()
	return mock.FindChangedEntitiesFunc(ctx, assetType, author, offset, limit)
}

func (mock *changeLogMock) FindChangedEntitiesCalls() []struct {
	Ctx       context.Context
	AssetType domain.AssetType
	Author    *uuid.UUID
	Offset    int
	Limit     int
} {
	mock.lockFindChangedEntities.RLock()
	calls := mock.calls.FindChangedEntities
	mock.lockFindChangedEntities.RUnlock()
	return calls
}

func (mock *changeLogMock) LatestChange(ctx context.Context, entity string, assetType domain.AssetType, author *uuid.UUID) (*domain.RecentlyModifiedAsset, error) {
	if mock.LatestChangeFunc == nil {
		panic("changeLogMock.LatestChangeFunc: method is nil but changeLog.LatestChange was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Entity    string
		AssetType domain.AssetType
		Author    *uuid.UUID
	}{Ctx: ctx, Entity: entity, AssetType: assetType, Author: author}
	mock.lockLatestChange.Lock()
	mock.calls.LatestChange = append(mock.calls.LatestChange, callInfo)
	mock.lockLatestChange.Unlock()
	return mock.LatestChangeFunc(ctx, entity, assetType, author)
}

func (mock *changeLogMock) LatestChangeCalls() []struct {
	Ctx       context.Context
	Entity    string
	AssetType domain.AssetType
	Author    *uuid.UUID
} {
	mock.lockLatestChange.RLock()
	calls := mock.calls.LatestChange
	mock.lockLatestChange.RUnlock()
	return calls
}
