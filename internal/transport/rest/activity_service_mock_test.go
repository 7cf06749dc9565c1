package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/internal/service/activity"
	"sync"
	"time"
)

var _ activityService = &activityServiceMock{}

type activityServiceMock struct {
	FindLastCommentedFunc           func(ctx context.Context, count int) ([]domain.RecentlyCommentedAsset, error)
	FindLastCommentedInReactionFunc func(ctx context.Context, count int) ([]domain.RecentlyCommentedAsset, error)
	FindLastEditedFunc              func(ctx context.Context, count int) ([]domain.RecentlyModifiedAsset, error)
	FindLastEditedByFunc            func(ctx context.Context, user uuid.UUID, count int) ([]domain.RecentlyModifiedAsset, error)
	FindMyLastCommentedFunc         func(ctx context.Context, count int) ([]domain.RecentlyCommentedAsset, error)
	FindMyLastEditedFunc            func(ctx context.Context, count int) ([]domain.RecentlyModifiedAsset, error)
	LastModifiedFunc                func(ctx context.Context, assetType domain.AssetType) (time.Time, error)
	RecordChangeFunc                func(ctx context.Context, input activity.RecordChangeInput) (*domain.ChangeRecord, error)

	calls struct {
		FindLastCommented []struct {
			Ctx   context.Context
			Count int
		}
		FindLastCommentedInReaction []struct {
			Ctx   context.Context
			Count int
		}
		FindLastEdited []struct {
			Ctx   context.Context
			Count int
		}
		FindLastEditedBy []struct {
			Ctx   context.Context
			User  uuid.UUID
			Count int
		}
		FindMyLastCommented []struct {
			Ctx   context.Context
			Count int
		}
		FindMyLastEdited []struct {
			Ctx   context.Context
			Count int
		}
		LastModified []struct {
			Ctx       context.Context
			AssetType domain.AssetType
		}
		RecordChange []struct {
			Ctx   context.Context
			Input activity.RecordChangeInput
		}
	}
	lockFindLastCommented           sync.RWMutex
	lockFindLastCommentedInReaction sync.RWMutex
	lockFindLastEdited              sync.RWMutex
	lockFindLastEditedBy            sync.RWMutex
	lockFindMyLastCommented         sync.RWMutex
	lockFindMyLastEdited            sync.RWMutex
	lockLastModified                sync.RWMutex
	lockRecordChange                sync.RWMutex
}

func (mock *activityServiceMock) FindLastCommented(ctx context.Context, count int) ([]domain.RecentlyCommentedAsset, error) {
	if mock.FindLastCommentedFunc == nil {
		panic("activityServiceMock.FindLastCommentedFunc: method is nil but activityService.FindLastCommented was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Count int
	}{Ctx: ctx, Count: count}
	mock.lockFindLastCommented.Lock()
	mock.calls.FindLastCommented = append(mock.calls.FindLastCommented, callInfo)
	mock.lockFindLastCommented.Unlock()
	return mock.FindLastCommentedFunc(ctx, count)
}

func (mock *activityServiceMock) FindLastCommentedCalls() []struct {
	Ctx   context.Context
	Count int
} {
	mock.lockFindLastCommented.RLock()
	calls := mock.calls.FindLastCommented
	mock.lockFindLastCommented.RUnlock()
	return calls
}

func (mock *activityServiceMock) FindLastCommentedInReaction(ctx context.Context, count int) ([]domain.RecentlyCommentedAsset, error) {
	if mock.FindLastCommentedInReactionFunc == nil {
		panic("activityServiceMock.FindLastCommentedInReactionFunc: method is nil but activityService.FindLastCommentedInReaction was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Count int
	}{Ctx: ctx, Count: count}
	mock.lockFindLastCommentedInReaction.Lock()
	mock.calls.FindLastCommentedInReaction = append(mock.calls.FindLastCommentedInReaction, callInfo)
	mock.lockFindLastCommentedInReaction.Unlock()
	return mock.FindLastCommentedInReactionFunc(ctx, count)
}

func (mock *activityServiceMock) FindLastCommentedInReactionCalls() []struct {
	Ctx   context.Context
	Count int
} {
	mock.lockFindLastCommentedInReaction.RLock()
	calls := mock.calls.FindLastCommentedInReaction
	mock.lockFindLastCommentedInReaction.RUnlock()
	return calls
}

func (mock *activityServiceMock) FindLastEdited(ctx context.Context, count int) ([]domain.RecentlyModifiedAsset, error) {
	if mock.FindLastEditedFunc == nil {
		panic("activityServiceMock.FindLastEditedFunc: method is nil but activityService.FindLastEdited was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Count int
	}{Ctx: ctx, Count: count}
	mock.lockFindLastEdited.Lock()
	mock.calls.FindLastEdited = append(mock.calls.FindLastEdited, callInfo)
	mock.lockFindLastEdited.Unlock()
	return mock.FindLastEditedFunc(ctx, count)
}

func (mock *activityServiceMock) FindLastEditedCalls() []struct {
	Ctx   context.Context
	Count int
} {
	mock.lockFindLastEdited.RLock()
	calls := mock.calls.FindLastEdited
	mock.lockFindLastEdited.RUnlock()
	return calls
}

func (mock *activityServiceMock) FindLastEditedBy(ctx context.Context, user uuid.UUID, count int) ([]domain.RecentlyModifiedAsset, error) {
	if mock.FindLastEditedByFunc == nil {
		panic("activityServiceMock.FindLastEditedByFunc: method is nil but activityService.FindLastEditedBy was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		User  uuid.UUID
		Count int
	}{Ctx: ctx, User: user, Count: count}
	mock.lockFindLastEditedBy.Lock()
	mock.calls.FindLastEditedBy = append(mock.calls.FindLastEditedBy, callInfo)
	mock.lockFindLastEditedBy.Unlock()
	return mock.FindLastEditedByFunc(ctx, user, count)
}

func (mock *activityServiceMock) FindLastEditedByCalls() []struct {
	Ctx   context.Context
	User  uuid.UUID
	Count int
} {
	mock.lockFindLastEditedBy.RLock()
	calls := mock.calls.FindLastEditedBy
	mock.lockFindLastEditedBy.RUnlock()
	return calls
}

func (mock *activityServiceMock) FindMyLastCommented(ctx context.Context, count int) ([]domain.RecentlyCommentedAsset, error) {
	if mock.FindMyLastCommentedFunc == nil {
		panic("activityServiceMock.FindMyLastCommentedFunc: method is nil but activityService.FindMyLastCommented was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Count int
	}{Ctx: ctx, Count: count}
	mock.lockFindMyLastCommented.Lock()
	mock.calls.FindMyLastCommented = append(mock.calls.FindMyLastCommented, callInfo)
	mock.lockFindMyLastCommented.Unlock()
	return mock.FindMyLastCommentedFunc(ctx, count)
}

func (mock *activityServiceMock) FindMyLastCommentedCalls() []struct {
	Ctx   context.Context
	Count int
} {
	mock.lockFindMyLastCommented.RLock()
	calls := mock.calls.FindMyLastCommented
	mock.lockFindMyLastCommented.RUnlock()
	return calls
}

func (mock *activityServiceMock) FindMyLastEdited(ctx context.Context, count int) ([]domain.RecentlyModifiedAsset, error) {
	if mock.FindMyLastEditedFunc == nil {
		panic("activityServiceMock.FindMyLastEditedFunc: method is nil but activityService.FindMyLastEdited was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Count int
	}{Ctx: ctx, Count: count}
	mock.lockFindMyLastEdited.Lock()
	mock.calls.FindMyLastEdited = append(mock.calls.FindMyLastEdited, callInfo)
	mock.lockFindMyLastEdited.Unlock()
	return mock.FindMyLastEditedFunc(ctx, count)
}

func (mock *activityServiceMock) FindMyLastEditedCalls() []struct {
	Ctx   context.Context
	Count int
} {
	mock.lockFindMyLastEdited.RLock()
	calls := mock.calls.FindMyLastEdited
	mock.lockFindMyLastEdited.RUnlock()
	return calls
}

func (mock *activityServiceMock) LastModified(ctx context.Context, assetType domain.AssetType) (time.Time, error) {
	if mock.LastModifiedFunc == nil {
		panic("activityServiceMock.LastModifiedFunc: method is nil but activityService.LastModified was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AssetType domain.AssetType
	}{Ctx: ctx, AssetType: assetType}
	mock.lockLastModified.Lock()
	mock.calls.LastModified = append(mock.calls.LastModified, callInfo)
	mock.lockLastModified.Unlock()
	return mock.LastModifiedFunc(ctx, assetType)
}

func (mock *activityServiceMock) LastModifiedCalls() []struct {
	Ctx       context.Context
	AssetType domain.AssetType
} {
	mock.lockLastModified.RLock()
	calls := mock.calls.LastModified
	mock.lockLastModified.RUnlock()
	return calls
}

func (mock *activityServiceMock) RecordChange(ctx context.Context, input activity.RecordChangeInput) (*domain.ChangeRecord, error) {
	if mock.RecordChangeFunc == nil {
		panic("activityServiceMock.RecordChangeFunc: method is nil but activityService.RecordChange was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.RecordChangeInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordChange.Lock()
	mock.calls.RecordChange = append(mock.calls.RecordChange, callInfo)
	mock.lockRecordChange.Unlock()
	return mock.RecordChangeFunc(ctx, input)
}

func (mock *activityServiceMock) RecordChangeCalls() []struct {
	Ctx   context.Context
	Input activity.RecordChangeInput
} {
	mock.lockRecordChange.RLock()
	calls := mock.calls.RecordChange
	mock.lockRecordChange.RUnlock()
	return calls
}
