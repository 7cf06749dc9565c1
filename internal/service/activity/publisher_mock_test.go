package activity

import (
	"context"
	"github.com/kbss-cvut/termit-sub001/internal/eventbus"
	"sync"
)

var _ publisher = &publisherMock{}

type publisherMock struct {
	PublishFunc func(ctx context.Context, evt eventbus.Event) bool

	calls struct {
		Publish []struct {
			Ctx context.Context
			Evt eventbus.Event
		}
	}
	lockPublish sync.RWMutex
}

func (mock *publisherMock) Publish(ctx context.Context, evt eventbus.Event) bool {
	if mock.PublishFunc == nil {
		panic("publisherMock.PublishFunc: method is nil but publisher.Publish was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Evt eventbus.Event
	}{Ctx: ctx, Evt: evt}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, evt)
}

func (mock *publisherMock) PublishCalls() []struct {
	Ctx context.Context
	Evt eventbus.Event
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
