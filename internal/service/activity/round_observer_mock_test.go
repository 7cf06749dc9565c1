package activity

import (
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"sync"
)

var _ roundObserver = &roundObserverMock{}

type roundObserverMock struct {
	ObserveDedupRoundsFunc func(assetType domain.AssetType, rounds int)

	calls struct {
		ObserveDedupRounds []struct {
			AssetType domain.AssetType
			Rounds    int
		}
	}
	lockObserveDedupRounds sync.RWMutex
}

func (mock *roundObserverMock) ObserveDedupRounds(assetType domain.AssetType, rounds int) {
	if mock.ObserveDedupRoundsFunc == nil {
		panic("roundObserverMock.ObserveDedupRoundsFunc: method is nil but roundObserver.ObserveDedupRounds was just called")
	}
	callInfo := struct {
		AssetType domain.AssetType
		Rounds    int
	}{AssetType: assetType, Rounds: rounds}
	mock.lockObserveDedupRounds.Lock()
	mock.calls.ObserveDedupRounds = append(mock.calls.ObserveDedupRounds, callInfo)
	mock.lockObserveDedupRounds.Unlock()
	mock.ObserveDedupRoundsFunc(assetType, rounds)
}

func (mock *roundObserverMock) ObserveDedupRoundsCalls() []struct {
	AssetType domain.AssetType
	Rounds    int
} {
	mock.lockObserveDedupRounds.RLock()
	calls := mock.calls.ObserveDedupRounds
	mock.lockObserveDedupRounds.RUnlock()
	return calls
}
