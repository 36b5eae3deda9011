package shopping

import (
	"context"
	"sync"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ stockReader = &stockReaderMock{}

type stockReaderMock struct {
	ListActiveFunc func(ctx context.Context, scope domain.Scope, limit int) ([]domain.Item, error)

	calls struct {
		ListActive []struct {
			Ctx   context.Context
			Scope domain.Scope
			Limit int
		}
	}
	lockListActive sync.RWMutex
}

func (mock *stockReaderMock) ListActive(ctx context.Context, scope domain.Scope, limit int) ([]domain.Item, error) {
	if mock.ListActiveFunc == nil {
		panic("stockReaderMock.ListActiveFunc: method is nil but stockReader.ListActive was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.Scope
		Limit int
	}{
		Ctx:   ctx,
		Scope: scope,
		Limit: limit,
	}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx, scope, limit)
}

func (mock *stockReaderMock) ListActiveCalls() []struct {
	Ctx   context.Context
	Scope domain.Scope
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Scope domain.Scope
		Limit int
	}
	mock.lockListActive.RLock()
	calls = mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}
