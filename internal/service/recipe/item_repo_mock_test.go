package recipe

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	ListExpiringFunc func(ctx context.Context, scope domain.Scope, today time.Time, days int) ([]domain.Item, error)
	ListActiveFunc   func(ctx context.Context, scope domain.Scope, limit int) ([]domain.Item, error)

	calls struct {
		ListExpiring []struct {
			Ctx   context.Context
			Scope domain.Scope
			Today time.Time
			Days  int
		}
		ListActive []struct {
			Ctx   context.Context
			Scope domain.Scope
			Limit int
		}
	}
	lockListExpiring sync.RWMutex
	lockListActive   sync.RWMutex
}

func (mock *itemRepoMock) ListExpiring(ctx context.Context, scope domain.Scope, today time.Time, days int) ([]domain.Item, error) {
	if mock.ListExpiringFunc == nil {
		panic("itemRepoMock.ListExpiringFunc: method is nil but itemRepo.ListExpiring was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.Scope
		Today time.Time
		Days  int
	}{
		Ctx:   ctx,
		Scope: scope,
		Today: today,
		Days:  days,
	}
	mock.lockListExpiring.Lock()
	mock.calls.ListExpiring = append(mock.calls.ListExpiring, callInfo)
	mock.lockListExpiring.Unlock()
	return mock.ListExpiringFunc(ctx, scope, today, days)
}

func (mock *itemRepoMock) ListExpiringCalls() []struct {
	Ctx   context.Context
	Scope domain.Scope
	Today time.Time
	Days  int
} {
	var calls []struct {
		Ctx   context.Context
		Scope domain.Scope
		Today time.Time
		Days  int
	}
	mock.lockListExpiring.RLock()
	calls = mock.calls.ListExpiring
	mock.lockListExpiring.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListActive(ctx context.Context, scope domain.Scope, limit int) ([]domain.Item, error) {
	if mock.ListActiveFunc == nil {
		panic("itemRepoMock.ListActiveFunc: method is nil but itemRepo.ListActive was just called")
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

func (mock *itemRepoMock) ListActiveCalls() []struct {
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
