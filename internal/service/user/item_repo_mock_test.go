package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, from *time.Time, to *time.Time) ([]domain.Item, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   *time.Time
			To     *time.Time
		}
	}
	lockListByUser sync.RWMutex
}

func (mock *itemRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, from *time.Time, to *time.Time) ([]domain.Item, error) {
	if mock.ListByUserFunc == nil {
		panic("itemRepoMock.ListByUserFunc: method is nil but itemRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   *time.Time
		To     *time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		From:   from,
		To:     to,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, from, to)
}

func (mock *itemRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   *time.Time
	To     *time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   *time.Time
		To     *time.Time
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
