package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ analyticsRepo = &analyticsRepoMock{}

type analyticsRepoMock struct {
	ListDailyFunc func(ctx context.Context, userID uuid.UUID, from *time.Time) ([]domain.AnalyticsDaily, error)

	calls struct {
		ListDaily []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   *time.Time
		}
	}
	lockListDaily sync.RWMutex
}

func (mock *analyticsRepoMock) ListDaily(ctx context.Context, userID uuid.UUID, from *time.Time) ([]domain.AnalyticsDaily, error) {
	if mock.ListDailyFunc == nil {
		panic("analyticsRepoMock.ListDailyFunc: method is nil but analyticsRepo.ListDaily was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   *time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		From:   from,
	}
	mock.lockListDaily.Lock()
	mock.calls.ListDaily = append(mock.calls.ListDaily, callInfo)
	mock.lockListDaily.Unlock()
	return mock.ListDailyFunc(ctx, userID, from)
}

func (mock *analyticsRepoMock) ListDailyCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   *time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   *time.Time
	}
	mock.lockListDaily.RLock()
	calls = mock.calls.ListDaily
	mock.lockListDaily.RUnlock()
	return calls
}
