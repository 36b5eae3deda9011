package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	WasteByCategoryFunc   func(ctx context.Context, userID uuid.UUID, from time.Time) (domain.CategoryBreakdown, error)
	SavingsByCategoryFunc func(ctx context.Context, userID uuid.UUID, from time.Time) (domain.CategoryBreakdown, error)

	calls struct {
		WasteByCategory []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
		}
		SavingsByCategory []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
		}
	}
	lockWasteByCategory   sync.RWMutex
	lockSavingsByCategory sync.RWMutex
}

func (mock *logRepoMock) WasteByCategory(ctx context.Context, userID uuid.UUID, from time.Time) (domain.CategoryBreakdown, error) {
	if mock.WasteByCategoryFunc == nil {
		panic("logRepoMock.WasteByCategoryFunc: method is nil but logRepo.WasteByCategory was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		From:   from,
	}
	mock.lockWasteByCategory.Lock()
	mock.calls.WasteByCategory = append(mock.calls.WasteByCategory, callInfo)
	mock.lockWasteByCategory.Unlock()
	return mock.WasteByCategoryFunc(ctx, userID, from)
}

func (mock *logRepoMock) WasteByCategoryCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
	}
	mock.lockWasteByCategory.RLock()
	calls = mock.calls.WasteByCategory
	mock.lockWasteByCategory.RUnlock()
	return calls
}

func (mock *logRepoMock) SavingsByCategory(ctx context.Context, userID uuid.UUID, from time.Time) (domain.CategoryBreakdown, error) {
	if mock.SavingsByCategoryFunc == nil {
		panic("logRepoMock.SavingsByCategoryFunc: method is nil but logRepo.SavingsByCategory was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		From:   from,
	}
	mock.lockSavingsByCategory.Lock()
	mock.calls.SavingsByCategory = append(mock.calls.SavingsByCategory, callInfo)
	mock.lockSavingsByCategory.Unlock()
	return mock.SavingsByCategoryFunc(ctx, userID, from)
}

func (mock *logRepoMock) SavingsByCategoryCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
	}
	mock.lockSavingsByCategory.RLock()
	calls = mock.calls.SavingsByCategory
	mock.lockSavingsByCategory.RUnlock()
	return calls
}
