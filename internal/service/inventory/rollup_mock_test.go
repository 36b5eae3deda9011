package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ rollup = &rollupMock{}

type rollupMock struct {
	RecordConsumptionFunc func(ctx context.Context, user *domain.User, item *domain.Item, quantity float64, at time.Time) ([]domain.Achievement, error)
	RecordWasteFunc       func(ctx context.Context, user *domain.User, wl domain.WasteLog) ([]domain.Achievement, error)
	NotifyUnlockedFunc    func(ctx context.Context, userID uuid.UUID, unlocked []domain.Achievement)

	calls struct {
		RecordConsumption []struct {
			Ctx      context.Context
			User     *domain.User
			Item     *domain.Item
			Quantity float64
			At       time.Time
		}
		RecordWaste []struct {
			Ctx  context.Context
			User *domain.User
			Wl   domain.WasteLog
		}
		NotifyUnlocked []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Unlocked []domain.Achievement
		}
	}
	lockRecordConsumption sync.RWMutex
	lockRecordWaste       sync.RWMutex
	lockNotifyUnlocked    sync.RWMutex
}

func (mock *rollupMock) RecordConsumption(ctx context.Context, user *domain.User, item *domain.Item, quantity float64, at time.Time) ([]domain.Achievement, error) {
	if mock.RecordConsumptionFunc == nil {
		panic("rollupMock.RecordConsumptionFunc: method is nil but rollup.RecordConsumption was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		User     *domain.User
		Item     *domain.Item
		Quantity float64
		At       time.Time
	}{
		Ctx:      ctx,
		User:     user,
		Item:     item,
		Quantity: quantity,
		At:       at,
	}
	mock.lockRecordConsumption.Lock()
	mock.calls.RecordConsumption = append(mock.calls.RecordConsumption, callInfo)
	mock.lockRecordConsumption.Unlock()
	return mock.RecordConsumptionFunc(ctx, user, item, quantity, at)
}

func (mock *rollupMock) RecordConsumptionCalls() []struct {
	Ctx      context.Context
	User     *domain.User
	Item     *domain.Item
	Quantity float64
	At       time.Time
} {
	var calls []struct {
		Ctx      context.Context
		User     *domain.User
		Item     *domain.Item
		Quantity float64
		At       time.Time
	}
	mock.lockRecordConsumption.RLock()
	calls = mock.calls.RecordConsumption
	mock.lockRecordConsumption.RUnlock()
	return calls
}

func (mock *rollupMock) RecordWaste(ctx context.Context, user *domain.User, wl domain.WasteLog) ([]domain.Achievement, error) {
	if mock.RecordWasteFunc == nil {
		panic("rollupMock.RecordWasteFunc: method is nil but rollup.RecordWaste was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
		Wl   domain.WasteLog
	}{
		Ctx:  ctx,
		User: user,
		Wl:   wl,
	}
	mock.lockRecordWaste.Lock()
	mock.calls.RecordWaste = append(mock.calls.RecordWaste, callInfo)
	mock.lockRecordWaste.Unlock()
	return mock.RecordWasteFunc(ctx, user, wl)
}

func (mock *rollupMock) RecordWasteCalls() []struct {
	Ctx  context.Context
	User *domain.User
	Wl   domain.WasteLog
} {
	var calls []struct {
		Ctx  context.Context
		User *domain.User
		Wl   domain.WasteLog
	}
	mock.lockRecordWaste.RLock()
	calls = mock.calls.RecordWaste
	mock.lockRecordWaste.RUnlock()
	return calls
}

func (mock *rollupMock) NotifyUnlocked(ctx context.Context, userID uuid.UUID, unlocked []domain.Achievement) {
	if mock.NotifyUnlockedFunc == nil {
		panic("rollupMock.NotifyUnlockedFunc: method is nil but rollup.NotifyUnlocked was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Unlocked []domain.Achievement
	}{
		Ctx:      ctx,
		UserID:   userID,
		Unlocked: unlocked,
	}
	mock.lockNotifyUnlocked.Lock()
	mock.calls.NotifyUnlocked = append(mock.calls.NotifyUnlocked, callInfo)
	mock.lockNotifyUnlocked.Unlock()
	mock.NotifyUnlockedFunc(ctx, userID, unlocked)
}

func (mock *rollupMock) NotifyUnlockedCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Unlocked []domain.Achievement
} {
	var calls []struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Unlocked []domain.Achievement
	}
	mock.lockNotifyUnlocked.RLock()
	calls = mock.calls.NotifyUnlocked
	mock.lockNotifyUnlocked.RUnlock()
	return calls
}
