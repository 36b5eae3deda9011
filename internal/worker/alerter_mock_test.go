package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ alerter = &alerterMock{}

type alerterMock struct {
	SendExpiryAlertFunc     func(ctx context.Context, userID uuid.UUID, items []domain.Item, today time.Time, withVoice bool) (*domain.Notification, error)
	SendEveningReminderFunc func(ctx context.Context, userID uuid.UUID, items []domain.Item) (*domain.Notification, error)

	calls struct {
		SendExpiryAlert []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			Items     []domain.Item
			Today     time.Time
			WithVoice bool
		}
		SendEveningReminder []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Items  []domain.Item
		}
	}
	lockSendExpiryAlert     sync.RWMutex
	lockSendEveningReminder sync.RWMutex
}

func (mock *alerterMock) SendExpiryAlert(ctx context.Context, userID uuid.UUID, items []domain.Item, today time.Time, withVoice bool) (*domain.Notification, error) {
	if mock.SendExpiryAlertFunc == nil {
		panic("alerterMock.SendExpiryAlertFunc: method is nil but alerter.SendExpiryAlert was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		Items     []domain.Item
		Today     time.Time
		WithVoice bool
	}{
		Ctx:       ctx,
		UserID:    userID,
		Items:     items,
		Today:     today,
		WithVoice: withVoice,
	}
	mock.lockSendExpiryAlert.Lock()
	mock.calls.SendExpiryAlert = append(mock.calls.SendExpiryAlert, callInfo)
	mock.lockSendExpiryAlert.Unlock()
	return mock.SendExpiryAlertFunc(ctx, userID, items, today, withVoice)
}

func (mock *alerterMock) SendExpiryAlertCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	Items     []domain.Item
	Today     time.Time
	WithVoice bool
} {
	var calls []struct {
		Ctx       context.Context
		UserID    uuid.UUID
		Items     []domain.Item
		Today     time.Time
		WithVoice bool
	}
	mock.lockSendExpiryAlert.RLock()
	calls = mock.calls.SendExpiryAlert
	mock.lockSendExpiryAlert.RUnlock()
	return calls
}

func (mock *alerterMock) SendEveningReminder(ctx context.Context, userID uuid.UUID, items []domain.Item) (*domain.Notification, error) {
	if mock.SendEveningReminderFunc == nil {
		panic("alerterMock.SendEveningReminderFunc: method is nil but alerter.SendEveningReminder was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Items  []domain.Item
	}{
		Ctx:    ctx,
		UserID: userID,
		Items:  items,
	}
	mock.lockSendEveningReminder.Lock()
	mock.calls.SendEveningReminder = append(mock.calls.SendEveningReminder, callInfo)
	mock.lockSendEveningReminder.Unlock()
	return mock.SendEveningReminderFunc(ctx, userID, items)
}

func (mock *alerterMock) SendEveningReminderCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Items  []domain.Item
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Items  []domain.Item
	}
	mock.lockSendEveningReminder.RLock()
	calls = mock.calls.SendEveningReminder
	mock.lockSendEveningReminder.RUnlock()
	return calls
}
