package family

import (
	"context"
	"sync"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	DeliverFunc func(ctx context.Context, n domain.Notification, voiceText string) (*domain.Notification, error)

	calls struct {
		Deliver []struct {
			Ctx       context.Context
			N         domain.Notification
			VoiceText string
		}
	}
	lockDeliver sync.RWMutex
}

func (mock *notifierMock) Deliver(ctx context.Context, n domain.Notification, voiceText string) (*domain.Notification, error) {
	if mock.DeliverFunc == nil {
		panic("notifierMock.DeliverFunc: method is nil but notifier.Deliver was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		N         domain.Notification
		VoiceText string
	}{
		Ctx:       ctx,
		N:         n,
		VoiceText: voiceText,
	}
	mock.lockDeliver.Lock()
	mock.calls.Deliver = append(mock.calls.Deliver, callInfo)
	mock.lockDeliver.Unlock()
	return mock.DeliverFunc(ctx, n, voiceText)
}

func (mock *notifierMock) DeliverCalls() []struct {
	Ctx       context.Context
	N         domain.Notification
	VoiceText string
} {
	var calls []struct {
		Ctx       context.Context
		N         domain.Notification
		VoiceText string
	}
	mock.lockDeliver.RLock()
	calls = mock.calls.Deliver
	mock.lockDeliver.RUnlock()
	return calls
}
