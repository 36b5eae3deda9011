package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/service/notification"
)

var _ notificationService = &notificationServiceMock{}

type notificationServiceMock struct {
	ListFunc           func(ctx context.Context, in notification.ListInput) (*notification.ListResult, error)
	DismissFunc        func(ctx context.Context, in notification.DismissInput) (int64, error)
	DismissAllFunc     func(ctx context.Context) (int64, error)
	SnoozeFunc         func(ctx context.Context, in notification.SnoozeInput) (*time.Time, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	SubscribeFunc      func(ctx context.Context, in notification.SubscribeInput) (*domain.PushSubscription, error)
	UnsubscribeFunc    func(ctx context.Context, endpoint string) error
	VAPIDPublicKeyFunc func() (string, error)

	calls struct {
		List []struct {
			Ctx context.Context
			In  notification.ListInput
		}
		Dismiss []struct {
			Ctx context.Context
			In  notification.DismissInput
		}
		DismissAll []struct {
			Ctx context.Context
		}
		Snooze []struct {
			Ctx context.Context
			In  notification.SnoozeInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Subscribe []struct {
			Ctx context.Context
			In  notification.SubscribeInput
		}
		Unsubscribe []struct {
			Ctx      context.Context
			Endpoint string
		}
		VAPIDPublicKey []struct{}
	}
	lockList           sync.RWMutex
	lockDismiss        sync.RWMutex
	lockDismissAll     sync.RWMutex
	lockSnooze         sync.RWMutex
	lockDelete         sync.RWMutex
	lockSubscribe      sync.RWMutex
	lockUnsubscribe    sync.RWMutex
	lockVAPIDPublicKey sync.RWMutex
}

func (mock *notificationServiceMock) List(ctx context.Context, in notification.ListInput) (*notification.ListResult, error) {
	if mock.ListFunc == nil {
		panic("notificationServiceMock.ListFunc: method is nil but notificationService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  notification.ListInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, in)
}

func (mock *notificationServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  notification.ListInput
} {
	var calls []struct {
		Ctx context.Context
		In  notification.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *notificationServiceMock) Dismiss(ctx context.Context, in notification.DismissInput) (int64, error) {
	if mock.DismissFunc == nil {
		panic("notificationServiceMock.DismissFunc: method is nil but notificationService.Dismiss was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  notification.DismissInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockDismiss.Lock()
	mock.calls.Dismiss = append(mock.calls.Dismiss, callInfo)
	mock.lockDismiss.Unlock()
	return mock.DismissFunc(ctx, in)
}

func (mock *notificationServiceMock) DismissCalls() []struct {
	Ctx context.Context
	In  notification.DismissInput
} {
	var calls []struct {
		Ctx context.Context
		In  notification.DismissInput
	}
	mock.lockDismiss.RLock()
	calls = mock.calls.Dismiss
	mock.lockDismiss.RUnlock()
	return calls
}

func (mock *notificationServiceMock) DismissAll(ctx context.Context) (int64, error) {
	if mock.DismissAllFunc == nil {
		panic("notificationServiceMock.DismissAllFunc: method is nil but notificationService.DismissAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDismissAll.Lock()
	mock.calls.DismissAll = append(mock.calls.DismissAll, callInfo)
	mock.lockDismissAll.Unlock()
	return mock.DismissAllFunc(ctx)
}

func (mock *notificationServiceMock) DismissAllCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockDismissAll.RLock()
	calls = mock.calls.DismissAll
	mock.lockDismissAll.RUnlock()
	return calls
}

func (mock *notificationServiceMock) Snooze(ctx context.Context, in notification.SnoozeInput) (*time.Time, error) {
	if mock.SnoozeFunc == nil {
		panic("notificationServiceMock.SnoozeFunc: method is nil but notificationService.Snooze was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  notification.SnoozeInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockSnooze.Lock()
	mock.calls.Snooze = append(mock.calls.Snooze, callInfo)
	mock.lockSnooze.Unlock()
	return mock.SnoozeFunc(ctx, in)
}

func (mock *notificationServiceMock) SnoozeCalls() []struct {
	Ctx context.Context
	In  notification.SnoozeInput
} {
	var calls []struct {
		Ctx context.Context
		In  notification.SnoozeInput
	}
	mock.lockSnooze.RLock()
	calls = mock.calls.Snooze
	mock.lockSnooze.RUnlock()
	return calls
}

func (mock *notificationServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("notificationServiceMock.DeleteFunc: method is nil but notificationService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *notificationServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *notificationServiceMock) Subscribe(ctx context.Context, in notification.SubscribeInput) (*domain.PushSubscription, error) {
	if mock.SubscribeFunc == nil {
		panic("notificationServiceMock.SubscribeFunc: method is nil but notificationService.Subscribe was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  notification.SubscribeInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockSubscribe.Lock()
	mock.calls.Subscribe = append(mock.calls.Subscribe, callInfo)
	mock.lockSubscribe.Unlock()
	return mock.SubscribeFunc(ctx, in)
}

func (mock *notificationServiceMock) SubscribeCalls() []struct {
	Ctx context.Context
	In  notification.SubscribeInput
} {
	var calls []struct {
		Ctx context.Context
		In  notification.SubscribeInput
	}
	mock.lockSubscribe.RLock()
	calls = mock.calls.Subscribe
	mock.lockSubscribe.RUnlock()
	return calls
}

func (mock *notificationServiceMock) Unsubscribe(ctx context.Context, endpoint string) error {
	if mock.UnsubscribeFunc == nil {
		panic("notificationServiceMock.UnsubscribeFunc: method is nil but notificationService.Unsubscribe was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Endpoint string
	}{
		Ctx:      ctx,
		Endpoint: endpoint,
	}
	mock.lockUnsubscribe.Lock()
	mock.calls.Unsubscribe = append(mock.calls.Unsubscribe, callInfo)
	mock.lockUnsubscribe.Unlock()
	return mock.UnsubscribeFunc(ctx, endpoint)
}

func (mock *notificationServiceMock) UnsubscribeCalls() []struct {
	Ctx      context.Context
	Endpoint string
} {
	var calls []struct {
		Ctx      context.Context
		Endpoint string
	}
	mock.lockUnsubscribe.RLock()
	calls = mock.calls.Unsubscribe
	mock.lockUnsubscribe.RUnlock()
	return calls
}

func (mock *notificationServiceMock) VAPIDPublicKey() (string, error) {
	if mock.VAPIDPublicKeyFunc == nil {
		panic("notificationServiceMock.VAPIDPublicKeyFunc: method is nil but notificationService.VAPIDPublicKey was just called")
	}
	mock.lockVAPIDPublicKey.Lock()
	mock.calls.VAPIDPublicKey = append(mock.calls.VAPIDPublicKey, struct{}{})
	mock.lockVAPIDPublicKey.Unlock()
	return mock.VAPIDPublicKeyFunc()
}

func (mock *notificationServiceMock) VAPIDPublicKeyCalls() []struct{} {
	var calls []struct{}
	mock.lockVAPIDPublicKey.RLock()
	calls = mock.calls.VAPIDPublicKey
	mock.lockVAPIDPublicKey.RUnlock()
	return calls
}
