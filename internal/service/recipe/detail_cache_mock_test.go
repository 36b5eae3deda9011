package recipe

import (
	"context"
	"sync"
	"time"
)

var _ detailCache = &detailCacheMock{}

type detailCacheMock struct {
	GetFunc func(ctx context.Context, key string, dst any) (bool, error)
	SetFunc func(ctx context.Context, key string, v any, ttl time.Duration) error

	calls struct {
		Get []struct {
			Ctx context.Context
			Key string
			Dst any
		}
		Set []struct {
			Ctx context.Context
			Key string
			V   any
			Ttl time.Duration
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *detailCacheMock) Get(ctx context.Context, key string, dst any) (bool, error) {
	if mock.GetFunc == nil {
		panic("detailCacheMock.GetFunc: method is nil but detailCache.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
		Dst any
	}{
		Ctx: ctx,
		Key: key,
		Dst: dst,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key, dst)
}

func (mock *detailCacheMock) GetCalls() []struct {
	Ctx context.Context
	Key string
	Dst any
} {
	var calls []struct {
		Ctx context.Context
		Key string
		Dst any
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *detailCacheMock) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if mock.SetFunc == nil {
		panic("detailCacheMock.SetFunc: method is nil but detailCache.Set was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
		V   any
		Ttl time.Duration
	}{
		Ctx: ctx,
		Key: key,
		V:   v,
		Ttl: ttl,
	}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, key, v, ttl)
}

func (mock *detailCacheMock) SetCalls() []struct {
	Ctx context.Context
	Key string
	V   any
	Ttl time.Duration
} {
	var calls []struct {
		Ctx context.Context
		Key string
		V   any
		Ttl time.Duration
	}
	mock.lockSet.RLock()
	calls = mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
