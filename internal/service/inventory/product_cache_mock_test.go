package inventory

import (
	"context"
	"sync"
	"time"
)

var _ productCache = &productCacheMock{}

type productCacheMock struct {
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

func (mock *productCacheMock) Get(ctx context.Context, key string, dst any) (bool, error) {
	if mock.GetFunc == nil {
		panic("productCacheMock.GetFunc: method is nil but productCache.Get was just called")
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

func (mock *productCacheMock) GetCalls() []struct {
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

func (mock *productCacheMock) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if mock.SetFunc == nil {
		panic("productCacheMock.SetFunc: method is nil but productCache.Set was just called")
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

func (mock *productCacheMock) SetCalls() []struct {
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
