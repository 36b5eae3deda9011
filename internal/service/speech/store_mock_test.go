package speech

import (
	"context"
	"sync"
)

var _ store = &storeMock{}

type storeMock struct {
	PutFunc    func(ctx context.Context, key string, data []byte, contentType string) (string, error)
	ExistsFunc func(ctx context.Context, key string) (bool, error)
	URLFunc    func(key string) string

	calls struct {
		Put []struct {
			Ctx         context.Context
			Key         string
			Data        []byte
			ContentType string
		}
		Exists []struct {
			Ctx context.Context
			Key string
		}
		URL []struct {
			Key string
		}
	}
	lockPut    sync.RWMutex
	lockExists sync.RWMutex
	lockURL    sync.RWMutex
}

func (mock *storeMock) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if mock.PutFunc == nil {
		panic("storeMock.PutFunc: method is nil but store.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		Data        []byte
		ContentType string
	}{
		Ctx:         ctx,
		Key:         key,
		Data:        data,
		ContentType: contentType,
	}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, data, contentType)
}

func (mock *storeMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	Data        []byte
	ContentType string
} {
	var calls []struct {
		Ctx         context.Context
		Key         string
		Data        []byte
		ContentType string
	}
	mock.lockPut.RLock()
	calls = mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *storeMock) Exists(ctx context.Context, key string) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("storeMock.ExistsFunc: method is nil but store.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, key)
}

func (mock *storeMock) ExistsCalls() []struct {
	Ctx context.Context
	Key string
} {
	var calls []struct {
		Ctx context.Context
		Key string
	}
	mock.lockExists.RLock()
	calls = mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *storeMock) URL(key string) string {
	if mock.URLFunc == nil {
		panic("storeMock.URLFunc: method is nil but store.URL was just called")
	}
	callInfo := struct {
		Key string
	}{
		Key: key,
	}
	mock.lockURL.Lock()
	mock.calls.URL = append(mock.calls.URL, callInfo)
	mock.lockURL.Unlock()
	return mock.URLFunc(key)
}

func (mock *storeMock) URLCalls() []struct {
	Key string
} {
	var calls []struct {
		Key string
	}
	mock.lockURL.RLock()
	calls = mock.calls.URL
	mock.lockURL.RUnlock()
	return calls
}
