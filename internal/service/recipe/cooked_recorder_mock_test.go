package recipe

import (
	"context"
	"sync"
)

var _ cookedRecorder = &cookedRecorderMock{}

type cookedRecorderMock struct {
	RecordRecipeCookedFunc func(ctx context.Context) error

	calls struct {
		RecordRecipeCooked []struct {
			Ctx context.Context
		}
	}
	lockRecordRecipeCooked sync.RWMutex
}

func (mock *cookedRecorderMock) RecordRecipeCooked(ctx context.Context) error {
	if mock.RecordRecipeCookedFunc == nil {
		panic("cookedRecorderMock.RecordRecipeCookedFunc: method is nil but cookedRecorder.RecordRecipeCooked was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockRecordRecipeCooked.Lock()
	mock.calls.RecordRecipeCooked = append(mock.calls.RecordRecipeCooked, callInfo)
	mock.lockRecordRecipeCooked.Unlock()
	return mock.RecordRecipeCookedFunc(ctx)
}

func (mock *cookedRecorderMock) RecordRecipeCookedCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockRecordRecipeCooked.RLock()
	calls = mock.calls.RecordRecipeCooked
	mock.lockRecordRecipeCooked.RUnlock()
	return calls
}
