package inventory

import (
	"context"
	"sync"
)

var _ textReader = &textReaderMock{}

type textReaderMock struct {
	ConfiguredFunc  func() bool
	ExtractTextFunc func(ctx context.Context, image []byte) (string, error)

	calls struct {
		Configured []struct{}
		ExtractText []struct {
			Ctx   context.Context
			Image []byte
		}
	}
	lockConfigured  sync.RWMutex
	lockExtractText sync.RWMutex
}

func (mock *textReaderMock) Configured() bool {
	if mock.ConfiguredFunc == nil {
		panic("textReaderMock.ConfiguredFunc: method is nil but textReader.Configured was just called")
	}
	mock.lockConfigured.Lock()
	mock.calls.Configured = append(mock.calls.Configured, struct{}{})
	mock.lockConfigured.Unlock()
	return mock.ConfiguredFunc()
}

func (mock *textReaderMock) ConfiguredCalls() []struct{} {
	var calls []struct{}
	mock.lockConfigured.RLock()
	calls = mock.calls.Configured
	mock.lockConfigured.RUnlock()
	return calls
}

func (mock *textReaderMock) ExtractText(ctx context.Context, image []byte) (string, error) {
	if mock.ExtractTextFunc == nil {
		panic("textReaderMock.ExtractTextFunc: method is nil but textReader.ExtractText was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Image []byte
	}{
		Ctx:   ctx,
		Image: image,
	}
	mock.lockExtractText.Lock()
	mock.calls.ExtractText = append(mock.calls.ExtractText, callInfo)
	mock.lockExtractText.Unlock()
	return mock.ExtractTextFunc(ctx, image)
}

func (mock *textReaderMock) ExtractTextCalls() []struct {
	Ctx   context.Context
	Image []byte
} {
	var calls []struct {
		Ctx   context.Context
		Image []byte
	}
	mock.lockExtractText.RLock()
	calls = mock.calls.ExtractText
	mock.lockExtractText.RUnlock()
	return calls
}
