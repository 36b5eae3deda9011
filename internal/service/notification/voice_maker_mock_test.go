package notification

import (
	"context"
	"sync"
)

var _ voiceMaker = &voiceMakerMock{}

type voiceMakerMock struct {
	VoiceFunc func(ctx context.Context, text string) (*string, error)

	calls struct {
		Voice []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockVoice sync.RWMutex
}

func (mock *voiceMakerMock) Voice(ctx context.Context, text string) (*string, error) {
	if mock.VoiceFunc == nil {
		panic("voiceMakerMock.VoiceFunc: method is nil but voiceMaker.Voice was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{
		Ctx:  ctx,
		Text: text,
	}
	mock.lockVoice.Lock()
	mock.calls.Voice = append(mock.calls.Voice, callInfo)
	mock.lockVoice.Unlock()
	return mock.VoiceFunc(ctx, text)
}

func (mock *voiceMakerMock) VoiceCalls() []struct {
	Ctx  context.Context
	Text string
} {
	var calls []struct {
		Ctx  context.Context
		Text string
	}
	mock.lockVoice.RLock()
	calls = mock.calls.Voice
	mock.lockVoice.RUnlock()
	return calls
}
