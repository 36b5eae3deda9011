package speech

import (
	"context"
	"sync"
)

var _ synthesizer = &synthesizerMock{}

type synthesizerMock struct {
	ConfiguredFunc func() bool
	SynthesizeFunc func(ctx context.Context, text string, voiceID string) ([]byte, error)

	calls struct {
		Configured []struct{}
		Synthesize []struct {
			Ctx     context.Context
			Text    string
			VoiceID string
		}
	}
	lockConfigured sync.RWMutex
	lockSynthesize sync.RWMutex
}

func (mock *synthesizerMock) Configured() bool {
	if mock.ConfiguredFunc == nil {
		panic("synthesizerMock.ConfiguredFunc: method is nil but synthesizer.Configured was just called")
	}
	mock.lockConfigured.Lock()
	mock.calls.Configured = append(mock.calls.Configured, struct{}{})
	mock.lockConfigured.Unlock()
	return mock.ConfiguredFunc()
}

func (mock *synthesizerMock) ConfiguredCalls() []struct{} {
	var calls []struct{}
	mock.lockConfigured.RLock()
	calls = mock.calls.Configured
	mock.lockConfigured.RUnlock()
	return calls
}

func (mock *synthesizerMock) Synthesize(ctx context.Context, text string, voiceID string) ([]byte, error) {
	if mock.SynthesizeFunc == nil {
		panic("synthesizerMock.SynthesizeFunc: method is nil but synthesizer.Synthesize was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Text    string
		VoiceID string
	}{
		Ctx:     ctx,
		Text:    text,
		VoiceID: voiceID,
	}
	mock.lockSynthesize.Lock()
	mock.calls.Synthesize = append(mock.calls.Synthesize, callInfo)
	mock.lockSynthesize.Unlock()
	return mock.SynthesizeFunc(ctx, text, voiceID)
}

func (mock *synthesizerMock) SynthesizeCalls() []struct {
	Ctx     context.Context
	Text    string
	VoiceID string
} {
	var calls []struct {
		Ctx     context.Context
		Text    string
		VoiceID string
	}
	mock.lockSynthesize.RLock()
	calls = mock.calls.Synthesize
	mock.lockSynthesize.RUnlock()
	return calls
}
