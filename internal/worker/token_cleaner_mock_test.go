package worker

import (
	"context"
	"sync"
)

var _ tokenCleaner = &tokenCleanerMock{}

type tokenCleanerMock struct {
	CleanupExpiredTokensFunc func(ctx context.Context) (int, error)

	calls struct {
		CleanupExpiredTokens []struct {
			Ctx context.Context
		}
	}
	lockCleanupExpiredTokens sync.RWMutex
}

func (mock *tokenCleanerMock) CleanupExpiredTokens(ctx context.Context) (int, error) {
	if mock.CleanupExpiredTokensFunc == nil {
		panic("tokenCleanerMock.CleanupExpiredTokensFunc: method is nil but tokenCleaner.CleanupExpiredTokens was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCleanupExpiredTokens.Lock()
	mock.calls.CleanupExpiredTokens = append(mock.calls.CleanupExpiredTokens, callInfo)
	mock.lockCleanupExpiredTokens.Unlock()
	return mock.CleanupExpiredTokensFunc(ctx)
}

func (mock *tokenCleanerMock) CleanupExpiredTokensCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCleanupExpiredTokens.RLock()
	calls = mock.calls.CleanupExpiredTokens
	mock.lockCleanupExpiredTokens.RUnlock()
	return calls
}
