package worker

import (
	"context"
	"sync"
)

var _ achievementChecker = &achievementCheckerMock{}

type achievementCheckerMock struct {
	CheckAllUsersFunc func(ctx context.Context) (int, error)

	calls struct {
		CheckAllUsers []struct {
			Ctx context.Context
		}
	}
	lockCheckAllUsers sync.RWMutex
}

func (mock *achievementCheckerMock) CheckAllUsers(ctx context.Context) (int, error) {
	if mock.CheckAllUsersFunc == nil {
		panic("achievementCheckerMock.CheckAllUsersFunc: method is nil but achievementChecker.CheckAllUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCheckAllUsers.Lock()
	mock.calls.CheckAllUsers = append(mock.calls.CheckAllUsers, callInfo)
	mock.lockCheckAllUsers.Unlock()
	return mock.CheckAllUsersFunc(ctx)
}

func (mock *achievementCheckerMock) CheckAllUsersCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCheckAllUsers.RLock()
	calls = mock.calls.CheckAllUsers
	mock.lockCheckAllUsers.RUnlock()
	return calls
}
