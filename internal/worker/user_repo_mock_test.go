package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ListAllFunc     func(ctx context.Context) ([]domain.User, error)
	GetSettingsFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)

	calls struct {
		ListAll []struct {
			Ctx context.Context
		}
		GetSettings []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListAll     sync.RWMutex
	lockGetSettings sync.RWMutex
}

func (mock *userRepoMock) ListAll(ctx context.Context) ([]domain.User, error) {
	if mock.ListAllFunc == nil {
		panic("userRepoMock.ListAllFunc: method is nil but userRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *userRepoMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListAll.RLock()
	calls = mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *userRepoMock) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	if mock.GetSettingsFunc == nil {
		panic("userRepoMock.GetSettingsFunc: method is nil but userRepo.GetSettings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetSettings.Lock()
	mock.calls.GetSettings = append(mock.calls.GetSettings, callInfo)
	mock.lockGetSettings.Unlock()
	return mock.GetSettingsFunc(ctx, userID)
}

func (mock *userRepoMock) GetSettingsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetSettings.RLock()
	calls = mock.calls.GetSettings
	mock.lockGetSettings.RUnlock()
	return calls
}
