package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfileFunc  func(ctx context.Context, id uuid.UUID, name *string, timezone *string) (*domain.User, error)
	GetSettingsFunc    func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpsertSettingsFunc func(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateProfile []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Name     *string
			Timezone *string
		}
		GetSettings []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpsertSettings []struct {
			Ctx context.Context
			S   domain.UserSettings
		}
	}
	lockGetByID        sync.RWMutex
	lockUpdateProfile  sync.RWMutex
	lockGetSettings    sync.RWMutex
	lockUpsertSettings sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, name *string, timezone *string) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Name     *string
		Timezone *string
	}{
		Ctx:      ctx,
		ID:       id,
		Name:     name,
		Timezone: timezone,
	}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, name, timezone)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Name     *string
	Timezone *string
} {
	var calls []struct {
		Ctx      context.Context
		ID       uuid.UUID
		Name     *string
		Timezone *string
	}
	mock.lockUpdateProfile.RLock()
	calls = mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
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

func (mock *userRepoMock) UpsertSettings(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error) {
	if mock.UpsertSettingsFunc == nil {
		panic("userRepoMock.UpsertSettingsFunc: method is nil but userRepo.UpsertSettings was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.UserSettings
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockUpsertSettings.Lock()
	mock.calls.UpsertSettings = append(mock.calls.UpsertSettings, callInfo)
	mock.lockUpsertSettings.Unlock()
	return mock.UpsertSettingsFunc(ctx, s)
}

func (mock *userRepoMock) UpsertSettingsCalls() []struct {
	Ctx context.Context
	S   domain.UserSettings
} {
	var calls []struct {
		Ctx context.Context
		S   domain.UserSettings
	}
	mock.lockUpsertSettings.RLock()
	calls = mock.calls.UpsertSettings
	mock.lockUpsertSettings.RUnlock()
	return calls
}
