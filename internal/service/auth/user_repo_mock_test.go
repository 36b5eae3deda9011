package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc         func(ctx context.Context, u domain.User) (*domain.User, error)
	UpdateProfileFunc  func(ctx context.Context, id uuid.UUID, name *string, timezone *string) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, id uuid.UUID, hash string) error
	TouchLastLoginFunc func(ctx context.Context, id uuid.UUID, at time.Time) error
	UpsertSettingsFunc func(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		Create []struct {
			Ctx context.Context
			U   domain.User
		}
		UpdateProfile []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Name     *string
			Timezone *string
		}
		UpdatePassword []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Hash string
		}
		TouchLastLogin []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
		UpsertSettings []struct {
			Ctx context.Context
			S   domain.UserSettings
		}
	}
	lockGetByID        sync.RWMutex
	lockGetByEmail     sync.RWMutex
	lockCreate         sync.RWMutex
	lockUpdateProfile  sync.RWMutex
	lockUpdatePassword sync.RWMutex
	lockTouchLastLogin sync.RWMutex
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

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockGetByEmail.RLock()
	calls = mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   domain.User
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
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

func (mock *userRepoMock) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc: method is nil but userRepo.UpdatePassword was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Hash string
	}{
		Ctx:  ctx,
		ID:   id,
		Hash: hash,
	}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, hash)
}

func (mock *userRepoMock) UpdatePasswordCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Hash string
} {
	var calls []struct {
		Ctx  context.Context
		ID   uuid.UUID
		Hash string
	}
	mock.lockUpdatePassword.RLock()
	calls = mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}

func (mock *userRepoMock) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.TouchLastLoginFunc == nil {
		panic("userRepoMock.TouchLastLoginFunc: method is nil but userRepo.TouchLastLogin was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{
		Ctx: ctx,
		ID:  id,
		At:  at,
	}
	mock.lockTouchLastLogin.Lock()
	mock.calls.TouchLastLogin = append(mock.calls.TouchLastLogin, callInfo)
	mock.lockTouchLastLogin.Unlock()
	return mock.TouchLastLoginFunc(ctx, id, at)
}

func (mock *userRepoMock) TouchLastLoginCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}
	mock.lockTouchLastLogin.RLock()
	calls = mock.calls.TouchLastLogin
	mock.lockTouchLastLogin.RUnlock()
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
