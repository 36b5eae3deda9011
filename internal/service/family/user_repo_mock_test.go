package family

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetFamilyFunc func(ctx context.Context, id uuid.UUID, familyID *uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SetFamily []struct {
			Ctx      context.Context
			ID       uuid.UUID
			FamilyID *uuid.UUID
		}
	}
	lockGetByID   sync.RWMutex
	lockSetFamily sync.RWMutex
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

func (mock *userRepoMock) SetFamily(ctx context.Context, id uuid.UUID, familyID *uuid.UUID) error {
	if mock.SetFamilyFunc == nil {
		panic("userRepoMock.SetFamilyFunc: method is nil but userRepo.SetFamily was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		FamilyID *uuid.UUID
	}{
		Ctx:      ctx,
		ID:       id,
		FamilyID: familyID,
	}
	mock.lockSetFamily.Lock()
	mock.calls.SetFamily = append(mock.calls.SetFamily, callInfo)
	mock.lockSetFamily.Unlock()
	return mock.SetFamilyFunc(ctx, id, familyID)
}

func (mock *userRepoMock) SetFamilyCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	FamilyID *uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		ID       uuid.UUID
		FamilyID *uuid.UUID
	}
	mock.lockSetFamily.RLock()
	calls = mock.calls.SetFamily
	mock.lockSetFamily.RUnlock()
	return calls
}
