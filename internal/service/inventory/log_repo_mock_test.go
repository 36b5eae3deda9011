package inventory

import (
	"context"
	"sync"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateConsumptionFunc func(ctx context.Context, l domain.ConsumptionLog) (*domain.ConsumptionLog, error)
	CreateWasteFunc       func(ctx context.Context, l domain.WasteLog) (*domain.WasteLog, error)

	calls struct {
		CreateConsumption []struct {
			Ctx context.Context
			L   domain.ConsumptionLog
		}
		CreateWaste []struct {
			Ctx context.Context
			L   domain.WasteLog
		}
	}
	lockCreateConsumption sync.RWMutex
	lockCreateWaste       sync.RWMutex
}

func (mock *logRepoMock) CreateConsumption(ctx context.Context, l domain.ConsumptionLog) (*domain.ConsumptionLog, error) {
	if mock.CreateConsumptionFunc == nil {
		panic("logRepoMock.CreateConsumptionFunc: method is nil but logRepo.CreateConsumption was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.ConsumptionLog
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockCreateConsumption.Lock()
	mock.calls.CreateConsumption = append(mock.calls.CreateConsumption, callInfo)
	mock.lockCreateConsumption.Unlock()
	return mock.CreateConsumptionFunc(ctx, l)
}

func (mock *logRepoMock) CreateConsumptionCalls() []struct {
	Ctx context.Context
	L   domain.ConsumptionLog
} {
	var calls []struct {
		Ctx context.Context
		L   domain.ConsumptionLog
	}
	mock.lockCreateConsumption.RLock()
	calls = mock.calls.CreateConsumption
	mock.lockCreateConsumption.RUnlock()
	return calls
}

func (mock *logRepoMock) CreateWaste(ctx context.Context, l domain.WasteLog) (*domain.WasteLog, error) {
	if mock.CreateWasteFunc == nil {
		panic("logRepoMock.CreateWasteFunc: method is nil but logRepo.CreateWaste was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.WasteLog
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockCreateWaste.Lock()
	mock.calls.CreateWaste = append(mock.calls.CreateWaste, callInfo)
	mock.lockCreateWaste.Unlock()
	return mock.CreateWasteFunc(ctx, l)
}

func (mock *logRepoMock) CreateWasteCalls() []struct {
	Ctx context.Context
	L   domain.WasteLog
} {
	var calls []struct {
		Ctx context.Context
		L   domain.WasteLog
	}
	mock.lockCreateWaste.RLock()
	calls = mock.calls.CreateWaste
	mock.lockCreateWaste.RUnlock()
	return calls
}
