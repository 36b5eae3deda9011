package recipe

import (
	"context"
	"sync"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/provider"
)

var _ recipeProvider = &recipeProviderMock{}

type recipeProviderMock struct {
	ConfiguredFunc        func() bool
	FindByIngredientsFunc func(ctx context.Context, ingredients []string, number int) ([]provider.RecipeMatch, error)
	InformationFunc       func(ctx context.Context, id int) (*domain.RecipeDetail, error)

	calls struct {
		Configured []struct{}
		FindByIngredients []struct {
			Ctx         context.Context
			Ingredients []string
			Number      int
		}
		Information []struct {
			Ctx context.Context
			ID  int
		}
	}
	lockConfigured        sync.RWMutex
	lockFindByIngredients sync.RWMutex
	lockInformation       sync.RWMutex
}

func (mock *recipeProviderMock) Configured() bool {
	if mock.ConfiguredFunc == nil {
		panic("recipeProviderMock.ConfiguredFunc: method is nil but recipeProvider.Configured was just called")
	}
	mock.lockConfigured.Lock()
	mock.calls.Configured = append(mock.calls.Configured, struct{}{})
	mock.lockConfigured.Unlock()
	return mock.ConfiguredFunc()
}

func (mock *recipeProviderMock) ConfiguredCalls() []struct{} {
	var calls []struct{}
	mock.lockConfigured.RLock()
	calls = mock.calls.Configured
	mock.lockConfigured.RUnlock()
	return calls
}

func (mock *recipeProviderMock) FindByIngredients(ctx context.Context, ingredients []string, number int) ([]provider.RecipeMatch, error) {
	if mock.FindByIngredientsFunc == nil {
		panic("recipeProviderMock.FindByIngredientsFunc: method is nil but recipeProvider.FindByIngredients was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Ingredients []string
		Number      int
	}{
		Ctx:         ctx,
		Ingredients: ingredients,
		Number:      number,
	}
	mock.lockFindByIngredients.Lock()
	mock.calls.FindByIngredients = append(mock.calls.FindByIngredients, callInfo)
	mock.lockFindByIngredients.Unlock()
	return mock.FindByIngredientsFunc(ctx, ingredients, number)
}

func (mock *recipeProviderMock) FindByIngredientsCalls() []struct {
	Ctx         context.Context
	Ingredients []string
	Number      int
} {
	var calls []struct {
		Ctx         context.Context
		Ingredients []string
		Number      int
	}
	mock.lockFindByIngredients.RLock()
	calls = mock.calls.FindByIngredients
	mock.lockFindByIngredients.RUnlock()
	return calls
}

func (mock *recipeProviderMock) Information(ctx context.Context, id int) (*domain.RecipeDetail, error) {
	if mock.InformationFunc == nil {
		panic("recipeProviderMock.InformationFunc: method is nil but recipeProvider.Information was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockInformation.Lock()
	mock.calls.Information = append(mock.calls.Information, callInfo)
	mock.lockInformation.Unlock()
	return mock.InformationFunc(ctx, id)
}

func (mock *recipeProviderMock) InformationCalls() []struct {
	Ctx context.Context
	ID  int
} {
	var calls []struct {
		Ctx context.Context
		ID  int
	}
	mock.lockInformation.RLock()
	calls = mock.calls.Information
	mock.lockInformation.RUnlock()
	return calls
}
