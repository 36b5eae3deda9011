package family

import (
	"context"
	"sync"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ achievementChecker = &achievementCheckerMock{}

type achievementCheckerMock struct {
	CheckAchievementsFunc func(ctx context.Context) ([]domain.Achievement, error)

	calls struct {
		CheckAchievements []struct {
			Ctx context.Context
		}
	}
	lockCheckAchievements sync.RWMutex
}

func (mock *achievementCheckerMock) CheckAchievements(ctx context.Context) ([]domain.Achievement, error) {
	if mock.CheckAchievementsFunc == nil {
		panic("achievementCheckerMock.CheckAchievementsFunc: method is nil but achievementChecker.CheckAchievements was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCheckAchievements.Lock()
	mock.calls.CheckAchievements = append(mock.calls.CheckAchievements, callInfo)
	mock.lockCheckAchievements.Unlock()
	return mock.CheckAchievementsFunc(ctx)
}

func (mock *achievementCheckerMock) CheckAchievementsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCheckAchievements.RLock()
	calls = mock.calls.CheckAchievements
	mock.lockCheckAchievements.RUnlock()
	return calls
}
