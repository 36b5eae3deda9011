package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ analyticsRepo = &analyticsRepoMock{}

type analyticsRepoMock struct {
	AddDailyFunc          func(ctx context.Context, delta domain.AnalyticsDaily) error
	ListDailyFunc         func(ctx context.Context, userID uuid.UUID, from *time.Time) ([]domain.AnalyticsDaily, error)
	UnlockAchievementFunc func(ctx context.Context, userID uuid.UUID, achievementID string) (*domain.UserAchievement, bool, error)
	ListAchievementsFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.UserAchievement, error)

	calls struct {
		AddDaily []struct {
			Ctx   context.Context
			Delta domain.AnalyticsDaily
		}
		ListDaily []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   *time.Time
		}
		UnlockAchievement []struct {
			Ctx           context.Context
			UserID        uuid.UUID
			AchievementID string
		}
		ListAchievements []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockAddDaily          sync.RWMutex
	lockListDaily         sync.RWMutex
	lockUnlockAchievement sync.RWMutex
	lockListAchievements  sync.RWMutex
}

func (mock *analyticsRepoMock) AddDaily(ctx context.Context, delta domain.AnalyticsDaily) error {
	if mock.AddDailyFunc == nil {
		panic("analyticsRepoMock.AddDailyFunc: method is nil but analyticsRepo.AddDaily was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Delta domain.AnalyticsDaily
	}{
		Ctx:   ctx,
		Delta: delta,
	}
	mock.lockAddDaily.Lock()
	mock.calls.AddDaily = append(mock.calls.AddDaily, callInfo)
	mock.lockAddDaily.Unlock()
	return mock.AddDailyFunc(ctx, delta)
}

func (mock *analyticsRepoMock) AddDailyCalls() []struct {
	Ctx   context.Context
	Delta domain.AnalyticsDaily
} {
	var calls []struct {
		Ctx   context.Context
		Delta domain.AnalyticsDaily
	}
	mock.lockAddDaily.RLock()
	calls = mock.calls.AddDaily
	mock.lockAddDaily.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) ListDaily(ctx context.Context, userID uuid.UUID, from *time.Time) ([]domain.AnalyticsDaily, error) {
	if mock.ListDailyFunc == nil {
		panic("analyticsRepoMock.ListDailyFunc: method is nil but analyticsRepo.ListDaily was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   *time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		From:   from,
	}
	mock.lockListDaily.Lock()
	mock.calls.ListDaily = append(mock.calls.ListDaily, callInfo)
	mock.lockListDaily.Unlock()
	return mock.ListDailyFunc(ctx, userID, from)
}

func (mock *analyticsRepoMock) ListDailyCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   *time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   *time.Time
	}
	mock.lockListDaily.RLock()
	calls = mock.calls.ListDaily
	mock.lockListDaily.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) UnlockAchievement(ctx context.Context, userID uuid.UUID, achievementID string) (*domain.UserAchievement, bool, error) {
	if mock.UnlockAchievementFunc == nil {
		panic("analyticsRepoMock.UnlockAchievementFunc: method is nil but analyticsRepo.UnlockAchievement was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		UserID        uuid.UUID
		AchievementID string
	}{
		Ctx:           ctx,
		UserID:        userID,
		AchievementID: achievementID,
	}
	mock.lockUnlockAchievement.Lock()
	mock.calls.UnlockAchievement = append(mock.calls.UnlockAchievement, callInfo)
	mock.lockUnlockAchievement.Unlock()
	return mock.UnlockAchievementFunc(ctx, userID, achievementID)
}

func (mock *analyticsRepoMock) UnlockAchievementCalls() []struct {
	Ctx           context.Context
	UserID        uuid.UUID
	AchievementID string
} {
	var calls []struct {
		Ctx           context.Context
		UserID        uuid.UUID
		AchievementID string
	}
	mock.lockUnlockAchievement.RLock()
	calls = mock.calls.UnlockAchievement
	mock.lockUnlockAchievement.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) ListAchievements(ctx context.Context, userID uuid.UUID) ([]domain.UserAchievement, error) {
	if mock.ListAchievementsFunc == nil {
		panic("analyticsRepoMock.ListAchievementsFunc: method is nil but analyticsRepo.ListAchievements was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListAchievements.Lock()
	mock.calls.ListAchievements = append(mock.calls.ListAchievements, callInfo)
	mock.lockListAchievements.Unlock()
	return mock.ListAchievementsFunc(ctx, userID)
}

func (mock *analyticsRepoMock) ListAchievementsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListAchievements.RLock()
	calls = mock.calls.ListAchievements
	mock.lockListAchievements.RUnlock()
	return calls
}
