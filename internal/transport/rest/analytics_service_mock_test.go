package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var _ analyticsService = &analyticsServiceMock{}

type analyticsServiceMock struct {
	SummaryFunc           func(ctx context.Context) (*domain.AnalyticsSummary, error)
	TimePeriodFunc        func(ctx context.Context, period domain.AnalyticsPeriod) (*domain.PeriodReport, error)
	InsightsFunc          func(ctx context.Context) ([]domain.Insight, error)
	AchievementsFunc      func(ctx context.Context) ([]domain.AchievementStatus, error)
	CheckAchievementsFunc func(ctx context.Context) ([]domain.Achievement, error)

	calls struct {
		Summary []struct {
			Ctx context.Context
		}
		TimePeriod []struct {
			Ctx    context.Context
			Period domain.AnalyticsPeriod
		}
		Insights []struct {
			Ctx context.Context
		}
		Achievements []struct {
			Ctx context.Context
		}
		CheckAchievements []struct {
			Ctx context.Context
		}
	}
	lockSummary           sync.RWMutex
	lockTimePeriod        sync.RWMutex
	lockInsights          sync.RWMutex
	lockAchievements      sync.RWMutex
	lockCheckAchievements sync.RWMutex
}

func (mock *analyticsServiceMock) Summary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	if mock.SummaryFunc == nil {
		panic("analyticsServiceMock.SummaryFunc: method is nil but analyticsService.Summary was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx)
}

func (mock *analyticsServiceMock) SummaryCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockSummary.RLock()
	calls = mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) TimePeriod(ctx context.Context, period domain.AnalyticsPeriod) (*domain.PeriodReport, error) {
	if mock.TimePeriodFunc == nil {
		panic("analyticsServiceMock.TimePeriodFunc: method is nil but analyticsService.TimePeriod was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Period domain.AnalyticsPeriod
	}{
		Ctx:    ctx,
		Period: period,
	}
	mock.lockTimePeriod.Lock()
	mock.calls.TimePeriod = append(mock.calls.TimePeriod, callInfo)
	mock.lockTimePeriod.Unlock()
	return mock.TimePeriodFunc(ctx, period)
}

func (mock *analyticsServiceMock) TimePeriodCalls() []struct {
	Ctx    context.Context
	Period domain.AnalyticsPeriod
} {
	var calls []struct {
		Ctx    context.Context
		Period domain.AnalyticsPeriod
	}
	mock.lockTimePeriod.RLock()
	calls = mock.calls.TimePeriod
	mock.lockTimePeriod.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) Insights(ctx context.Context) ([]domain.Insight, error) {
	if mock.InsightsFunc == nil {
		panic("analyticsServiceMock.InsightsFunc: method is nil but analyticsService.Insights was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockInsights.Lock()
	mock.calls.Insights = append(mock.calls.Insights, callInfo)
	mock.lockInsights.Unlock()
	return mock.InsightsFunc(ctx)
}

func (mock *analyticsServiceMock) InsightsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockInsights.RLock()
	calls = mock.calls.Insights
	mock.lockInsights.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) Achievements(ctx context.Context) ([]domain.AchievementStatus, error) {
	if mock.AchievementsFunc == nil {
		panic("analyticsServiceMock.AchievementsFunc: method is nil but analyticsService.Achievements was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockAchievements.Lock()
	mock.calls.Achievements = append(mock.calls.Achievements, callInfo)
	mock.lockAchievements.Unlock()
	return mock.AchievementsFunc(ctx)
}

func (mock *analyticsServiceMock) AchievementsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockAchievements.RLock()
	calls = mock.calls.Achievements
	mock.lockAchievements.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) CheckAchievements(ctx context.Context) ([]domain.Achievement, error) {
	if mock.CheckAchievementsFunc == nil {
		panic("analyticsServiceMock.CheckAchievementsFunc: method is nil but analyticsService.CheckAchievements was just called")
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

func (mock *analyticsServiceMock) CheckAchievementsCalls() []struct {
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
