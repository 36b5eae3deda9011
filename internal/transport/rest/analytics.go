package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

type analyticsService interface {
	Summary(ctx context.Context) (*domain.AnalyticsSummary, error)
	TimePeriod(ctx context.Context, period domain.AnalyticsPeriod) (*domain.PeriodReport, error)
	Insights(ctx context.Context) ([]domain.Insight, error)
	Achievements(ctx context.Context) ([]domain.AchievementStatus, error)
	CheckAchievements(ctx context.Context) ([]domain.Achievement, error)
}

// AnalyticsHandler serves /api/analytics endpoints.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

type insightsResponse struct {
	Insights []insightResponse `json:"insights"`
}

type achievementsResponse struct {
	Achievements  []achievementResponse `json:"achievements"`
	UnlockedCount int                   `json:"unlocked_count"`
	TotalCount    int                   `json:"total_count"`
}

type unlockedResponse struct {
	NewlyUnlocked []achievementResponse `json:"newly_unlocked"`
}

// Summary handles GET /api/analytics/summary.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummary(*s))
}

// TimePeriod handles GET /api/analytics/time-period?period=week.
func (h *AnalyticsHandler) TimePeriod(w http.ResponseWriter, r *http.Request) {
	period := domain.PeriodWeek
	if v := r.URL.Query().Get("period"); v != "" {
		period = domain.AnalyticsPeriod(v)
	}

	rep, err := h.svc.TimePeriod(r.Context(), period)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPeriod(rep))
}

// Insights handles GET /api/analytics/insights.
func (h *AnalyticsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	is, err := h.svc.Insights(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, insightsResponse{Insights: toInsights(is)})
}

// Achievements handles GET /api/analytics/achievements.
func (h *AnalyticsHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	as, err := h.svc.Achievements(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := achievementsResponse{Achievements: toAchievementStatuses(as), TotalCount: len(as)}
	for _, a := range as {
		if a.Unlocked {
			resp.UnlockedCount++
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// CheckAchievements handles POST /api/analytics/check-achievements.
func (h *AnalyticsHandler) CheckAchievements(w http.ResponseWriter, r *http.Request) {
	unlocked, err := h.svc.CheckAchievements(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, unlockedResponse{NewlyUnlocked: toUnlocked(unlocked)})
}
