package analytics

import (
	"context"
	"fmt"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// Summary returns the authenticated user's lifetime totals and streaks.
func (s *Service) Summary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.Summary: %w", err)
	}

	days, err := s.analytics.ListDaily(ctx, user.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("analytics.Summary: %w", err)
	}

	summary := domain.Summarize(days)
	return &summary, nil
}

// TimePeriod returns daily rows, totals and category breakdowns for a reporting window
// ending on the user's local today.
func (s *Service) TimePeriod(ctx context.Context, period domain.AnalyticsPeriod) (*domain.PeriodReport, error) {
	if period == "" {
		period = domain.PeriodWeek
	}
	if !period.IsValid() {
		return nil, domain.NewValidationError("period", "must be week, month, year or all")
	}

	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.TimePeriod: %w", err)
	}

	now := s.now()
	loc := user.Location()
	today := domain.LocalDate(now, loc)
	start := today.AddDate(0, 0, -period.Days())

	days, err := s.analytics.ListDaily(ctx, user.ID, &start)
	if err != nil {
		return nil, fmt.Errorf("analytics.TimePeriod daily: %w", err)
	}

	since := domain.DayStart(now, loc).AddDate(0, 0, -period.Days())
	waste, err := s.logs.WasteByCategory(ctx, user.ID, since)
	if err != nil {
		return nil, fmt.Errorf("analytics.TimePeriod waste: %w", err)
	}
	savings, err := s.logs.SavingsByCategory(ctx, user.ID, since)
	if err != nil {
		return nil, fmt.Errorf("analytics.TimePeriod savings: %w", err)
	}

	return &domain.PeriodReport{
		Period:            period,
		StartDate:         start,
		EndDate:           today,
		Summary:           domain.Summarize(days),
		Daily:             days,
		WasteByCategory:   waste,
		SavingsByCategory: savings,
	}, nil
}

// Achievements returns the full catalog annotated with the user's unlocks and progress.
func (s *Service) Achievements(ctx context.Context) ([]domain.AchievementStatus, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.Achievements: %w", err)
	}

	in, err := s.progressInput(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("analytics.Achievements: %w", err)
	}

	rows, err := s.analytics.ListAchievements(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("analytics.Achievements: %w", err)
	}
	unlocked := make(map[string]domain.UserAchievement, len(rows))
	for _, r := range rows {
		unlocked[r.AchievementID] = r
	}

	out := make([]domain.AchievementStatus, 0, len(domain.AchievementCatalog))
	for _, a := range domain.AchievementCatalog {
		st := domain.AchievementStatus{
			Achievement: a,
			Progress:    a.Progress(in),
			Current:     int(a.Current(in)),
		}
		if ua, ok := unlocked[a.ID]; ok {
			at := ua.UnlockedAt
			st.Unlocked = true
			st.UnlockedAt = &at
			st.Progress = 1
		}
		out = append(out, st)
	}
	return out, nil
}

// CheckAchievements re-evaluates the authenticated user's achievements and
// notifies about new unlocks.
func (s *Service) CheckAchievements(ctx context.Context) ([]domain.Achievement, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.CheckAchievements: %w", err)
	}

	unlocked, err := s.evaluate(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("analytics.CheckAchievements: %w", err)
	}
	s.NotifyUnlocked(ctx, user.ID, unlocked)
	return unlocked, nil
}

// CheckAllUsers re-evaluates achievements for every user and returns how many were unlocked.
// A failure for one user is logged and the sweep continues.
func (s *Service) CheckAllUsers(ctx context.Context) (int, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("analytics.CheckAllUsers: %w", err)
	}

	total := 0
	for i := range users {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		unlocked, err := s.evaluate(ctx, &users[i])
		if err != nil {
			s.log.WarnContext(ctx, "achievement sweep failed for user",
				"user_id", users[i].ID.String(), "error", err.Error())
			continue
		}
		s.NotifyUnlocked(ctx, users[i].ID, unlocked)
		total += len(unlocked)
	}
	return total, nil
}
