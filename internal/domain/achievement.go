package domain

import (
	"time"

	"github.com/google/uuid"
)

// AchievementMetric names the lifetime statistic an achievement measures.
type AchievementMetric string

const (
	MetricItemsSaved    AchievementMetric = "items_saved"
	MetricCurrentStreak AchievementMetric = "current_streak"
	MetricBestStreak    AchievementMetric = "best_streak"
	MetricMoneySaved    AchievementMetric = "money_saved"
	MetricRecipesTried  AchievementMetric = "recipes_tried"
	MetricFamilyMember  AchievementMetric = "family_member"
)

// Achievement is a static milestone definition.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Target      int
	Metric      AchievementMetric
}

// AchievementCatalog lists every achievement in display order.
var AchievementCatalog = []Achievement{
	{ID: "first_save", Name: "First Save", Description: "Saved your first item from waste", Icon: "🌱", Target: 1, Metric: MetricItemsSaved},
	{ID: "week_streak_7", Name: "Week Warrior", Description: "7-day streak without waste", Icon: "🔥", Target: 7, Metric: MetricCurrentStreak},
	{ID: "month_streak_30", Name: "Monthly Master", Description: "30-day streak without waste", Icon: "🏆", Target: 30, Metric: MetricBestStreak},
	{ID: "saved_10", Name: "Food Saver", Description: "Saved 10 items from waste", Icon: "⭐", Target: 10, Metric: MetricItemsSaved},
	{ID: "saved_50", Name: "Waste Fighter", Description: "Saved 50 items from waste", Icon: "🌟", Target: 50, Metric: MetricItemsSaved},
	{ID: "saved_100", Name: "Eco Champion", Description: "Saved 100 items from waste", Icon: "💫", Target: 100, Metric: MetricItemsSaved},
	{ID: "money_saved_50", Name: "Budget Conscious", Description: "Saved $50 worth of food", Icon: "💰", Target: 50, Metric: MetricMoneySaved},
	{ID: "money_saved_100", Name: "Smart Saver", Description: "Saved $100 worth of food", Icon: "💎", Target: 100, Metric: MetricMoneySaved},
	{ID: "recipes_tried_5", Name: "Kitchen Explorer", Description: "Tried 5 suggested recipes", Icon: "👨‍🍳", Target: 5, Metric: MetricRecipesTried},
	{ID: "family_member", Name: "Team Player", Description: "Joined a family group", Icon: "👨‍👩‍👧‍👦", Target: 1, Metric: MetricFamilyMember},
}

// AchievementByID looks up a catalog entry.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range AchievementCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// ProgressInput is everything achievement evaluation reads.
type ProgressInput struct {
	Summary  AnalyticsSummary
	InFamily bool
}

// Current returns the raw metric value for the achievement.
func (a Achievement) Current(in ProgressInput) float64 {
	switch a.Metric {
	case MetricItemsSaved:
		return float64(in.Summary.ItemsSaved)
	case MetricCurrentStreak:
		return float64(in.Summary.CurrentStreak)
	case MetricBestStreak:
		return float64(in.Summary.BestStreak)
	case MetricMoneySaved:
		return in.Summary.MoneySaved
	case MetricRecipesTried:
		return float64(in.Summary.RecipesTried)
	case MetricFamilyMember:
		if in.InFamily {
			return 1
		}
	}
	return 0
}

// Progress returns completion in [0, 1].
func (a Achievement) Progress(in ProgressInput) float64 {
	if a.Target <= 0 {
		return 0
	}
	return min(a.Current(in)/float64(a.Target), 1.0)
}

// Reached reports whether the target has been crossed.
func (a Achievement) Reached(in ProgressInput) bool {
	return a.Current(in) >= float64(a.Target)
}

// UserAchievement is an unlock record, unique per (UserID, AchievementID).
type UserAchievement struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	AchievementID string
	UnlockedAt    time.Time
}

// AchievementStatus is a catalog entry annotated with a user's progress.
type AchievementStatus struct {
	Achievement Achievement
	Unlocked    bool
	UnlockedAt  *time.Time
	Progress    float64
	Current     int
}
