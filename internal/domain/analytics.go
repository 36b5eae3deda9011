package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// AnalyticsDaily is the additive aggregate for one user on one local calendar date.
// There is at most one row per (UserID, Date).
type AnalyticsDaily struct {
	UserID           uuid.UUID
	Date             time.Time
	ItemsSaved       int
	MoneySaved       float64
	CO2PreventedKg   float64
	WaterSavedLiters float64
	WasteCount       int
	WasteCost        float64
	WasteCO2Kg       float64
	WasteWaterLiters float64
	RecipesTried     int
}

// Add merges delta into d. Used for in-memory aggregation, the database applies the same sums.
func (d *AnalyticsDaily) Add(delta AnalyticsDaily) {
	d.ItemsSaved += delta.ItemsSaved
	d.MoneySaved += delta.MoneySaved
	d.CO2PreventedKg += delta.CO2PreventedKg
	d.WaterSavedLiters += delta.WaterSavedLiters
	d.WasteCount += delta.WasteCount
	d.WasteCost += delta.WasteCost
	d.WasteCO2Kg += delta.WasteCO2Kg
	d.WasteWaterLiters += delta.WasteWaterLiters
	d.RecipesTried += delta.RecipesTried
}

// AnalyticsSummary is a user's lifetime totals.
type AnalyticsSummary struct {
	ItemsSaved       int
	MoneySaved       float64
	CO2PreventedKg   float64
	WaterSavedLiters float64
	CurrentStreak    int
	BestStreak       int
	WasteCount       int
	WasteCost        float64
	WasteCO2Kg       float64
	RecipesTried     int
}

// Summarize folds daily rows into lifetime totals and no-waste streaks.
// Streaks count recorded days, so days with no activity neither extend nor break them.
func Summarize(days []AnalyticsDaily) AnalyticsSummary {
	var s AnalyticsSummary
	if len(days) == 0 {
		return s
	}

	sorted := make([]AnalyticsDaily, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	run := 0
	for _, d := range sorted {
		s.ItemsSaved += d.ItemsSaved
		s.MoneySaved += d.MoneySaved
		s.CO2PreventedKg += d.CO2PreventedKg
		s.WaterSavedLiters += d.WaterSavedLiters
		s.WasteCount += d.WasteCount
		s.WasteCost += d.WasteCost
		s.WasteCO2Kg += d.WasteCO2Kg
		s.RecipesTried += d.RecipesTried

		if d.WasteCount == 0 {
			run++
			s.BestStreak = max(s.BestStreak, run)
		} else {
			run = 0
		}
	}
	s.CurrentStreak = run

	s.MoneySaved = RoundTo(s.MoneySaved, 2)
	s.CO2PreventedKg = RoundTo(s.CO2PreventedKg, 2)
	s.WasteCost = RoundTo(s.WasteCost, 2)
	s.WasteCO2Kg = RoundTo(s.WasteCO2Kg, 2)
	return s
}

// CategoryBreakdown maps a category to a count or amount for a reporting window.
type CategoryBreakdown map[Category]float64

// PeriodReport is the analytics view for a reporting window.
type PeriodReport struct {
	Period            AnalyticsPeriod
	StartDate         time.Time
	EndDate           time.Time
	Summary           AnalyticsSummary
	Daily             []AnalyticsDaily
	WasteByCategory   CategoryBreakdown
	SavingsByCategory CategoryBreakdown
}

// InsightType classifies an insight card.
type InsightType string

const (
	InsightTip         InsightType = "tip"
	InsightWarning     InsightType = "warning"
	InsightAchievement InsightType = "achievement"
	InsightTrend       InsightType = "trend"
)

// Insight is a personalised tip derived from usage.
type Insight struct {
	ID          uuid.UUID
	Type        InsightType
	Title       string
	Description string
	ActionText  *string
	ActionURL   *string
	CreatedAt   time.Time
}
