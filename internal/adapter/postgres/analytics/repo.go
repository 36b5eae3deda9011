// Package analytics implements daily aggregates and achievement unlocks using PostgreSQL.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// Repo provides analytics persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// AddDaily adds delta to the (user, date) row, creating it on first use.
// Concurrent calls for the same key are serialised by the upsert itself.
func (r *Repo) AddDaily(ctx context.Context, delta domain.AnalyticsDaily) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO analytics_daily (user_id, date, items_saved, money_saved, co2_prevented_kg, water_saved_liters,
		                              waste_count, waste_cost, waste_co2_kg, waste_water_liters, recipes_tried)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (user_id, date) DO UPDATE SET
		     items_saved        = analytics_daily.items_saved + EXCLUDED.items_saved,
		     money_saved        = analytics_daily.money_saved + EXCLUDED.money_saved,
		     co2_prevented_kg   = analytics_daily.co2_prevented_kg + EXCLUDED.co2_prevented_kg,
		     water_saved_liters = analytics_daily.water_saved_liters + EXCLUDED.water_saved_liters,
		     waste_count        = analytics_daily.waste_count + EXCLUDED.waste_count,
		     waste_cost         = analytics_daily.waste_cost + EXCLUDED.waste_cost,
		     waste_co2_kg       = analytics_daily.waste_co2_kg + EXCLUDED.waste_co2_kg,
		     waste_water_liters = analytics_daily.waste_water_liters + EXCLUDED.waste_water_liters,
		     recipes_tried      = analytics_daily.recipes_tried + EXCLUDED.recipes_tried`,
		delta.UserID, domain.DateOf(delta.Date),
		delta.ItemsSaved, delta.MoneySaved, delta.CO2PreventedKg, delta.WaterSavedLiters,
		delta.WasteCount, delta.WasteCost, delta.WasteCO2Kg, delta.WasteWaterLiters, delta.RecipesTried,
	)
	if err != nil {
		return postgres.MapError(err, "user", delta.UserID)
	}
	return nil
}

// ListDaily returns a user's daily rows in date order, from the given date when set.
func (r *Repo) ListDaily(ctx context.Context, userID uuid.UUID, from *time.Time) ([]domain.AnalyticsDaily, error) {
	query := postgres.Builder().
		Select("user_id", "date", "items_saved", "money_saved", "co2_prevented_kg", "water_saved_liters",
			"waste_count", "waste_cost", "waste_co2_kg", "waste_water_liters", "recipes_tried").
		From("analytics_daily").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date ASC")
	if from != nil {
		query = query.Where(sq.GtOrEq{"date": domain.DateOf(*from)})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build daily query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query analytics daily: %w", err)
	}
	defer rows.Close()

	out := []domain.AnalyticsDaily{}
	for rows.Next() {
		var d domain.AnalyticsDaily
		if err := rows.Scan(&d.UserID, &d.Date, &d.ItemsSaved, &d.MoneySaved, &d.CO2PreventedKg, &d.WaterSavedLiters,
			&d.WasteCount, &d.WasteCost, &d.WasteCO2Kg, &d.WasteWaterLiters, &d.RecipesTried); err != nil {
			return nil, fmt.Errorf("scan analytics daily: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UnlockAchievement records an unlock. The bool is false when the user already had it.
func (r *Repo) UnlockAchievement(ctx context.Context, userID uuid.UUID, achievementID string) (*domain.UserAchievement, bool, error) {
	ua := domain.UserAchievement{UserID: userID, AchievementID: achievementID}

	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO user_achievements (user_id, achievement_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, achievement_id) DO NOTHING
		 RETURNING id, unlocked_at`,
		userID, achievementID,
	).Scan(&ua.ID, &ua.UnlockedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, postgres.MapError(err, "user", userID)
	}
	return &ua, true, nil
}

// ListAchievements returns a user's unlocks, oldest first.
func (r *Repo) ListAchievements(ctx context.Context, userID uuid.UUID) ([]domain.UserAchievement, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, user_id, achievement_id, unlocked_at FROM user_achievements
		 WHERE user_id = $1 ORDER BY unlocked_at`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	defer rows.Close()

	out := []domain.UserAchievement{}
	for rows.Next() {
		var ua domain.UserAchievement
		if err := rows.Scan(&ua.ID, &ua.UserID, &ua.AchievementID, &ua.UnlockedAt); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		out = append(out, ua)
	}
	return out, rows.Err()
}
