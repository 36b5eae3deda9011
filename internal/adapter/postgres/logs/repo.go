// Package logs implements the append-only consumption and waste logs using PostgreSQL.
package logs

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// Repo provides log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CreateConsumption appends a consumption log row.
func (r *Repo) CreateConsumption(ctx context.Context, l domain.ConsumptionLog) (*domain.ConsumptionLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO consumption_logs (item_id, user_id, quantity_consumed, consumed_at, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		l.ItemID, l.UserID, l.QuantityConsumed, l.ConsumedAt, l.Notes,
	).Scan(&l.ID)
	if err != nil {
		return nil, postgres.MapError(err, "consumption_log", l.ItemID)
	}
	return &l, nil
}

// CreateWaste appends a waste log row.
func (r *Repo) CreateWaste(ctx context.Context, l domain.WasteLog) (*domain.WasteLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO waste_logs (item_id, user_id, quantity, wasted_at, reason, feedback_text, photo_url,
		                         estimated_value, co2_impact_kg, water_impact_liters)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		l.ItemID, l.UserID, l.Quantity, l.WastedAt, string(l.Reason), l.FeedbackText, l.PhotoURL,
		l.EstimatedValue, l.CO2ImpactKg, l.WaterImpactLiters,
	).Scan(&l.ID)
	if err != nil {
		return nil, postgres.MapError(err, "waste_log", l.ItemID)
	}
	return &l, nil
}

// ListConsumption returns a user's consumption logs, oldest first, optionally bounded in time.
func (r *Repo) ListConsumption(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.ConsumptionLog, error) {
	query := postgres.Builder().
		Select("id", "item_id", "user_id", "quantity_consumed", "consumed_at", "notes").
		From("consumption_logs").
		Where(sq.Eq{"user_id": userID}).
		Where(timeRange("consumed_at", from, to)).
		OrderBy("consumed_at ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build consumption query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query consumption logs: %w", err)
	}
	defer rows.Close()

	out := []domain.ConsumptionLog{}
	for rows.Next() {
		var l domain.ConsumptionLog
		if err := rows.Scan(&l.ID, &l.ItemID, &l.UserID, &l.QuantityConsumed, &l.ConsumedAt, &l.Notes); err != nil {
			return nil, fmt.Errorf("scan consumption log: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// ListWaste returns a user's waste logs, oldest first, optionally bounded in time.
func (r *Repo) ListWaste(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.WasteLog, error) {
	query := postgres.Builder().
		Select("id", "item_id", "user_id", "quantity", "wasted_at", "reason", "feedback_text", "photo_url",
			"estimated_value", "co2_impact_kg", "water_impact_liters").
		From("waste_logs").
		Where(sq.Eq{"user_id": userID}).
		Where(timeRange("wasted_at", from, to)).
		OrderBy("wasted_at ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build waste query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query waste logs: %w", err)
	}
	defer rows.Close()

	out := []domain.WasteLog{}
	for rows.Next() {
		var (
			l      domain.WasteLog
			reason string
		)
		if err := rows.Scan(&l.ID, &l.ItemID, &l.UserID, &l.Quantity, &l.WastedAt, &reason, &l.FeedbackText,
			&l.PhotoURL, &l.EstimatedValue, &l.CO2ImpactKg, &l.WaterImpactLiters); err != nil {
			return nil, fmt.Errorf("scan waste log: %w", err)
		}
		l.Reason = domain.WasteReason(reason)
		out = append(out, l)
	}
	return out, rows.Err()
}

// WasteByCategory counts a user's waste events per item category since from.
func (r *Repo) WasteByCategory(ctx context.Context, userID uuid.UUID, from time.Time) (domain.CategoryBreakdown, error) {
	return r.byCategory(ctx, "waste_logs", "wasted_at", userID, from)
}

// SavingsByCategory counts a user's consumption events per item category since from.
func (r *Repo) SavingsByCategory(ctx context.Context, userID uuid.UUID, from time.Time) (domain.CategoryBreakdown, error) {
	return r.byCategory(ctx, "consumption_logs", "consumed_at", userID, from)
}

func (r *Repo) byCategory(ctx context.Context, table, timeCol string, userID uuid.UUID, from time.Time) (domain.CategoryBreakdown, error) {
	sql, args, err := postgres.Builder().
		Select("i.category", "count(*)").
		From(table + " l").
		Join("items i ON i.id = l.item_id").
		Where(sq.Eq{"l.user_id": userID}).
		Where(sq.GtOrEq{"l." + timeCol: from}).
		GroupBy("i.category").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s breakdown: %w", table, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s breakdown: %w", table, err)
	}
	defer rows.Close()

	out := domain.CategoryBreakdown{}
	for rows.Next() {
		var (
			cat   string
			count int
		)
		if err := rows.Scan(&cat, &count); err != nil {
			return nil, fmt.Errorf("scan %s breakdown: %w", table, err)
		}
		out[domain.Category(cat)] = float64(count)
	}
	return out, rows.Err()
}

func timeRange(col string, from, to *time.Time) sq.Sqlizer {
	cond := sq.And{}
	if from != nil {
		cond = append(cond, sq.GtOrEq{col: *from})
	}
	if to != nil {
		cond = append(cond, sq.Lt{col: *to})
	}
	return cond
}
