// Package notification implements notification and push subscription persistence using PostgreSQL.
package notification

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

var columns = []string{"id", "user_id", "type", "title", "body", "data", "read", "voice_url", "snoozed_until", "created_at"}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a notification.
func (r *Repo) Create(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	if n.Data == nil {
		n.Data = map[string]any{}
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	err := q.QueryRow(ctx,
		`INSERT INTO notifications (user_id, type, title, body, data, voice_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, read, created_at`,
		n.UserID, string(n.Type), n.Title, n.Body, n.Data, n.VoiceURL,
	).Scan(&n.ID, &n.Read, &n.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "notification", n.UserID)
	}
	return &n, nil
}

// ListFilter narrows a notification listing.
type ListFilter struct {
	UserID     uuid.UUID
	UnreadOnly bool
	Now        time.Time
	Limit      int
}

// List returns the newest notifications first, hiding those snoozed past Now.
func (r *Repo) List(ctx context.Context, f ListFilter) ([]domain.Notification, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	query := postgres.Builder().
		Select(columns...).
		From("notifications").
		Where(sq.Eq{"user_id": f.UserID}).
		Where(sq.Or{sq.Eq{"snoozed_until": nil}, sq.LtOrEq{"snoozed_until": f.Now}}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))
	if f.UnreadOnly {
		query = query.Where(sq.Eq{"read": false})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notification query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	out := []domain.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

// UnreadCount counts unread notifications that are not currently snoozed.
func (r *Repo) UnreadCount(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT count(*) FROM notifications
		 WHERE user_id = $1 AND read = false AND (snoozed_until IS NULL OR snoozed_until <= $2)`,
		userID, now,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return n, nil
}

// MarkRead marks the given notifications read. Ids owned by other users are ignored.
func (r *Repo) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE notifications SET read = true WHERE user_id = $1 AND id = ANY($2) AND read = false`,
		userID, ids,
	)
	if err != nil {
		return 0, postgres.MapError(err, "notification", userID)
	}
	return tag.RowsAffected(), nil
}

// MarkAllRead marks every notification of the user read.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE notifications SET read = true WHERE user_id = $1 AND read = false`, userID,
	)
	if err != nil {
		return 0, postgres.MapError(err, "notification", userID)
	}
	return tag.RowsAffected(), nil
}

// Snooze hides a notification until the given time.
func (r *Repo) Snooze(ctx context.Context, userID, id uuid.UUID, until time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE notifications SET snoozed_until = $3 WHERE id = $1 AND user_id = $2`,
		id, userID, until,
	)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "notification", id)
	}
	return nil
}

// Delete removes a notification owned by the user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM notifications WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "notification", id)
	}
	return nil
}

// UpsertSubscription stores a push endpoint, refreshing keys when it already exists.
func (r *Repo) UpsertSubscription(ctx context.Context, s domain.PushSubscription) (*domain.PushSubscription, error) {
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO push_subscriptions (user_id, endpoint, p256dh, auth)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, endpoint) DO UPDATE SET p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth
		 RETURNING id, created_at`,
		s.UserID, s.Endpoint, s.P256dh, s.Auth,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "push_subscription", s.UserID)
	}
	return &s, nil
}

// DeleteSubscription removes a user's push endpoint.
func (r *Repo) DeleteSubscription(ctx context.Context, userID uuid.UUID, endpoint string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM push_subscriptions WHERE user_id = $1 AND endpoint = $2`, userID, endpoint,
	)
	if err != nil {
		return postgres.MapError(err, "push_subscription", userID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "push_subscription", userID)
	}
	return nil
}

// DeleteSubscriptionByID removes a subscription regardless of owner. Used when the push service reports it gone.
func (r *Repo) DeleteSubscriptionByID(ctx context.Context, id uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM push_subscriptions WHERE id = $1`, id,
	); err != nil {
		return postgres.MapError(err, "push_subscription", id)
	}
	return nil
}

// ListSubscriptions returns a user's push endpoints.
func (r *Repo) ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]domain.PushSubscription, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, user_id, endpoint, p256dh, auth, created_at
		 FROM push_subscriptions WHERE user_id = $1 ORDER BY created_at`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query push subscriptions: %w", err)
	}
	defer rows.Close()

	out := []domain.PushSubscription{}
	for rows.Next() {
		var s domain.PushSubscription
		if err := rows.Scan(&s.ID, &s.UserID, &s.Endpoint, &s.P256dh, &s.Auth, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan push subscription: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var (
		n   domain.Notification
		typ string
	)
	if err := row.Scan(&n.ID, &n.UserID, &typ, &n.Title, &n.Body, &n.Data, &n.Read,
		&n.VoiceURL, &n.SnoozedUntil, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.Type = domain.NotificationType(typ)
	return &n, nil
}
