package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

type itemRepo interface {
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
	ListExpiring(ctx context.Context, scope domain.Scope, today time.Time, days int) ([]domain.Item, error)
}

type userRepo interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
}

type alerter interface {
	SendExpiryAlert(ctx context.Context, userID uuid.UUID, items []domain.Item, today time.Time, withVoice bool) (*domain.Notification, error)
	SendEveningReminder(ctx context.Context, userID uuid.UUID, items []domain.Item) (*domain.Notification, error)
}

type achievementChecker interface {
	CheckAllUsers(ctx context.Context) (int, error)
}

type tokenCleaner interface {
	CleanupExpiredTokens(ctx context.Context) (int, error)
}

// Jobs holds the job bodies. Each method is one scheduled run.
type Jobs struct {
	log          *slog.Logger
	items        itemRepo
	users        userRepo
	alerts       alerter
	achievements achievementChecker
	tokens       tokenCleaner
	now          func() time.Time
}

// NewJobs creates the job set.
func NewJobs(
	logger *slog.Logger,
	items itemRepo,
	users userRepo,
	alerts alerter,
	achievements achievementChecker,
	tokens tokenCleaner,
) *Jobs {
	return &Jobs{
		log:          logger.With("component", "jobs"),
		items:        items,
		users:        users,
		alerts:       alerts,
		achievements: achievements,
		tokens:       tokens,
		now:          time.Now,
	}
}

// Freshness marks active items past their expiration date as expired. The
// cutoff is each owner's local date, so the job runs hourly to follow midnight
// around the time zones.
func (j *Jobs) Freshness(ctx context.Context) error {
	n, err := j.items.MarkExpired(ctx, j.now())
	if err != nil {
		return fmt.Errorf("worker.Freshness: %w", err)
	}
	j.log.InfoContext(ctx, "items expired", slog.Int64("count", n))
	return nil
}

// Alerts sends the morning expiry alert or the evening reminder to users whose
// local hour matches their configured alert time.
func (j *Jobs) Alerts(ctx context.Context) error {
	users, err := j.users.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("worker.Alerts: %w", err)
	}

	now := j.now()
	sent, failed := 0, 0
	for i := range users {
		ok, err := j.alertUser(ctx, &users[i], now)
		if err != nil {
			failed++
			j.log.ErrorContext(ctx, "alert user",
				slog.String("user_id", users[i].ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		if ok {
			sent++
		}
	}

	j.log.InfoContext(ctx, "alerts processed",
		slog.Int("users", len(users)), slog.Int("sent", sent), slog.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("worker.Alerts: %d of %d users failed", failed, len(users))
	}
	return nil
}

func (j *Jobs) alertUser(ctx context.Context, u *domain.User, now time.Time) (bool, error) {
	settings, err := j.users.GetSettings(ctx, u.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		d := domain.DefaultUserSettings(u.ID)
		settings = &d
	case err != nil:
		return false, err
	}

	n := settings.Notifications
	if !n.Enabled {
		return false, nil
	}

	local := now.In(u.Location())
	if n.InQuietHours(local) {
		return false, nil
	}

	scope := domain.Scope{UserID: u.ID, FamilyID: u.FamilyID}
	today := domain.DateOf(local)

	if atHour(n.MorningAlertTime, local) {
		items, err := j.items.ListExpiring(ctx, scope, today, n.ExpiryThresholdDays)
		if err != nil {
			return false, err
		}
		out, err := j.alerts.SendExpiryAlert(ctx, u.ID, items, today, n.VoiceAlerts)
		if err != nil {
			return false, err
		}
		return out != nil, nil
	}

	if n.EveningReminder && atHour(n.EveningReminderTime, local) {
		items, err := j.items.ListExpiring(ctx, scope, today, 0)
		if err != nil {
			return false, err
		}
		out, err := j.alerts.SendEveningReminder(ctx, u.ID, items)
		if err != nil {
			return false, err
		}
		return out != nil, nil
	}

	return false, nil
}

// atHour reports whether local falls in the same hour as the "HH:MM" clock.
func atHour(clock string, local time.Time) bool {
	m, ok := domain.ClockMinutes(clock)
	return ok && m/60 == local.Hour()
}

// Achievements re-evaluates achievements for every user.
func (j *Jobs) Achievements(ctx context.Context) error {
	n, err := j.achievements.CheckAllUsers(ctx)
	if err != nil {
		return fmt.Errorf("worker.Achievements: %w", err)
	}
	j.log.InfoContext(ctx, "achievements checked", slog.Int("unlocked", n))
	return nil
}

// TokenCleanup deletes expired and revoked refresh tokens.
func (j *Jobs) TokenCleanup(ctx context.Context) error {
	n, err := j.tokens.CleanupExpiredTokens(ctx)
	if err != nil {
		return fmt.Errorf("worker.TokenCleanup: %w", err)
	}
	j.log.InfoContext(ctx, "refresh tokens cleaned", slog.Int("deleted", n))
	return nil
}
