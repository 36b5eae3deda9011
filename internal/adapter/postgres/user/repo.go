// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

const userColumns = "id, email, password_hash, name, timezone, family_id, last_login_at, created_at, updated_at"

// Repo provides user and user-settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash, name, timezone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+userColumns,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Timezone, u.CreatedAt, u.UpdatedAt,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// UpdateProfile modifies name and timezone. Nil arguments keep the stored value.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, name, timezone *string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE users SET name = COALESCE($2, name), timezone = COALESCE($3, timezone), updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, name, timezone,
	)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.exec(ctx, id, `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, id, hash)
}

// TouchLastLogin records a successful login.
func (r *Repo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.exec(ctx, id, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
}

// SetFamily points the user at a family, or clears membership when familyID is nil.
func (r *Repo) SetFamily(ctx context.Context, id uuid.UUID, familyID *uuid.UUID) error {
	return r.exec(ctx, id, `UPDATE users SET family_id = $2, updated_at = now() WHERE id = $1`, id, familyID)
}

// ListAll returns every user ordered by creation. Used by background jobs.
func (r *Repo) ListAll(ctx context.Context) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// exec runs a single-row update and reports ErrNotFound when nothing matched.
func (r *Repo) exec(ctx context.Context, id uuid.UUID, sql string, args ...any) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// UserSettings operations
// ---------------------------------------------------------------------------

// GetSettings returns the settings for the given user.
func (r *Repo) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT user_id, notifications, food, expiration, language, updated_at
		 FROM user_settings WHERE user_id = $1`, userID)

	s, err := scanSettings(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", userID)
	}
	return s, nil
}

// UpsertSettings stores the complete settings document for a user.
func (r *Repo) UpsertSettings(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	notif, food, exp, err := marshalSettings(s)
	if err != nil {
		return nil, err
	}

	row := q.QueryRow(ctx,
		`INSERT INTO user_settings (user_id, notifications, food, expiration, language, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		     notifications = EXCLUDED.notifications,
		     food          = EXCLUDED.food,
		     expiration    = EXCLUDED.expiration,
		     language      = EXCLUDED.language,
		     updated_at    = now()
		 RETURNING user_id, notifications, food, expiration, language, updated_at`,
		s.UserID, notif, food, exp, s.Language,
	)

	out, err := scanSettings(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", s.UserID)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Timezone,
		&u.FamilyID, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func scanSettings(row pgx.Row) (*domain.UserSettings, error) {
	var (
		s                domain.UserSettings
		notif, food, exp []byte
	)
	if err := row.Scan(&s.UserID, &notif, &food, &exp, &s.Language, &s.UpdatedAt); err != nil {
		return nil, err
	}

	// Start from defaults so keys missing from older documents stay sensible.
	def := domain.DefaultUserSettings(s.UserID)
	s.Notifications, s.Food, s.Expiration = def.Notifications, def.Food, def.Expiration

	if err := json.Unmarshal(notif, &s.Notifications); err != nil {
		return nil, fmt.Errorf("decode notification settings: %w", err)
	}
	if err := json.Unmarshal(food, &s.Food); err != nil {
		return nil, fmt.Errorf("decode food preferences: %w", err)
	}
	if err := json.Unmarshal(exp, &s.Expiration); err != nil {
		return nil, fmt.Errorf("decode expiration settings: %w", err)
	}
	return &s, nil
}

func marshalSettings(s domain.UserSettings) (notif, food, exp []byte, err error) {
	if notif, err = json.Marshal(s.Notifications); err != nil {
		return nil, nil, nil, fmt.Errorf("encode notification settings: %w", err)
	}
	if food, err = json.Marshal(s.Food); err != nil {
		return nil, nil, nil, fmt.Errorf("encode food preferences: %w", err)
	}
	if exp, err = json.Marshal(s.Expiration); err != nil {
		return nil, nil, nil, fmt.Errorf("encode expiration settings: %w", err)
	}
	return notif, food, exp, nil
}
