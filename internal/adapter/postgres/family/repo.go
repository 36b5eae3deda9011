// Package family implements family and membership persistence using PostgreSQL.
package family

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

const familySelect = `SELECT f.id, f.name, f.admin_id, f.invite_code, f.created_at,
       (SELECT count(*) FROM family_members m WHERE m.family_id = f.id)
  FROM families f`

const memberSelect = `SELECT m.id, m.family_id, m.user_id, m.role, u.name, u.email, m.joined_at
  FROM family_members m
  JOIN users u ON u.id = m.user_id`

// Repo provides family persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new family repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a family. A taken invite code surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, f domain.Family) (*domain.Family, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	err := q.QueryRow(ctx,
		`INSERT INTO families (id, name, admin_id, invite_code) VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		f.ID, f.Name, f.AdminID, f.InviteCode,
	).Scan(&f.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "family", f.ID)
	}
	return &f, nil
}

// GetByID returns a family with its member count.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Family, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	f, err := scanFamily(q.QueryRow(ctx, familySelect+` WHERE f.id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "family", id)
	}
	return f, nil
}

// GetByInviteCode looks a family up by its invite code.
func (r *Repo) GetByInviteCode(ctx context.Context, code string) (*domain.Family, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	f, err := scanFamily(q.QueryRow(ctx, familySelect+` WHERE f.invite_code = $1`, code))
	if err != nil {
		return nil, postgres.MapError(err, "family", uuid.Nil)
	}
	return f, nil
}

// UpdateInviteCode replaces the family's invite code.
func (r *Repo) UpdateInviteCode(ctx context.Context, id uuid.UUID, code string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `UPDATE families SET invite_code = $2 WHERE id = $1`, id, code)
	if err != nil {
		return postgres.MapError(err, "family", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "family", id)
	}
	return nil
}

// UpdateAdmin hands the admin seat to another user.
func (r *Repo) UpdateAdmin(ctx context.Context, id, adminID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `UPDATE families SET admin_id = $2 WHERE id = $1`, id, adminID); err != nil {
		return postgres.MapError(err, "family", id)
	}
	return nil
}

// Delete removes a family. Memberships cascade; users and items lose their
// family_id. Items on the family shopping list move to the list creator's
// personal list, created when missing, before the family list is dropped.
// Run it inside a transaction.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx,
		`INSERT INTO shopping_lists (user_id, name)
		 SELECT user_id, name FROM shopping_lists WHERE family_id = $1
		 ON CONFLICT DO NOTHING`, id); err != nil {
		return fmt.Errorf("ensure personal list: %w", postgres.MapError(err, "family", id))
	}
	if _, err := q.Exec(ctx,
		`UPDATE shopping_items si SET list_id = p.id, updated_at = now()
		 FROM shopping_lists f
		 JOIN shopping_lists p ON p.user_id = f.user_id AND p.family_id IS NULL
		 WHERE f.family_id = $1 AND si.list_id = f.id`, id); err != nil {
		return fmt.Errorf("move shopping items: %w", postgres.MapError(err, "family", id))
	}
	if _, err := q.Exec(ctx, `DELETE FROM shopping_lists WHERE family_id = $1`, id); err != nil {
		return fmt.Errorf("drop family list: %w", postgres.MapError(err, "family", id))
	}

	tag, err := q.Exec(ctx, `DELETE FROM families WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "family", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "family", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Members
// ---------------------------------------------------------------------------

// AddMember inserts a membership. Joining the same family twice surfaces as domain.ErrAlreadyExists.
func (r *Repo) AddMember(ctx context.Context, familyID, userID uuid.UUID, role domain.FamilyRole) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO family_members (family_id, user_id, role) VALUES ($1, $2, $3)`,
		familyID, userID, string(role),
	)
	if err != nil {
		return postgres.MapError(err, "family_member", userID)
	}
	return nil
}

// GetMember returns one membership.
func (r *Repo) GetMember(ctx context.Context, familyID, userID uuid.UUID) (*domain.FamilyMember, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMember(q.QueryRow(ctx, memberSelect+` WHERE m.family_id = $1 AND m.user_id = $2`, familyID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "family_member", userID)
	}
	return m, nil
}

// ListMembers returns members in join order.
func (r *Repo) ListMembers(ctx context.Context, familyID uuid.UUID) ([]domain.FamilyMember, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, memberSelect+` WHERE m.family_id = $1 ORDER BY m.joined_at`, familyID)
	if err != nil {
		return nil, fmt.Errorf("query family members: %w", err)
	}
	defer rows.Close()

	members := []domain.FamilyMember{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan family member: %w", err)
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

// UpdateRole changes a member's role.
func (r *Repo) UpdateRole(ctx context.Context, familyID, userID uuid.UUID, role domain.FamilyRole) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE family_members SET role = $3 WHERE family_id = $1 AND user_id = $2`,
		familyID, userID, string(role),
	)
	if err != nil {
		return postgres.MapError(err, "family_member", userID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "family_member", userID)
	}
	return nil
}

// RemoveMember deletes a membership.
func (r *Repo) RemoveMember(ctx context.Context, familyID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM family_members WHERE family_id = $1 AND user_id = $2`, familyID, userID)
	if err != nil {
		return postgres.MapError(err, "family_member", userID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "family_member", userID)
	}
	return nil
}

func scanFamily(row pgx.Row) (*domain.Family, error) {
	var f domain.Family
	if err := row.Scan(&f.ID, &f.Name, &f.AdminID, &f.InviteCode, &f.CreatedAt, &f.MemberCount); err != nil {
		return nil, err
	}
	return &f, nil
}

func scanMember(row pgx.Row) (*domain.FamilyMember, error) {
	var (
		m    domain.FamilyMember
		role string
	)
	if err := row.Scan(&m.ID, &m.FamilyID, &m.UserID, &role, &m.Name, &m.Email, &m.JoinedAt); err != nil {
		return nil, err
	}
	m.Role = domain.FamilyRole(role)
	return &m, nil
}
