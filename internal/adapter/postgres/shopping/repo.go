// Package shopping implements shopping list persistence using PostgreSQL.
package shopping

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// DefaultListName is used when a scope gets its first list.
const DefaultListName = "Shopping List"

var itemColumns = []string{
	"si.id", "si.list_id", "si.name", "si.quantity", "si.unit", "si.category", "si.checked",
	"si.added_by", "u.name", "si.notes", "si.auto_generated", "si.created_at", "si.updated_at",
}

// Repo provides shopping list persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new shopping repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetOrCreateList returns the scope's list, creating it on first use. Each scope
// holds at most one list; a concurrent first call loses the insert and reads
// the winner's row. Items are not loaded.
func (r *Repo) GetOrCreateList(ctx context.Context, scope domain.Scope) (*domain.ShoppingList, error) {
	l, err := r.findList(ctx, scope)
	if err == nil || !errors.Is(err, pgx.ErrNoRows) {
		return l, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	l, err = scanList(q.QueryRow(ctx,
		`INSERT INTO shopping_lists (user_id, family_id, name) VALUES ($1, $2, $3)
		 ON CONFLICT DO NOTHING
		 RETURNING id, user_id, family_id, name, created_at, updated_at`,
		scope.UserID, scope.FamilyID, DefaultListName,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		l, err = r.findList(ctx, scope)
	}
	if err != nil {
		return nil, postgres.MapError(err, "shopping_list", scope.UserID)
	}
	return l, nil
}

// findList returns pgx.ErrNoRows unwrapped so callers can tell a missing list apart.
func (r *Repo) findList(ctx context.Context, scope domain.Scope) (*domain.ShoppingList, error) {
	sql, args, err := postgres.Builder().
		Select("id", "user_id", "family_id", "name", "created_at", "updated_at").
		From("shopping_lists").
		Where(postgres.ScopeClause("", scope)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	l, err := scanList(q.QueryRow(ctx, sql, args...))
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "shopping_list", scope.UserID)
	}
	return l, err
}

// ListItems returns the list's items in insertion order.
func (r *Repo) ListItems(ctx context.Context, listID uuid.UUID) ([]domain.ShoppingItem, error) {
	query := selectItems().Where(sq.Eq{"si.list_id": listID}).OrderBy("si.created_at ASC")
	return r.many(ctx, query)
}

// GetItem returns one item on the given list.
func (r *Repo) GetItem(ctx context.Context, listID, id uuid.UUID) (*domain.ShoppingItem, error) {
	items, err := r.many(ctx, selectItems().Where(sq.Eq{"si.id": id, "si.list_id": listID}))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "shopping_item", id)
	}
	return &items[0], nil
}

// AddItem appends an item to a list.
func (r *Repo) AddItem(ctx context.Context, it domain.ShoppingItem) (*domain.ShoppingItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var category *string
	if it.Category != nil {
		c := string(*it.Category)
		category = &c
	}

	var id uuid.UUID
	err := q.QueryRow(ctx,
		`INSERT INTO shopping_items (list_id, name, quantity, unit, category, added_by, notes, auto_generated)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		it.ListID, it.Name, it.Quantity, it.Unit, category, it.AddedBy, it.Notes, it.AutoGenerated,
	).Scan(&id)
	if err != nil {
		return nil, postgres.MapError(err, "shopping_item", it.ListID)
	}

	if err := r.touch(ctx, it.ListID); err != nil {
		return nil, err
	}
	return r.GetItem(ctx, it.ListID, id)
}

// UpdateItem writes the item's editable fields.
func (r *Repo) UpdateItem(ctx context.Context, it domain.ShoppingItem) (*domain.ShoppingItem, error) {
	var category *string
	if it.Category != nil {
		c := string(*it.Category)
		category = &c
	}

	sql, args, err := postgres.Builder().
		Update("shopping_items").
		Set("name", it.Name).
		Set("quantity", it.Quantity).
		Set("unit", it.Unit).
		Set("category", category).
		Set("checked", it.Checked).
		Set("notes", it.Notes).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": it.ID, "list_id": it.ListID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "shopping_item", it.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "shopping_item", it.ID)
	}

	if err := r.touch(ctx, it.ListID); err != nil {
		return nil, err
	}
	return r.GetItem(ctx, it.ListID, it.ID)
}

// DeleteItem removes an item from a list.
func (r *Repo) DeleteItem(ctx context.Context, listID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM shopping_items WHERE id = $1 AND list_id = $2`, id, listID)
	if err != nil {
		return postgres.MapError(err, "shopping_item", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "shopping_item", id)
	}
	return r.touch(ctx, listID)
}

// DeleteChecked removes every checked item, or only those in ids when ids is non-empty.
// Returns the number removed.
func (r *Repo) DeleteChecked(ctx context.Context, listID uuid.UUID, ids []uuid.UUID) (int64, error) {
	where := sq.And{sq.Eq{"list_id": listID, "checked": true}}
	if len(ids) > 0 {
		where = append(where, sq.Eq{"id": ids})
	}

	sql, args, err := postgres.Builder().Delete("shopping_items").Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "shopping_list", listID)
	}
	if err := r.touch(ctx, listID); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) touch(ctx context.Context, listID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, `UPDATE shopping_lists SET updated_at = now() WHERE id = $1`, listID); err != nil {
		return postgres.MapError(err, "shopping_list", listID)
	}
	return nil
}

func selectItems() sq.SelectBuilder {
	return postgres.Builder().
		Select(itemColumns...).
		From("shopping_items si").
		LeftJoin("users u ON u.id = si.added_by")
}

func (r *Repo) many(ctx context.Context, query sq.SelectBuilder) ([]domain.ShoppingItem, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query shopping items: %w", err)
	}
	defer rows.Close()

	items := []domain.ShoppingItem{}
	for rows.Next() {
		var (
			it       domain.ShoppingItem
			category *string
		)
		if err := rows.Scan(&it.ID, &it.ListID, &it.Name, &it.Quantity, &it.Unit, &category, &it.Checked,
			&it.AddedBy, &it.AddedByName, &it.Notes, &it.AutoGenerated, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shopping item: %w", err)
		}
		if category != nil {
			c := domain.Category(*category)
			it.Category = &c
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanList(row pgx.Row) (*domain.ShoppingList, error) {
	var l domain.ShoppingList
	if err := row.Scan(&l.ID, &l.UserID, &l.FamilyID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}
