// Package item implements inventory item and consumption/waste log persistence using PostgreSQL.
package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var columns = []string{
	"id", "user_id", "family_id", "name", "quantity", "unit", "category", "storage",
	"purchase_date", "expiration_date", "status", "notes", "photo_url", "barcode",
	"created_at", "updated_at",
}

const (
	defaultLimit = 50
	maxLimit     = 100
)

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new item and returns the stored row.
func (r *Repo) Create(ctx context.Context, it domain.Item) (*domain.Item, error) {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}

	query := postgres.Builder().
		Insert("items").
		Columns("id", "user_id", "family_id", "name", "quantity", "unit", "category", "storage",
			"purchase_date", "expiration_date", "status", "notes", "photo_url", "barcode").
		Values(it.ID, it.UserID, it.FamilyID, it.Name, it.Quantity, it.Unit, string(it.Category),
			string(it.Storage), it.PurchaseDate, it.ExpirationDate, string(it.Status),
			it.Notes, it.PhotoURL, it.Barcode).
		Suffix("RETURNING " + joinColumns(""))

	return r.one(ctx, query, it.ID)
}

// GetByID returns an item by primary key regardless of status.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := postgres.Builder().
		Select(columns...).
		From("items").
		Where(sq.Eq{"id": id})

	return r.one(ctx, query, id)
}

// Update writes the item's editable fields.
func (r *Repo) Update(ctx context.Context, it domain.Item) (*domain.Item, error) {
	query := postgres.Builder().
		Update("items").
		Set("name", it.Name).
		Set("quantity", it.Quantity).
		Set("unit", it.Unit).
		Set("category", string(it.Category)).
		Set("storage", string(it.Storage)).
		Set("purchase_date", it.PurchaseDate).
		Set("expiration_date", it.ExpirationDate).
		Set("notes", it.Notes).
		Set("photo_url", it.PhotoURL).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": it.ID, "status": string(domain.ItemStatusActive)}).
		Suffix("RETURNING " + joinColumns(""))

	return r.one(ctx, query, it.ID)
}

// Transition moves an item out of one of the from statuses into to, storing the
// remaining quantity. Returns domain.ErrNotFound when the item is not in an allowed status.
func (r *Repo) Transition(ctx context.Context, id uuid.UUID, from []domain.ItemStatus, to domain.ItemStatus, quantity float64) (*domain.Item, error) {
	allowed := make([]string, len(from))
	for i, s := range from {
		allowed[i] = string(s)
	}

	query := postgres.Builder().
		Update("items").
		Set("status", string(to)).
		Set("quantity", quantity).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": allowed}).
		Suffix("RETURNING " + joinColumns(""))

	return r.one(ctx, query, id)
}

// Deduct subtracts amount from an active item that still holds at least that
// much. Reaching zero marks the item consumed and keeps its last quantity.
// The arithmetic runs in the UPDATE so concurrent deductions serialize on the
// row. Returns domain.ErrNotFound when the item is not active or holds less.
func (r *Repo) Deduct(ctx context.Context, id uuid.UUID, amount float64) (*domain.Item, error) {
	drained := "quantity - ? <= 0"
	query := postgres.Builder().
		Update("items").
		Set("status", sq.Expr("CASE WHEN "+drained+" THEN ? ELSE status END", amount, string(domain.ItemStatusConsumed))).
		Set("quantity", sq.Expr("CASE WHEN "+drained+" THEN quantity ELSE quantity - ? END", amount, amount)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": string(domain.ItemStatusActive)}).
		Where(sq.GtOrEq{"quantity": amount}).
		Suffix("RETURNING " + joinColumns(""))

	return r.one(ctx, query, id)
}

// List returns a page of items matching the filter and the total match count.
func (r *Repo) List(ctx context.Context, f domain.ItemFilter) ([]domain.Item, int, error) {
	where := sq.And{postgres.ScopeClause("", f.Scope)}

	status := domain.ItemStatusActive
	if f.Status != nil {
		status = *f.Status
	}
	where = append(where, sq.Eq{"status": string(status)})

	if f.Category != nil {
		where = append(where, sq.Eq{"category": string(*f.Category)})
	}
	if f.Storage != nil {
		where = append(where, sq.Eq{"storage": string(*f.Storage)})
	}
	if f.Search != nil && *f.Search != "" {
		where = append(where, sq.ILike{"name": postgres.ContainsPattern(*f.Search)})
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)
	offset := max(f.Offset, 0)

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("items").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	query := postgres.Builder().
		Select(columns...).
		From("items").
		Where(where).
		OrderBy("expiration_date ASC NULLS LAST", "created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	items, err := r.many(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListActive returns up to limit active items in the scope, soonest-expiring first.
// A limit of zero returns all of them.
func (r *Repo) ListActive(ctx context.Context, scope domain.Scope, limit int) ([]domain.Item, error) {
	query := postgres.Builder().
		Select(columns...).
		From("items").
		Where(postgres.ScopeClause("", scope)).
		Where(sq.Eq{"status": string(domain.ItemStatusActive)}).
		OrderBy("expiration_date ASC NULLS LAST", "created_at DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	return r.many(ctx, query)
}

// ListExpiring returns active items whose expiration date falls in [today, today+days].
func (r *Repo) ListExpiring(ctx context.Context, scope domain.Scope, today time.Time, days int) ([]domain.Item, error) {
	query := postgres.Builder().
		Select(columns...).
		From("items").
		Where(postgres.ScopeClause("", scope)).
		Where(sq.Eq{"status": string(domain.ItemStatusActive)}).
		Where(sq.GtOrEq{"expiration_date": domain.DateOf(today)}).
		Where(sq.LtOrEq{"expiration_date": domain.DateOf(today).AddDate(0, 0, days)}).
		OrderBy("expiration_date ASC", "name ASC")

	return r.many(ctx, query)
}

// ListExpired returns items past their expiration date that have not been used or thrown away.
func (r *Repo) ListExpired(ctx context.Context, scope domain.Scope, today time.Time) ([]domain.Item, error) {
	query := postgres.Builder().
		Select(columns...).
		From("items").
		Where(postgres.ScopeClause("", scope)).
		Where(sq.Eq{"status": []string{string(domain.ItemStatusActive), string(domain.ItemStatusExpired)}}).
		Where(sq.Lt{"expiration_date": domain.DateOf(today)}).
		OrderBy("expiration_date DESC", "name ASC")

	return r.many(ctx, query)
}

// Counts returns how many active items in the scope are expiring within threshold days or already expired.
func (r *Repo) Counts(ctx context.Context, scope domain.Scope, today time.Time, threshold int) (domain.ItemCounts, error) {
	d := domain.DateOf(today)
	sql, args, err := postgres.Builder().
		Select().
		Column(sq.Expr("count(*) FILTER (WHERE expiration_date >= ? AND expiration_date <= ?)", d, d.AddDate(0, 0, threshold))).
		Column(sq.Expr("count(*) FILTER (WHERE expiration_date < ?)", d)).
		From("items").
		Where(postgres.ScopeClause("", scope)).
		Where(sq.Eq{"status": string(domain.ItemStatusActive)}).
		ToSql()
	if err != nil {
		return domain.ItemCounts{}, fmt.Errorf("build counts query: %w", err)
	}

	var c domain.ItemCounts
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, sql, args...).Scan(&c.Expiring, &c.Expired); err != nil {
		return domain.ItemCounts{}, fmt.Errorf("count items: %w", err)
	}
	return c, nil
}

// MarkExpired flips every active item whose expiration date is before its
// owner's local date at now to expired. Returns the number of items changed.
func (r *Repo) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE items i SET status = 'expired', updated_at = now()
		 FROM users u
		 WHERE u.id = i.user_id
		   AND i.status = 'active'
		   AND i.expiration_date < ($1::timestamptz AT TIME ZONE u.timezone)::date`,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("mark expired items: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListByUser returns every item the user created, optionally bounded by creation time.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.Item, error) {
	query := postgres.Builder().
		Select(columns...).
		From("items").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.NotEq{"status": string(domain.ItemStatusDeleted)}).
		OrderBy("created_at ASC")
	if from != nil {
		query = query.Where(sq.GtOrEq{"created_at": *from})
	}
	if to != nil {
		query = query.Where(sq.Lt{"created_at": *to})
	}
	return r.many(ctx, query)
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

type sqlizer interface {
	ToSql() (string, []any, error)
}

func (r *Repo) one(ctx context.Context, query sqlizer, id uuid.UUID) (*domain.Item, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	it, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}
	return it, nil
}

func (r *Repo) many(ctx context.Context, query sqlizer) ([]domain.Item, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		it                        domain.Item
		category, storage, status string
	)
	err := row.Scan(&it.ID, &it.UserID, &it.FamilyID, &it.Name, &it.Quantity, &it.Unit,
		&category, &storage, &it.PurchaseDate, &it.ExpirationDate, &status,
		&it.Notes, &it.PhotoURL, &it.Barcode, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	it.Category = domain.Category(category)
	it.Storage = domain.Storage(storage)
	it.Status = domain.ItemStatus(status)
	return &it, nil
}

func joinColumns(prefix string) string {
	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = prefix + c
	}
	return strings.Join(qualified, ", ")
}
