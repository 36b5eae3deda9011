package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user and user_settings with default values.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$04$seededhashseededhashseededhashseededhashseededhash12",
		Name:         "Test User " + suffix,
		Timezone:     "UTC",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, timezone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Timezone, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	settings := domain.DefaultUserSettings(user.ID)
	notif, _ := json.Marshal(settings.Notifications)
	food, _ := json.Marshal(settings.Food)
	exp, _ := json.Marshal(settings.Expiration)

	_, err = pool.Exec(ctx,
		`INSERT INTO user_settings (user_id, notifications, food, expiration, language, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, notif, food, exp, settings.Language, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user_settings: %v", err)
	}

	return user
}

// SeedFamily creates a family administered by admin, adds the admin as a member
// and points the admin's family_id at it.
func SeedFamily(t *testing.T, pool *pgxpool.Pool, admin uuid.UUID) domain.Family {
	t.Helper()
	ctx := context.Background()

	fam := domain.Family{
		ID:          uuid.New(),
		Name:        "Family " + uniqueSuffix(),
		AdminID:     admin,
		InviteCode:  randomCode(),
		MemberCount: 1,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO families (id, name, admin_id, invite_code, created_at) VALUES ($1, $2, $3, $4, $5)`,
		fam.ID, fam.Name, fam.AdminID, fam.InviteCode, fam.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFamily insert family: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO family_members (family_id, user_id, role) VALUES ($1, $2, 'admin')`,
		fam.ID, admin,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFamily insert member: %v", err)
	}

	_, err = pool.Exec(ctx, `UPDATE users SET family_id = $1 WHERE id = $2`, fam.ID, admin)
	if err != nil {
		t.Fatalf("testhelper: SeedFamily update user: %v", err)
	}

	return fam
}

// SeedItem creates an active item owned by userID, shared with familyID when non-nil.
// The item expires in expiresIn days; a negative value makes it already expired.
func SeedItem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, familyID *uuid.UUID, expiresIn int) domain.Item {
	t.Helper()
	ctx := context.Background()

	today := domain.DateOf(time.Now().UTC())
	exp := today.AddDate(0, 0, expiresIn)
	item := domain.Item{
		ID:             uuid.New(),
		UserID:         userID,
		FamilyID:       familyID,
		Name:           "Milk " + uniqueSuffix(),
		Quantity:       1,
		Unit:           "liter",
		Category:       domain.CategoryDairy,
		Storage:        domain.StorageFridge,
		PurchaseDate:   today,
		ExpirationDate: &exp,
		Status:         domain.ItemStatusActive,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO items (id, user_id, family_id, name, quantity, unit, category, storage, purchase_date, expiration_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		item.ID, item.UserID, item.FamilyID, item.Name, item.Quantity, item.Unit,
		string(item.Category), string(item.Storage), item.PurchaseDate, item.ExpirationDate, string(item.Status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}

func randomCode() string {
	return uuid.New().String()[:domain.InviteCodeLength]
}
