// Package family manages household groups that share an inventory and a shopping list.
package family

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// familyRepo defines the family persistence needed by family service.
type familyRepo interface {
	Create(ctx context.Context, f domain.Family) (*domain.Family, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Family, error)
	GetByInviteCode(ctx context.Context, code string) (*domain.Family, error)
	UpdateInviteCode(ctx context.Context, id uuid.UUID, code string) error
	UpdateAdmin(ctx context.Context, id, adminID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, familyID, userID uuid.UUID, role domain.FamilyRole) error
	GetMember(ctx context.Context, familyID, userID uuid.UUID) (*domain.FamilyMember, error)
	ListMembers(ctx context.Context, familyID uuid.UUID) ([]domain.FamilyMember, error)
	UpdateRole(ctx context.Context, familyID, userID uuid.UUID, role domain.FamilyRole) error
	RemoveMember(ctx context.Context, familyID, userID uuid.UUID) error
}

// userRepo defines the user operations needed by family service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetFamily(ctx context.Context, id uuid.UUID, familyID *uuid.UUID) error
}

// achievementChecker re-evaluates the authenticated user's achievements.
type achievementChecker interface {
	CheckAchievements(ctx context.Context) ([]domain.Achievement, error)
}

// notifier delivers notifications to a user.
type notifier interface {
	Deliver(ctx context.Context, n domain.Notification, voiceText string) (*domain.Notification, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements family management.
type Service struct {
	log          *slog.Logger
	families     familyRepo
	users        userRepo
	achievements achievementChecker
	notifier     notifier
	tx           txManager
	newCode      func() (string, error)
	now          func() time.Time
}

// NewService creates a new family service instance.
func NewService(
	logger *slog.Logger,
	families familyRepo,
	users userRepo,
	achievements achievementChecker,
	notifier notifier,
	tx txManager,
) *Service {
	return &Service{
		log:          logger.With("service", "family"),
		families:     families,
		users:        users,
		achievements: achievements,
		notifier:     notifier,
		tx:           tx,
		newCode:      GenerateInviteCode,
		now:          time.Now,
	}
}

// GenerateInviteCode returns a random code of domain.InviteCodeLength characters
// drawn uniformly from domain.InviteCodeAlphabet.
func GenerateInviteCode() (string, error) {
	alphabet := domain.InviteCodeAlphabet
	limit := big.NewInt(int64(len(alphabet)))

	code := make([]byte, domain.InviteCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		code[i] = alphabet[n.Int64()]
	}
	return string(code), nil
}
