package family

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/pkg/ctxutil"
)

const maxCodeAttempts = 5

var errCodeTaken = errors.New("invite code taken")

// Details is a family together with its members.
type Details struct {
	domain.Family
	Members []domain.FamilyMember
}

// Create starts a family with the authenticated user as admin.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Family, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("family.Create: %w", err)
	}
	if user.FamilyID != nil {
		return nil, fmt.Errorf("family.Create: already in a family: %w", domain.ErrConflict)
	}

	var created *domain.Family
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, fmt.Errorf("family.Create: generate code: %w", err)
		}

		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			f, txErr := s.families.Create(ctx, domain.Family{Name: in.Name, AdminID: user.ID, InviteCode: code})
			if txErr != nil {
				if errors.Is(txErr, domain.ErrAlreadyExists) {
					return errCodeTaken
				}
				return fmt.Errorf("create family: %w", txErr)
			}
			if txErr = s.families.AddMember(ctx, f.ID, user.ID, domain.FamilyRoleAdmin); txErr != nil {
				return fmt.Errorf("add admin: %w", txErr)
			}
			if txErr = s.users.SetFamily(ctx, user.ID, &f.ID); txErr != nil {
				return fmt.Errorf("set family: %w", txErr)
			}
			created = f
			return nil
		})
		if errors.Is(err, errCodeTaken) {
			s.log.WarnContext(ctx, "invite code collision", slog.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("family.Create: %w", err)
		}
		break
	}
	if created == nil {
		return nil, fmt.Errorf("family.Create: no free invite code after %d attempts: %w", maxCodeAttempts, domain.ErrConflict)
	}
	created.MemberCount = 1

	s.log.InfoContext(ctx, "family created",
		slog.String("family_id", created.ID.String()),
		slog.String("admin_id", user.ID.String()))
	s.checkAchievements(ctx)
	return created, nil
}

// Join adds the authenticated user to the family owning the invite code, as an editor.
func (s *Service) Join(ctx context.Context, in JoinInput) (*Details, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("family.Join: %w", err)
	}

	f, err := s.families.GetByInviteCode(ctx, in.InviteCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("family.Join: invalid invite code: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("family.Join: %w", err)
	}

	if user.FamilyID != nil {
		if *user.FamilyID == f.ID {
			return nil, fmt.Errorf("family.Join: already a member: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("family.Join: already in another family: %w", domain.ErrConflict)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.families.AddMember(ctx, f.ID, user.ID, domain.FamilyRoleEditor); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("already a member: %w", domain.ErrConflict)
			}
			return fmt.Errorf("add member: %w", err)
		}
		return s.users.SetFamily(ctx, user.ID, &f.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("family.Join: %w", err)
	}

	s.log.InfoContext(ctx, "family joined",
		slog.String("family_id", f.ID.String()),
		slog.String("user_id", user.ID.String()))
	s.checkAchievements(ctx)

	if f.AdminID != user.ID {
		if _, err := s.notifier.Deliver(ctx, domain.NewMemberJoinedNotification(f.AdminID, *f, user.Name), ""); err != nil {
			s.log.WarnContext(ctx, "member joined notification failed", slog.String("error", err.Error()))
		}
	}

	return s.details(ctx, f.ID)
}

// Get returns the authenticated user's family with its members.
func (s *Service) Get(ctx context.Context) (*Details, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("family.Get: %w", err)
	}
	if user.FamilyID == nil {
		return nil, fmt.Errorf("family.Get: not in a family: %w", domain.ErrNotFound)
	}

	d, err := s.details(ctx, *user.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("family.Get: %w", err)
	}
	return d, nil
}

// Members lists the members of the authenticated user's family.
func (s *Service) Members(ctx context.Context) ([]domain.FamilyMember, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("family.Members: %w", err)
	}
	if user.FamilyID == nil {
		return nil, fmt.Errorf("family.Members: not in a family: %w", domain.ErrNotFound)
	}

	members, err := s.families.ListMembers(ctx, *user.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("family.Members: %w", err)
	}
	return members, nil
}

// UpdateRole changes a member's role. Promoting someone to admin hands over
// the admin seat and demotes the current admin to editor.
func (s *Service) UpdateRole(ctx context.Context, in UpdateRoleInput) (*domain.FamilyMember, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	admin, familyID, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("family.UpdateRole: %w", err)
	}
	if in.UserID == admin.ID {
		return nil, domain.NewValidationError("user_id", "cannot change your own role")
	}

	if _, err := s.families.GetMember(ctx, familyID, in.UserID); err != nil {
		return nil, fmt.Errorf("family.UpdateRole: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.families.UpdateRole(ctx, familyID, in.UserID, in.Role); err != nil {
			return err
		}
		if in.Role != domain.FamilyRoleAdmin {
			return nil
		}
		if err := s.families.UpdateRole(ctx, familyID, admin.ID, domain.FamilyRoleEditor); err != nil {
			return err
		}
		return s.families.UpdateAdmin(ctx, familyID, in.UserID)
	})
	if err != nil {
		return nil, fmt.Errorf("family.UpdateRole: %w", err)
	}

	s.log.InfoContext(ctx, "family role changed",
		slog.String("family_id", familyID.String()),
		slog.String("user_id", in.UserID.String()),
		slog.String("role", in.Role.String()))

	m, err := s.families.GetMember(ctx, familyID, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("family.UpdateRole: %w", err)
	}
	return m, nil
}

// RemoveMember removes another member from the admin's family.
func (s *Service) RemoveMember(ctx context.Context, userID uuid.UUID) error {
	admin, familyID, err := s.requireAdmin(ctx)
	if err != nil {
		return fmt.Errorf("family.RemoveMember: %w", err)
	}
	if userID == admin.ID {
		return domain.NewValidationError("user_id", "cannot remove yourself, leave the family instead")
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.families.RemoveMember(ctx, familyID, userID); err != nil {
			return err
		}
		return s.users.SetFamily(ctx, userID, nil)
	})
	if err != nil {
		return fmt.Errorf("family.RemoveMember: %w", err)
	}

	s.log.InfoContext(ctx, "family member removed",
		slog.String("family_id", familyID.String()),
		slog.String("user_id", userID.String()))
	return nil
}

// Leave takes the authenticated user out of their family. The last member
// leaving deletes the family. An admin must hand over or remove the others first.
func (s *Service) Leave(ctx context.Context) error {
	user, err := s.currentUser(ctx)
	if err != nil {
		return fmt.Errorf("family.Leave: %w", err)
	}
	if user.FamilyID == nil {
		return fmt.Errorf("family.Leave: not in a family: %w", domain.ErrNotFound)
	}
	familyID := *user.FamilyID

	members, err := s.families.ListMembers(ctx, familyID)
	if err != nil {
		return fmt.Errorf("family.Leave: %w", err)
	}

	var me *domain.FamilyMember
	for i := range members {
		if members[i].UserID == user.ID {
			me = &members[i]
		}
	}
	if me == nil {
		return fmt.Errorf("family.Leave: not a member: %w", domain.ErrNotFound)
	}

	last := len(members) == 1
	if me.Role == domain.FamilyRoleAdmin && !last {
		return fmt.Errorf("family.Leave: admin must transfer the role or remove other members first: %w", domain.ErrConflict)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if last {
			return s.families.Delete(ctx, familyID)
		}
		if err := s.families.RemoveMember(ctx, familyID, user.ID); err != nil {
			return err
		}
		return s.users.SetFamily(ctx, user.ID, nil)
	})
	if err != nil {
		return fmt.Errorf("family.Leave: %w", err)
	}

	s.log.InfoContext(ctx, "family left",
		slog.String("family_id", familyID.String()),
		slog.String("user_id", user.ID.String()),
		slog.Bool("deleted", last))
	return nil
}

// RegenerateCode replaces the invite code. Old codes stop working immediately.
func (s *Service) RegenerateCode(ctx context.Context) (string, error) {
	_, familyID, err := s.requireAdmin(ctx)
	if err != nil {
		return "", fmt.Errorf("family.RegenerateCode: %w", err)
	}

	for range maxCodeAttempts {
		code, err := s.newCode()
		if err != nil {
			return "", fmt.Errorf("family.RegenerateCode: generate code: %w", err)
		}
		err = s.families.UpdateInviteCode(ctx, familyID, code)
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("family.RegenerateCode: %w", err)
		}
		s.log.InfoContext(ctx, "invite code regenerated", slog.String("family_id", familyID.String()))
		return code, nil
	}
	return "", fmt.Errorf("family.RegenerateCode: no free invite code: %w", domain.ErrConflict)
}

// Delete removes the admin's family. Members stay as users and keep their items;
// the family shopping items move to the personal list of whoever created it.
func (s *Service) Delete(ctx context.Context) error {
	_, familyID, err := s.requireAdmin(ctx)
	if err != nil {
		return fmt.Errorf("family.Delete: %w", err)
	}

	// The shopping list merge and the family row go together.
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.families.Delete(ctx, familyID)
	})
	if err != nil {
		return fmt.Errorf("family.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "family deleted", slog.String("family_id", familyID.String()))
	return nil
}

func (s *Service) details(ctx context.Context, familyID uuid.UUID) (*Details, error) {
	f, err := s.families.GetByID(ctx, familyID)
	if err != nil {
		return nil, err
	}
	members, err := s.families.ListMembers(ctx, familyID)
	if err != nil {
		return nil, err
	}
	f.MemberCount = len(members)
	return &Details{Family: *f, Members: members}, nil
}

// requireAdmin resolves the authenticated user and checks they administer a family.
func (s *Service) requireAdmin(ctx context.Context) (*domain.User, uuid.UUID, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if user.FamilyID == nil {
		return nil, uuid.Nil, fmt.Errorf("not in a family: %w", domain.ErrNotFound)
	}

	m, err := s.families.GetMember(ctx, *user.FamilyID, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, uuid.Nil, domain.ErrForbidden
		}
		return nil, uuid.Nil, err
	}
	if m.Role != domain.FamilyRoleAdmin {
		return nil, uuid.Nil, fmt.Errorf("admin only: %w", domain.ErrForbidden)
	}
	return user, *user.FamilyID, nil
}

func (s *Service) currentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// checkAchievements runs after membership changes; failures only get logged.
func (s *Service) checkAchievements(ctx context.Context) {
	if _, err := s.achievements.CheckAchievements(ctx); err != nil {
		s.log.WarnContext(ctx, "achievement check failed", slog.String("error", err.Error()))
	}
}
