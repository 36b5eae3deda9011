package domain

import (
	"time"

	"github.com/google/uuid"
)

// InviteCodeLength is the number of characters in a family invite code.
const InviteCodeLength = 6

// InviteCodeAlphabet is the set of characters invite codes are drawn from.
const InviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Family is a household that shares an inventory and a shopping list.
type Family struct {
	ID          uuid.UUID
	Name        string
	AdminID     uuid.UUID
	InviteCode  string
	MemberCount int
	CreatedAt   time.Time
}

// FamilyMember links a user to a family with a role.
type FamilyMember struct {
	ID       uuid.UUID
	FamilyID uuid.UUID
	UserID   uuid.UUID
	Role     FamilyRole
	Name     string
	Email    string
	JoinedAt time.Time
}

// CanEdit reports whether the member may change shared inventory.
func (m *FamilyMember) CanEdit() bool {
	return m.Role == FamilyRoleAdmin || m.Role == FamilyRoleEditor
}
