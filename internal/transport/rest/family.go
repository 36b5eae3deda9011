package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/service/family"
)

type familyService interface {
	Create(ctx context.Context, in family.CreateInput) (*domain.Family, error)
	Join(ctx context.Context, in family.JoinInput) (*family.Details, error)
	Get(ctx context.Context) (*family.Details, error)
	Members(ctx context.Context) ([]domain.FamilyMember, error)
	UpdateRole(ctx context.Context, in family.UpdateRoleInput) (*domain.FamilyMember, error)
	RemoveMember(ctx context.Context, userID uuid.UUID) error
	Leave(ctx context.Context) error
	RegenerateCode(ctx context.Context) (string, error)
	Delete(ctx context.Context) error
}

// FamilyHandler serves /api/family endpoints.
type FamilyHandler struct {
	svc familyService
	log *slog.Logger
}

// NewFamilyHandler creates a FamilyHandler.
func NewFamilyHandler(svc familyService, logger *slog.Logger) *FamilyHandler {
	return &FamilyHandler{svc: svc, log: logger.With("handler", "family")}
}

type createFamilyRequest struct {
	Name string `json:"name"`
}

type joinFamilyRequest struct {
	InviteCode string `json:"invite_code"`
}

type updateRoleRequest struct {
	UserID uuid.UUID         `json:"user_id"`
	Role   domain.FamilyRole `json:"role"`
}

type membersResponse struct {
	Members []memberResponse `json:"members"`
	Count   int              `json:"count"`
}

type inviteCodeResponse struct {
	InviteCode string `json:"invite_code"`
}

// Create handles POST /api/family.
func (h *FamilyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFamilyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	f, err := h.svc.Create(r.Context(), family.CreateInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFamily(f, nil))
}

// Join handles POST /api/family/join.
func (h *FamilyHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req joinFamilyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Join(r.Context(), family.JoinInput{InviteCode: req.InviteCode})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFamily(&d.Family, d.Members))
}

// Get handles GET /api/family.
func (h *FamilyHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFamily(&d.Family, d.Members))
}

// Members handles GET /api/family/members.
func (h *FamilyHandler) Members(w http.ResponseWriter, r *http.Request) {
	ms, err := h.svc.Members(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, membersResponse{Members: toMembers(ms), Count: len(ms)})
}

// UpdateRole handles PUT /api/family/permissions.
func (h *FamilyHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req updateRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.UpdateRole(r.Context(), family.UpdateRoleInput{UserID: req.UserID, Role: req.Role})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMember(*m))
}

// RemoveMember handles DELETE /api/family/members/{userID}.
func (h *FamilyHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.RemoveMember(r.Context(), userID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeNoContent(w)
}

// Leave handles POST /api/family/leave.
func (h *FamilyHandler) Leave(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Leave(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeNoContent(w)
}

// RegenerateCode handles POST /api/family/regenerate-code.
func (h *FamilyHandler) RegenerateCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.svc.RegenerateCode(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, inviteCodeResponse{InviteCode: code})
}

// Delete handles DELETE /api/family.
func (h *FamilyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeNoContent(w)
}
