package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/service/user"
)

type settingsService interface {
	GetSettings(ctx context.Context) (*user.Settings, error)
	UpdateSettings(ctx context.Context, in user.UpdateSettingsInput) (*user.Settings, error)
	Export(ctx context.Context, in user.ExportInput) (*user.Export, error)
}

// SettingsHandler serves /api/settings endpoints.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type settingsResponse struct {
	Notifications domain.NotificationSettings `json:"notifications"`
	Food          domain.FoodPreferences      `json:"food"`
	Expiration    domain.ExpirationSettings   `json:"expiration"`
	Timezone      string                      `json:"timezone"`
	Language      string                      `json:"language"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

type updateSettingsRequest struct {
	Notifications *domain.NotificationSettings `json:"notifications"`
	Food          *domain.FoodPreferences      `json:"food"`
	Expiration    *domain.ExpirationSettings   `json:"expiration"`
	Timezone      *string                      `json:"timezone"`
	Language      *string                      `json:"language"`
}

type exportRequest struct {
	Format    string  `json:"format"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func toSettings(s *user.Settings) settingsResponse {
	return settingsResponse{
		Notifications: s.Notifications,
		Food:          s.Food,
		Expiration:    s.Expiration,
		Timezone:      s.Timezone,
		Language:      s.Language,
		UpdatedAt:     s.UpdatedAt,
	}
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSettings(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettings(s))
}

// Update handles PUT /api/settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.UpdateSettings(r.Context(), user.UpdateSettingsInput{
		Notifications: req.Notifications,
		Food:          req.Food,
		Expiration:    req.Expiration,
		Timezone:      req.Timezone,
		Language:      req.Language,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettings(s))
}

// Export handles POST /api/settings/export and returns the document as an
// attachment. An empty body exports everything as JSON.
func (h *SettingsHandler) Export(w http.ResponseWriter, r *http.Request) {
	req := exportRequest{Format: string(user.ExportJSON)}
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	from, err := parseDate("start_date", req.StartDate)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	to, err := parseDate("end_date", req.EndDate)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	exp, err := h.svc.Export(r.Context(), user.ExportInput{
		Format: user.ExportFormat(req.Format),
		From:   from,
		To:     to,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", exp.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exp.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(exp.Data)
}
