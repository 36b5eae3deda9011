package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/service/notification"
)

type notificationService interface {
	List(ctx context.Context, in notification.ListInput) (*notification.ListResult, error)
	Dismiss(ctx context.Context, in notification.DismissInput) (int64, error)
	DismissAll(ctx context.Context) (int64, error)
	Snooze(ctx context.Context, in notification.SnoozeInput) (*time.Time, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Subscribe(ctx context.Context, in notification.SubscribeInput) (*domain.PushSubscription, error)
	Unsubscribe(ctx context.Context, endpoint string) error
	VAPIDPublicKey() (string, error)
}

// NotificationHandler serves /api/notifications endpoints. The websocket
// stream is served by the ws package.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

type dismissRequest struct {
	IDs []uuid.UUID `json:"notification_ids"`
}

type snoozeRequest struct {
	Hours int `json:"hours"`
}

type subscriptionRequest struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

type unsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}

type notificationsResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

type snoozeResponse struct {
	SnoozedUntil time.Time `json:"snoozed_until"`
}

type vapidResponse struct {
	PublicKey string `json:"public_key"`
}

type subscriptionResponse struct {
	ID        uuid.UUID `json:"id"`
	Endpoint  string    `json:"endpoint"`
	CreatedAt time.Time `json:"created_at"`
}

// List handles GET /api/notifications?unread_only=true&limit=50.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	unreadOnly, err := queryBool(r, "unread_only", false)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.List(r.Context(), notification.ListInput{UnreadOnly: unreadOnly, Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notificationsResponse{
		Notifications: toNotifications(res.Notifications),
		UnreadCount:   res.UnreadCount,
	})
}

// Dismiss handles POST /api/notifications/dismiss.
func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	var req dismissRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.Dismiss(r.Context(), notification.DismissInput{IDs: req.IDs})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// DismissAll handles POST /api/notifications/dismiss-all.
func (h *NotificationHandler) DismissAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.DismissAll(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// Snooze handles POST /api/notifications/{id}/snooze.
func (h *NotificationHandler) Snooze(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req snoozeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	until, err := h.svc.Snooze(r.Context(), notification.SnoozeInput{ID: id, Hours: req.Hours})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snoozeResponse{SnoozedUntil: *until})
}

// Delete handles DELETE /api/notifications/{id}.
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeNoContent(w)
}

// VAPIDKey handles GET /api/notifications/vapid-key.
func (h *NotificationHandler) VAPIDKey(w http.ResponseWriter, r *http.Request) {
	key, err := h.svc.VAPIDPublicKey()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vapidResponse{PublicKey: key})
}

// Subscribe handles POST /api/notifications/push-subscriptions.
func (h *NotificationHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sub, err := h.svc.Subscribe(r.Context(), notification.SubscribeInput{
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, subscriptionResponse{ID: sub.ID, Endpoint: sub.Endpoint, CreatedAt: sub.CreatedAt})
}

// Unsubscribe handles DELETE /api/notifications/push-subscriptions.
func (h *NotificationHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req unsubscribeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Unsubscribe(r.Context(), req.Endpoint); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeNoContent(w)
}
