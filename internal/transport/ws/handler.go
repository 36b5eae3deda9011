package ws

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/heartmarshall/freshkeep-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Handler upgrades GET /api/notifications/ws. Browsers cannot set headers on
// websocket requests, so the access token may also come from the token query
// parameter.
func Handler(hub *Hub, validator tokenValidator, origins []string, logger *slog.Logger) http.HandlerFunc {
	log := logger.With("handler", "ws")
	opts := &websocket.AcceptOptions{OriginPatterns: origins}
	for _, o := range origins {
		if o == "*" {
			opts = &websocket.AcceptOptions{InsecureSkipVerify: true}
			break
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.BearerToken(r)
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		userID, err := validator.ValidateToken(r.Context(), token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		conn, err := websocket.Accept(w, r, opts)
		if err != nil {
			log.WarnContext(r.Context(), "accept", slog.String("error", err.Error()))
			return
		}
		defer conn.CloseNow() //nolint:errcheck

		NewClient(hub, conn, userID).Run(r.Context())
		conn.Close(websocket.StatusNormalClosure, "") //nolint:errcheck
	}
}
