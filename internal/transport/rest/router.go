package rest

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/freshkeep-backend/internal/config"
	"github.com/heartmarshall/freshkeep-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type requestRecorder interface {
	RequestStarted() func(method, route string, status int, d time.Duration)
}

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Inventory    *InventoryHandler
	Recipe       *RecipeHandler
	Notification *NotificationHandler
	Analytics    *AnalyticsHandler
	Shopping     *ShoppingHandler
	Family       *FamilyHandler
	Settings     *SettingsHandler
	Stream       http.Handler
}

// RouterDeps holds the cross-cutting pieces of the middleware chain.
type RouterDeps struct {
	Logger      *slog.Logger
	Validator   tokenValidator
	Recorder    requestRecorder
	Metrics     http.Handler // nil disables GET /metrics
	RateLimiter *middleware.RateLimiter
	RateLimit   config.RateLimitConfig
	CORS        config.CORSConfig
	AudioDir    string // empty disables GET /audio/
}

// NewRouter registers every route and wraps the mux in the global chain:
// RequestID, Logger, Recovery, Metrics, CORS, Auth.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	authLimited := deps.RateLimiter.PerIP(deps.RateLimit.AuthPerMinute)
	protected := middleware.Chain(
		middleware.RequireAuth(),
		deps.RateLimiter.PerUser(deps.RateLimit.APIPerSecond, deps.RateLimit.APIBurst),
	)

	public := func(pattern string, fn http.HandlerFunc) { mux.Handle(pattern, fn) }
	limited := func(pattern string, fn http.HandlerFunc) { mux.Handle(pattern, authLimited(fn)) }
	private := func(pattern string, fn http.HandlerFunc) { mux.Handle(pattern, protected(fn)) }

	// Operational
	public("GET /live", h.Health.Live)
	public("GET /ready", h.Health.Ready)
	public("GET /health", h.Health.Health)
	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics)
	}
	if deps.AudioDir != "" {
		mux.Handle("GET /audio/", http.StripPrefix("/audio/", http.FileServer(filesOnly{http.Dir(deps.AudioDir)})))
	}

	// Auth
	limited("POST /api/auth/signup", h.Auth.Signup)
	limited("POST /api/auth/login", h.Auth.Login)
	limited("POST /api/auth/refresh", h.Auth.Refresh)
	limited("POST /api/auth/logout", h.Auth.Logout)
	limited("POST /api/auth/forgot-password", h.Auth.ForgotPassword)
	limited("POST /api/auth/reset-password", h.Auth.ResetPassword)
	private("GET /api/auth/me", h.Auth.Me)
	private("PUT /api/auth/me", h.Auth.UpdateMe)

	// Inventory
	private("GET /api/inventory", h.Inventory.List)
	private("POST /api/inventory", h.Inventory.Create)
	private("GET /api/inventory/expiring", h.Inventory.Expiring)
	private("GET /api/inventory/expired", h.Inventory.Expired)
	private("GET /api/inventory/stats", h.Inventory.Stats)
	private("GET /api/inventory/barcode/{upc}", h.Inventory.Barcode)
	private("POST /api/inventory/receipt", h.Inventory.Receipt)
	private("POST /api/inventory/receipt/confirm", h.Inventory.ConfirmReceipt)
	private("GET /api/inventory/{id}", h.Inventory.Get)
	private("PUT /api/inventory/{id}", h.Inventory.Update)
	private("DELETE /api/inventory/{id}", h.Inventory.Delete)
	private("POST /api/inventory/{id}/consume", h.Inventory.Consume)
	private("POST /api/inventory/{id}/waste", h.Inventory.Waste)

	// Recipes
	private("GET /api/recipes", h.Recipe.Recommend)
	private("GET /api/recipes/{id}", h.Recipe.Detail)
	private("POST /api/recipes/{id}/cooked", h.Recipe.Cooked)

	// Notifications. The stream authenticates itself so browsers can pass
	// the token as a query parameter.
	if h.Stream != nil {
		mux.Handle("GET /api/notifications/ws", h.Stream)
	}
	private("GET /api/notifications", h.Notification.List)
	private("POST /api/notifications/dismiss", h.Notification.Dismiss)
	private("POST /api/notifications/dismiss-all", h.Notification.DismissAll)
	private("POST /api/notifications/{id}/snooze", h.Notification.Snooze)
	private("DELETE /api/notifications/{id}", h.Notification.Delete)
	private("GET /api/notifications/vapid-key", h.Notification.VAPIDKey)
	private("POST /api/notifications/push-subscriptions", h.Notification.Subscribe)
	private("DELETE /api/notifications/push-subscriptions", h.Notification.Unsubscribe)

	// Analytics
	private("GET /api/analytics/summary", h.Analytics.Summary)
	private("GET /api/analytics/time-period", h.Analytics.TimePeriod)
	private("GET /api/analytics/insights", h.Analytics.Insights)
	private("GET /api/analytics/achievements", h.Analytics.Achievements)
	private("POST /api/analytics/check-achievements", h.Analytics.CheckAchievements)

	// Shopping list
	private("GET /api/shopping-list", h.Shopping.Get)
	private("POST /api/shopping-list/items", h.Shopping.Add)
	private("PUT /api/shopping-list/items/{id}", h.Shopping.Update)
	private("DELETE /api/shopping-list/items/{id}", h.Shopping.Delete)
	private("POST /api/shopping-list/items/{id}/toggle", h.Shopping.Toggle)
	private("POST /api/shopping-list/clear-checked", h.Shopping.ClearChecked)
	private("POST /api/shopping-list/generate", h.Shopping.Generate)
	private("POST /api/shopping-list/import", h.Shopping.Import)

	// Family
	private("POST /api/family", h.Family.Create)
	private("GET /api/family", h.Family.Get)
	private("DELETE /api/family", h.Family.Delete)
	private("POST /api/family/join", h.Family.Join)
	private("GET /api/family/members", h.Family.Members)
	private("DELETE /api/family/members/{userID}", h.Family.RemoveMember)
	private("PUT /api/family/permissions", h.Family.UpdateRole)
	private("POST /api/family/leave", h.Family.Leave)
	private("POST /api/family/regenerate-code", h.Family.RegenerateCode)

	// Settings
	private("GET /api/settings", h.Settings.Get)
	private("PUT /api/settings", h.Settings.Update)
	private("POST /api/settings/export", h.Settings.Export)

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.Metrics(deps.Recorder, routeOf(mux)),
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Validator),
	)
	return chain(mux)
}

// filesOnly hides directories so the audio mount never lists its contents.
type filesOnly struct {
	http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	st, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if st.IsDir() {
		_ = file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}

// routeOf resolves the registered pattern for metric labels.
func routeOf(mux *http.ServeMux) func(r *http.Request) string {
	return func(r *http.Request) string {
		if _, pattern := mux.Handler(r); pattern != "" {
			return pattern
		}
		return "unmatched"
	}
}
