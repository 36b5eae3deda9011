package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/freshkeep-backend/internal/adapter/cache"
	"github.com/heartmarshall/freshkeep-backend/internal/adapter/mailer"
	"github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres"
	analyticsrepo "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres/analytics"
	familyrepo "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres/family"
	itemrepo "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres/item"
	logrepo "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres/logs"
	notificationrepo "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres/notification"
	shoppingrepo "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres/shopping"
	tokenrepo "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/freshkeep-backend/internal/adapter/provider/elevenlabs"
	"github.com/heartmarshall/freshkeep-backend/internal/adapter/provider/localcatalog"
	"github.com/heartmarshall/freshkeep-backend/internal/adapter/provider/ocrspace"
	"github.com/heartmarshall/freshkeep-backend/internal/adapter/provider/openfoodfacts"
	"github.com/heartmarshall/freshkeep-backend/internal/adapter/provider/spoonacular"
	"github.com/heartmarshall/freshkeep-backend/internal/adapter/provider/upcitemdb"
	"github.com/heartmarshall/freshkeep-backend/internal/adapter/push"
	"github.com/heartmarshall/freshkeep-backend/internal/adapter/storage"
	jwtauth "github.com/heartmarshall/freshkeep-backend/internal/auth"
	"github.com/heartmarshall/freshkeep-backend/internal/config"
	"github.com/heartmarshall/freshkeep-backend/internal/metrics"
	"github.com/heartmarshall/freshkeep-backend/internal/service/analytics"
	"github.com/heartmarshall/freshkeep-backend/internal/service/auth"
	"github.com/heartmarshall/freshkeep-backend/internal/service/family"
	"github.com/heartmarshall/freshkeep-backend/internal/service/inventory"
	"github.com/heartmarshall/freshkeep-backend/internal/service/notification"
	"github.com/heartmarshall/freshkeep-backend/internal/service/recipe"
	"github.com/heartmarshall/freshkeep-backend/internal/service/shopping"
	"github.com/heartmarshall/freshkeep-backend/internal/service/speech"
	"github.com/heartmarshall/freshkeep-backend/internal/service/user"
	"github.com/heartmarshall/freshkeep-backend/internal/transport/rest"
	"github.com/heartmarshall/freshkeep-backend/internal/transport/ws"
	"github.com/heartmarshall/freshkeep-backend/internal/worker"
)

const cacheKeyPrefix = "freshkeep:"

type audioStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
	URL(key string) string
}

type productCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

// container holds the wired repositories and services.
type container struct {
	items *itemrepo.Repo
	users *userrepo.Repo

	hub          *ws.Hub
	auth         *auth.Service
	inventory    *inventory.Service
	recipes      *recipe.Service
	notification *notification.Service
	analytics    *analytics.Service
	shopping     *shopping.Service
	family       *family.Service
	user         *user.Service

	redis    *cache.Redis
	audioDir string
	closers  []func() error
}

func newContainer(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, m *metrics.Metrics, logger *slog.Logger) (*container, error) {
	c := &container{}

	tx := postgres.NewTxManager(pool)
	c.items = itemrepo.New(pool)
	c.users = userrepo.New(pool)
	families := familyrepo.New(pool)
	tokens := tokenrepo.New(pool)
	logs := logrepo.New(pool)
	rollups := analyticsrepo.New(pool)
	notifications := notificationrepo.New(pool)
	lists := shoppingrepo.New(pool)

	var products productCache = cache.Noop{}
	if cfg.Redis.URL != "" {
		r, err := cache.NewRedis(ctx, cfg.Redis.URL, cacheKeyPrefix, logger)
		if err != nil {
			return nil, err
		}
		products = r
		c.redis = r
		c.closers = append(c.closers, r.Close)
	}

	store, err := c.newAudioStore(cfg)
	if err != nil {
		return nil, err
	}

	c.hub = ws.NewHub(logger, m)

	voice := speech.NewService(logger,
		elevenlabs.NewProvider(cfg.TTS.APIKey, cfg.TTS.BaseURL, cfg.TTS.ModelID, cfg.TTS.Timeout, logger),
		store, cfg.TTS.VoiceID)

	c.notification = notification.NewService(logger, notifications, c.hub,
		push.NewSender(cfg.Push.VAPIDPublicKey, cfg.Push.VAPIDPrivateKey, cfg.Push.Subscriber), voice)

	c.analytics = analytics.NewService(logger, rollups, c.users, logs, c.items, c.notification, m)

	c.inventory = inventory.NewService(logger, c.items, logs, c.users, families, c.analytics, tx,
		inventory.Lookups{
			Local: localcatalog.New(),
			Remote: []inventory.ProductLookup{
				openfoodfacts.NewProvider(cfg.Barcode.OpenFoodFactsURL, cfg.Barcode.Timeout, logger),
				upcitemdb.NewProvider(cfg.Barcode.UPCItemDBURL, cfg.Barcode.Timeout, logger),
			},
			Cache:    products,
			CacheTTL: cfg.Redis.BarcodeTTL,
		},
		ocrspace.NewProvider(cfg.OCR.APIKey, cfg.OCR.BaseURL, cfg.OCR.Timeout, logger),
	)

	c.recipes = recipe.NewService(logger, c.users, c.items,
		spoonacular.NewProvider(cfg.Recipe.SpoonacularAPIKey, cfg.Recipe.BaseURL, cfg.Recipe.Timeout, logger),
		c.analytics, products)

	c.shopping = shopping.NewService(logger, lists, c.users, c.items, c.inventory, tx)
	c.family = family.NewService(logger, families, c.users, c.analytics, c.notification, tx)
	c.user = user.NewService(logger, c.users, c.items, logs, rollups, tx)

	c.auth = auth.NewService(logger, c.users, tokens, tx,
		jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		mailer.NewLog(logger, cfg.Server.PublicURL), cfg.Auth)

	return c, nil
}

// newAudioStore picks S3 or the local directory served under /audio/.
func (c *container) newAudioStore(cfg *config.Config) (audioStore, error) {
	if strings.EqualFold(cfg.Storage.Driver, "s3") {
		return storage.NewS3(storage.S3Config{
			Bucket:        cfg.Storage.S3Bucket,
			Region:        cfg.Storage.S3Region,
			Endpoint:      cfg.Storage.S3Endpoint,
			AccessKey:     cfg.Storage.S3AccessKey,
			SecretKey:     cfg.Storage.S3SecretKey,
			PublicBaseURL: cfg.Storage.PublicBaseURL,
		}), nil
	}

	base := cfg.Storage.PublicBaseURL
	if base == "" {
		base = strings.TrimRight(cfg.Server.PublicURL, "/") + "/audio"
	}
	local, err := storage.NewLocal(cfg.Storage.LocalDir, base)
	if err != nil {
		return nil, fmt.Errorf("audio storage: %w", err)
	}
	c.audioDir = local.Dir()
	return local, nil
}

func (c *container) handlers(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) rest.Handlers {
	return rest.Handlers{
		Health:       rest.NewHealthHandler(pool, BuildVersion(), c.healthOptions(cfg)...),
		Auth:         rest.NewAuthHandler(c.auth, logger),
		Inventory:    rest.NewInventoryHandler(c.inventory, cfg.Server.MaxUploadMB, logger),
		Recipe:       rest.NewRecipeHandler(c.recipes, logger),
		Notification: rest.NewNotificationHandler(c.notification, logger),
		Analytics:    rest.NewAnalyticsHandler(c.analytics, logger),
		Shopping:     rest.NewShoppingHandler(c.shopping, logger),
		Family:       rest.NewFamilyHandler(c.family, logger),
		Settings:     rest.NewSettingsHandler(c.user, logger),
		Stream:       ws.Handler(c.hub, c.auth, cfg.CORS.Origins(), logger),
	}
}

func (c *container) healthOptions(cfg *config.Config) []rest.HealthOption {
	opts := []rest.HealthOption{rest.WithIntegrations(map[string]bool{
		"ocr":     cfg.OCR.APIKey != "",
		"recipes": cfg.Recipe.SpoonacularAPIKey != "",
		"voice":   cfg.TTS.APIKey != "",
		"push":    cfg.Push.Enabled(),
	})}
	if c.redis != nil {
		opts = append(opts, rest.WithCache(c.redis))
	}
	return opts
}

func (c *container) jobs(logger *slog.Logger) *worker.Jobs {
	return worker.NewJobs(logger, c.items, c.users, c.notification, c.analytics, c.auth)
}

func (c *container) close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		_ = c.closers[i]()
	}
}
