package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
	OCR       OCRConfig       `yaml:"ocr"`
	Barcode   BarcodeConfig   `yaml:"barcode"`
	Recipe    RecipeConfig    `yaml:"recipe"`
	TTS       TTSConfig       `yaml:"tts"`
	Storage   StorageConfig   `yaml:"storage"`
	Push      PushConfig      `yaml:"push"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"15s"`
	MaxUploadMB     int64         `yaml:"max_upload_mb"    env:"SERVER_MAX_UPLOAD_MB"    env-default:"10"`
	PublicURL       string        `yaml:"public_url"       env:"SERVER_PUBLIC_URL"       env-default:"http://localhost:8080"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"20"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"freshkeep"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"30m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"168h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	ResetTokenTTL    time.Duration `yaml:"reset_token_ttl"    env:"AUTH_RESET_TOKEN_TTL"    env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig bounds request rates. Auth limits are per client IP, API limits per user.
type RateLimitConfig struct {
	AuthPerMinute int     `yaml:"auth_per_minute" env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"10"`
	APIPerSecond  float64 `yaml:"api_per_second"  env:"RATE_LIMIT_API_PER_SECOND"  env-default:"20"`
	APIBurst      int     `yaml:"api_burst"       env:"RATE_LIMIT_API_BURST"       env-default:"40"`
}

// RedisConfig configures the barcode lookup cache. An empty URL disables caching.
type RedisConfig struct {
	URL        string        `yaml:"url"         env:"REDIS_URL"`
	BarcodeTTL time.Duration `yaml:"barcode_ttl" env:"REDIS_BARCODE_TTL" env-default:"720h"`
}

// OCRConfig configures the OCR.space receipt reader.
type OCRConfig struct {
	APIKey  string        `yaml:"api_key"  env:"OCR_SPACE_API_KEY"`
	BaseURL string        `yaml:"base_url" env:"OCR_SPACE_BASE_URL" env-default:"https://api.ocr.space"`
	Timeout time.Duration `yaml:"timeout"  env:"OCR_SPACE_TIMEOUT"  env-default:"60s"`
}

// BarcodeConfig configures the product lookup providers.
type BarcodeConfig struct {
	OpenFoodFactsURL string        `yaml:"off_base_url" env:"BARCODE_OFF_BASE_URL" env-default:"https://world.openfoodfacts.org"`
	UPCItemDBURL     string        `yaml:"upc_base_url" env:"BARCODE_UPC_BASE_URL" env-default:"https://api.upcitemdb.com"`
	Timeout          time.Duration `yaml:"timeout"      env:"BARCODE_TIMEOUT"      env-default:"10s"`
}

// RecipeConfig configures Spoonacular. Without an API key the built-in catalog is used.
type RecipeConfig struct {
	SpoonacularAPIKey string        `yaml:"spoonacular_api_key" env:"SPOONACULAR_API_KEY"`
	BaseURL           string        `yaml:"base_url"            env:"SPOONACULAR_BASE_URL" env-default:"https://api.spoonacular.com"`
	Timeout           time.Duration `yaml:"timeout"             env:"SPOONACULAR_TIMEOUT"  env-default:"15s"`
}

// TTSConfig configures ElevenLabs voice alerts. Without an API key voice is disabled.
type TTSConfig struct {
	APIKey  string        `yaml:"elevenlabs_api_key" env:"ELEVENLABS_API_KEY"`
	BaseURL string        `yaml:"base_url"           env:"ELEVENLABS_BASE_URL" env-default:"https://api.elevenlabs.io"`
	VoiceID string        `yaml:"voice_id"           env:"ELEVENLABS_VOICE_ID" env-default:"21m00Tcm4TlvDq8ikWAM"`
	ModelID string        `yaml:"model_id"           env:"ELEVENLABS_MODEL_ID" env-default:"eleven_monolingual_v1"`
	Timeout time.Duration `yaml:"timeout"            env:"ELEVENLABS_TIMEOUT"  env-default:"30s"`
}

// StorageConfig selects where generated audio files are written.
type StorageConfig struct {
	Driver        string `yaml:"driver"          env:"STORAGE_DRIVER"          env-default:"local"`
	LocalDir      string `yaml:"local_dir"       env:"STORAGE_LOCAL_DIR"       env-default:"./data/audio"`
	S3Bucket      string `yaml:"s3_bucket"       env:"STORAGE_S3_BUCKET"`
	S3Region      string `yaml:"s3_region"       env:"STORAGE_S3_REGION"       env-default:"us-east-1"`
	S3Endpoint    string `yaml:"s3_endpoint"     env:"STORAGE_S3_ENDPOINT"`
	S3AccessKey   string `yaml:"s3_access_key"   env:"STORAGE_S3_ACCESS_KEY"`
	S3SecretKey   string `yaml:"s3_secret_key"   env:"STORAGE_S3_SECRET_KEY"`
	PublicBaseURL string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`
}

// PushConfig holds VAPID credentials for Web Push. Empty keys disable push delivery.
type PushConfig struct {
	VAPIDPublicKey  string `yaml:"vapid_public_key"  env:"PUSH_VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey string `yaml:"vapid_private_key" env:"PUSH_VAPID_PRIVATE_KEY"`
	Subscriber      string `yaml:"subscriber"        env:"PUSH_SUBSCRIBER" env-default:"mailto:admin@freshkeep.app"`
}

// Enabled reports whether both VAPID keys are configured.
func (c PushConfig) Enabled() bool {
	return c.VAPIDPublicKey != "" && c.VAPIDPrivateKey != ""
}

// SchedulerConfig holds cron specs for background jobs (minute hour dom month dow).
type SchedulerConfig struct {
	Enabled      bool   `yaml:"enabled"       env:"SCHEDULER_ENABLED"`
	Freshness    string `yaml:"freshness"     env:"SCHEDULER_FRESHNESS"     env-default:"5 * * * *"`
	Alerts       string `yaml:"alerts"        env:"SCHEDULER_ALERTS"        env-default:"0 * * * *"`
	Achievements string `yaml:"achievements"  env:"SCHEDULER_ACHIEVEMENTS"  env-default:"0 23 * * 0"`
	TokenCleanup string `yaml:"token_cleanup" env:"SCHEDULER_TOKEN_CLEANUP" env-default:"30 3 * * *"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" env:"METRICS_ENABLED"`
}

// Origins splits the comma-separated origin list.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
