package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/freshkeep-backend/internal/config"
)

const redacted = "[REDACTED]"

// sensitiveKeys are attribute names whose values never reach the log output.
var sensitiveKeys = map[string]bool{
	"password":      true,
	"new_password":  true,
	"token":         true,
	"refresh_token": true,
	"access_token":  true,
	"authorization": true,
	"p256dh":        true,
	"auth_secret":   true,
}

// NewLogger builds the process logger on stderr and installs it as the slog default.
// "json" is the production format; "text" adds source locations for local runs.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: redact,
	}

	var h slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With(slog.String("app", "freshkeep"))
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if sensitiveKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, redacted)
	}
	return a
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}
