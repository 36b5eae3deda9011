package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPaths are tried in order when CONFIG_PATH is unset.
var defaultPaths = []string{"./config.yaml", "./config/freshkeep.yaml"}

// Load builds the configuration from an optional YAML file plus environment
// variables, then validates it. Environment wins over YAML, YAML over the
// env-default tags. A CONFIG_PATH that does not exist is an error; missing
// default files are not.
//
// Booleans that default to true are pre-filled instead of tagged: cleanenv
// applies env-default to any zero field, which would turn an explicit YAML
// false back into true.
func Load() (*Config, error) {
	path, err := resolvePath()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := newDefaults()
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", sourceName(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func newDefaults() Config {
	var cfg Config
	cfg.Database.AutoMigrate = true
	cfg.Scheduler.Enabled = true
	cfg.Metrics.Enabled = true
	return cfg
}

func resolvePath() (string, error) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("file %s: %w", p, err)
		}
		return p, nil
	}
	for _, p := range defaultPaths {
		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("file %s: %w", p, err)
		}
	}
	return "", nil
}

func sourceName(path string) string {
	if path == "" {
		return "env"
	}
	return path
}
