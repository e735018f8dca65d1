package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds splitting defaults and service-mode settings. Values come
// from the environment, optionally overlaid by a yaml config file; command
// flags win over both.
type Config struct {
	// HTTP service mode
	Port   string `yaml:"port"`
	APIKey string `yaml:"api_key"`

	// Request limits
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// Splitting defaults
	MaxLevel         int    `yaml:"max_level"`
	OutDir           string `yaml:"out_dir"`
	WriteConcurrency int    `yaml:"write_concurrency"`

	// Slug formatting
	SlugReplacement string `yaml:"slug_replacement"`
	SlugLocale      string `yaml:"slug_locale"`
}

// Load builds the configuration from environment variables with defaults.
func Load() Config {
	cfg := Config{
		Port:   envOr("PORT", "8091"),
		APIKey: os.Getenv("DOCSPLIT_API_KEY"),

		MaxBodyBytes: envInt64("MAX_BODY_BYTES", 10485760), // 10MB

		MaxLevel:         envInt("DEFAULT_MAX_LEVEL", 3),
		OutDir:           envOr("DEFAULT_OUT_DIR", "out"),
		WriteConcurrency: envInt("WRITE_CONCURRENCY", 4),

		SlugReplacement: envOr("SLUG_REPLACEMENT", "-"),
		SlugLocale:      os.Getenv("SLUG_LOCALE"),
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 10485760
	}
	if cfg.WriteConcurrency <= 0 {
		cfg.WriteConcurrency = 4
	}

	return cfg
}

// LoadFile overlays settings from a yaml file onto cfg. A missing file is
// only an error when the path was explicitly requested.
func LoadFile(cfg Config, path string, explicit bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if file.Port != "" {
		cfg.Port = file.Port
	}
	if file.APIKey != "" {
		cfg.APIKey = file.APIKey
	}
	if file.MaxBodyBytes > 0 {
		cfg.MaxBodyBytes = file.MaxBodyBytes
	}
	if file.MaxLevel > 0 {
		cfg.MaxLevel = file.MaxLevel
	}
	if file.OutDir != "" {
		cfg.OutDir = file.OutDir
	}
	if file.WriteConcurrency > 0 {
		cfg.WriteConcurrency = file.WriteConcurrency
	}
	if file.SlugReplacement != "" {
		cfg.SlugReplacement = file.SlugReplacement
	}
	if file.SlugLocale != "" {
		cfg.SlugLocale = file.SlugLocale
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxLevel < 1 || c.MaxLevel > 6 {
		return fmt.Errorf("max level must be between 1 and 6, got %d", c.MaxLevel)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
