package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default values for the server configuration.
const (
	DefaultHost            = "localhost"
	DefaultPort            = 8082
	DefaultRefreshInterval = 30 * time.Second
	DefaultStreamInterval  = 5 * time.Second
)

// Config holds the configuration parsed from the `server:` section of the
// YAML config file plus environment overrides.
type Config struct {
	Server ServerConfig `yaml:"server"`
}

// ServerConfig holds all server settings.
type ServerConfig struct {
	// Host is the bind address (default "localhost").
	Host string `yaml:"host" validate:"required"`

	// Port is the HTTP listen port (default 8082).
	Port int `yaml:"port" validate:"gte=1,lte=65535"`

	// FrontendDistDir is the directory frontend assets are served from.
	// When empty the caller falls back to <executable dir>/dist; when the
	// directory does not exist the compiled-in bundle is used instead.
	FrontendDistDir string `yaml:"frontend_dist_dir"`

	// OpenBrowser opens a browser tab once the server is listening.
	OpenBrowser bool `yaml:"open_browser"`

	// CatalogPath points at an optional YAML satellite catalog. Empty means
	// the built-in seed set. A configured file is watched for element updates.
	CatalogPath string `yaml:"catalog_path"`

	// RefreshInterval is the position refresh cadence (default 30s).
	RefreshInterval time.Duration `yaml:"refresh_interval" validate:"gt=0"`

	// StreamInterval is the WebSocket broadcast cadence (default 5s).
	StreamInterval time.Duration `yaml:"stream_interval" validate:"gt=0"`
}

// Addr returns the host:port the server binds to.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (a missing file is fine - defaults apply), then environment
// overrides, then validation.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Info("config: no config file, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}

	applyEnv(&cfg.Server)

	if err := validator.New().Struct(cfg.Server); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			RefreshInterval: DefaultRefreshInterval,
			StreamInterval:  DefaultStreamInterval,
		},
	}
}

// applyEnv overlays environment variables onto cfg. Unparseable values are
// logged and skipped - a bad env var degrades to the default, it never
// aborts startup.
func applyEnv(cfg *ServerConfig) {
	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 || p > 65535 {
			slog.Warn("config: ignoring invalid PORT", "value", v)
		} else {
			cfg.Port = p
		}
	}
	if v := os.Getenv("FRONTEND_DIST_DIR"); v != "" {
		cfg.FrontendDistDir = v
	}
	if v := os.Getenv("OPEN_BROWSER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("config: ignoring invalid OPEN_BROWSER", "value", v)
		} else {
			cfg.OpenBrowser = b
		}
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			slog.Warn("config: ignoring invalid REFRESH_INTERVAL", "value", v)
		} else {
			cfg.RefreshInterval = d
		}
	}
}
