package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g. NATNAILS_SERVER__ADDR.
const EnvPrefix = "NATNAILS_"

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Site      SiteConfig      `koanf:"site"`
	DataDir   string          `koanf:"data_dir"`
	StaticDir string          `koanf:"static_dir"`
	Database  DatabaseConfig  `koanf:"database"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	CORS      CORSConfig      `koanf:"cors"`
	LogLevel  string          `koanf:"log_level"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SiteConfig holds the public identity of the site
type SiteConfig struct {
	URL         string `koanf:"url"`
	Name        string `koanf:"name"`
	Description string `koanf:"description"`
	Email       string `koanf:"email"`
	Phone       string `koanf:"phone"`
	Location    string `koanf:"location"`
	NavVariant  string `koanf:"nav_variant"`
}

// DatabaseConfig points at the SQLite file for contact submissions
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// RateLimitConfig bounds contact submissions per client
type RateLimitConfig struct {
	Limit     int           `koanf:"limit"`
	Window    time.Duration `koanf:"window"`
	RedisAddr string        `koanf:"redis_addr"`
	RedisPass string        `koanf:"redis_password"`
	RedisDB   int           `koanf:"redis_db"`
}

// CORSConfig controls cross-origin access to /api
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// Default returns a Config with the production defaults
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Site: SiteConfig{
			URL:         "https://natnails.com.mx",
			Name:        "NatNails",
			Description: "Academia profesional de uñas en Guadalajara.",
			Email:       "contacto@natnails.com.mx",
			Phone:       "+52 33 1234 5678",
			Location:    "Guadalajara, Jalisco",
			NavVariant:  "floating",
		},
		DataDir:   "data",
		StaticDir: "static",
		Database:  DatabaseConfig{Path: "data/natnails.db"},
		RateLimit: RateLimitConfig{
			Limit:  5,
			Window: 10 * time.Minute,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"https://natnails.com.mx"},
		},
		LogLevel: "info",
	}
}

// Load reads defaults, then the YAML file at path if it exists, then
// NATNAILS_* environment overrides. A double underscore separates levels.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.Site.URL = strings.TrimRight(cfg.Site.URL, "/")
	return cfg, nil
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Site.URL == "" {
		return fmt.Errorf("site.url is required")
	}
	u, err := url.Parse(c.Site.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("site.url %q must be an absolute URL", c.Site.URL)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.RateLimit.Limit < 0 {
		return fmt.Errorf("ratelimit.limit must be non-negative")
	}
	if c.RateLimit.Window < 0 {
		return fmt.Errorf("ratelimit.window must be non-negative")
	}
	return nil
}
