package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config aggregates application configuration values.
type Config struct {
	Env     string `validate:"oneof=development production"`
	HTTP    HTTPConfig
	Logging LoggingConfig
	Campus  CampusConfig
	Cache   CacheConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Port              int `validate:"min=1,max=65535"`
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	AllowedOrigins    []string
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level string `validate:"oneof=debug info warn error"`
}

// CampusConfig selects where the campus graph is loaded from.
type CampusConfig struct {
	Source        string `validate:"oneof=csv yaml postgres"`
	BuildingsPath string `validate:"required_if=Source csv"`
	PathsPath     string `validate:"required_if=Source csv"`
	YAMLPath      string `validate:"required_if=Source yaml"`
	DatabaseURL   string `validate:"required_if=Source postgres"`
}

// CacheConfig configures the optional Redis route cache. An empty RedisURL
// disables caching.
type CacheConfig struct {
	RedisURL  string
	KeyPrefix string `validate:"required"`
	TTL       time.Duration
}

const (
	defaultPort              = 4567
	defaultReadHeaderTimeout = 5 * time.Second
	defaultReadTimeout       = 10 * time.Second
	defaultWriteTimeout      = 15 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultAllowedOrigins    = "http://localhost:3000"
	defaultCacheTTL          = 24 * time.Hour
)

var validate = validator.New()

// Load reads .env (if present) and the process environment, applying
// defaults, then validates the result.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := Config{
		Env: Get("APP_ENV", "development"),
		HTTP: HTTPConfig{
			AllowedOrigins: splitCSV(Get("SERVER_ALLOWED_ORIGINS", defaultAllowedOrigins)),
		},
		Logging: LoggingConfig{
			Level: strings.ToLower(Get("LOG_LEVEL", "info")),
		},
		Campus: CampusConfig{
			Source:        strings.ToLower(Get("CAMPUS_SOURCE", "csv")),
			BuildingsPath: Get("CAMPUS_BUILDINGS_PATH", "data/campus_buildings.csv"),
			PathsPath:     Get("CAMPUS_PATHS_PATH", "data/campus_paths.csv"),
			YAMLPath:      Get("CAMPUS_YAML_PATH", "data/campus.yaml"),
			DatabaseURL:   os.Getenv("DATABASE_URL"),
		},
		Cache: CacheConfig{
			RedisURL:  os.Getenv("REDIS_URL"),
			KeyPrefix: Get("ROUTE_CACHE_PREFIX", "campus-paths:route"),
		},
	}

	port, err := parsePort("PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	durations := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"SERVER_READ_HEADER_TIMEOUT", defaultReadHeaderTimeout, &cfg.HTTP.ReadHeaderTimeout},
		{"SERVER_READ_TIMEOUT", defaultReadTimeout, &cfg.HTTP.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", defaultWriteTimeout, &cfg.HTTP.WriteTimeout},
		{"SERVER_IDLE_TIMEOUT", defaultIdleTimeout, &cfg.HTTP.IdleTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", defaultShutdownTimeout, &cfg.HTTP.ShutdownTimeout},
		{"ROUTE_CACHE_TTL", defaultCacheTTL, &cfg.Cache.TTL},
	}
	for _, d := range durations {
		v, err := parseDuration(d.key, d.fallback)
		if err != nil {
			return Config{}, err
		}
		*d.dst = v
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: duration must not be negative", key)
	}
	return d, nil
}

func parsePort(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	port, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return port, nil
}

func splitCSV(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
