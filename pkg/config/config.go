package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is passed to envconfig when processing the environment.
const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names referenced directly by tests and tooling.
const (
	EnvAppEnv          = "STOREFRONT_APP_ENV"
	EnvRedisURL        = "STOREFRONT_REDIS_URL"
	EnvWishlistBackend = "STOREFRONT_WISHLIST_BACKEND"
)

type Config struct {
	App      AppConfig
	Catalog  CatalogConfig
	Wishlist WishlistConfig
	Redis    RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Wishlist.validate(cfg.Redis); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CatalogConfig points the catalog loader at its product source. An empty
// SourcePath selects the built-in fixture catalog.
type CatalogConfig struct {
	SourcePath string `envconfig:"STOREFRONT_CATALOG_SOURCE"`
}

// Wishlist slot backends.
const (
	WishlistBackendFile   = "file"
	WishlistBackendRedis  = "redis"
	WishlistBackendMemory = "memory"
)

// WishlistConfig selects the durable slot backing the wishlist store.
type WishlistConfig struct {
	Backend string `envconfig:"STOREFRONT_WISHLIST_BACKEND" default:"file"`
	Key     string `envconfig:"STOREFRONT_WISHLIST_KEY" default:"sagarmatha-wishlist"`
	DataDir string `envconfig:"STOREFRONT_WISHLIST_DATA_DIR" default:"data"`
}

// NormalizedBackend returns the backend name in canonical form.
func (w WishlistConfig) NormalizedBackend() string {
	return strings.ToLower(strings.TrimSpace(w.Backend))
}

func (w WishlistConfig) validate(redis RedisConfig) error {
	switch w.NormalizedBackend() {
	case WishlistBackendFile, WishlistBackendMemory:
		return nil
	case WishlistBackendRedis:
		if redis.URL == "" && redis.Address == "" {
			return fmt.Errorf("%s or STOREFRONT_REDIS_ADDR is required for the redis wishlist backend", EnvRedisURL)
		}
		return nil
	default:
		return fmt.Errorf("unknown wishlist backend %q", w.Backend)
	}
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}
