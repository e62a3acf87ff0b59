package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Storage StorageConfig
	Redis   RedisConfig
	SQLite  SQLiteConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validateBackend(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"SHUTTLE_APP_ENV" default:"dev"`
	LogLevel string `envconfig:"SHUTTLE_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CatalogConfig struct {
	MenuPath       string `envconfig:"SHUTTLE_CATALOG_MENU_PATH" default:"data/menu.json"`
	CategoriesPath string `envconfig:"SHUTTLE_CATALOG_CATEGORIES_PATH" default:"data/categories.json"`
}

type StorageConfig struct {
	Backend string `envconfig:"SHUTTLE_STORAGE_BACKEND" default:"memory"`
	CartKey string `envconfig:"SHUTTLE_STORAGE_CART_KEY" default:"midnight_shuttle_cart"`
}

func (s *StorageConfig) validateBackend() error {
	backend := strings.ToLower(strings.TrimSpace(s.Backend))
	switch backend {
	case BackendMemory, BackendRedis, BackendSQLite:
		s.Backend = backend
		return nil
	default:
		return fmt.Errorf("unsupported storage backend %q", s.Backend)
	}
}

type RedisConfig struct {
	URL          string        `envconfig:"SHUTTLE_REDIS_URL"`
	Address      string        `envconfig:"SHUTTLE_REDIS_ADDR"`
	Password     string        `envconfig:"SHUTTLE_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHUTTLE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHUTTLE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHUTTLE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHUTTLE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHUTTLE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHUTTLE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type SQLiteConfig struct {
	Path            string        `envconfig:"SHUTTLE_SQLITE_PATH" default:"storefront.db"`
	MaxOpenConns    int           `envconfig:"SHUTTLE_SQLITE_MAX_OPEN_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"SHUTTLE_SQLITE_CONN_MAX_LIFETIME" default:"1h"`
}
