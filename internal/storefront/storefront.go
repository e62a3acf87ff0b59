package storefront

import (
	"context"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/midnightshuttle/storefront-core/internal/cart"
	"github.com/midnightshuttle/storefront-core/internal/catalog"
	"github.com/midnightshuttle/storefront-core/internal/options"
	"github.com/midnightshuttle/storefront-core/pkg/config"
	"github.com/midnightshuttle/storefront-core/pkg/kvstore"
	"github.com/midnightshuttle/storefront-core/pkg/logger"
	"github.com/midnightshuttle/storefront-core/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
)

// Options tunes the bootstrap. The zero value reads .env plus the process
// environment and runs without metrics.
type Options struct {
	// EnvFile overrides the dotenv file consulted before config parsing.
	EnvFile string
	// Config, when set, is used as-is and the environment is not consulted.
	Config *config.Config
	// Registry receives the storefront metrics. Nil disables metrics.
	Registry prometheus.Registerer
	// LogOutput overrides the logger destination, mainly for tests.
	LogOutput io.Writer
}

// App is the assembled storefront: catalog, cart and the storage they share.
type App struct {
	Config     *config.Config
	Logger     *logger.Logger
	Metrics    *metrics.StorefrontMetrics
	KV         *kvstore.Store
	Catalog    *catalog.Store
	Categories *catalog.CategoryRegistry
	Cart       *cart.Service

	backend kvstore.Backend
}

// New wires the whole storefront: config, logging, storage backend, catalog
// load and cart restore. A catalog or category-registry load failure is
// logged but does not fail the bootstrap; the storefront stays usable with
// whatever loaded, and Catalog.Err reports the failure.
func New(ctx context.Context, opts Options) (*App, error) {
	bootLogg := logger.New(logger.Options{ServiceName: "storefront", Output: opts.LogOutput})

	cfg := opts.Config
	if cfg == nil {
		envFile := opts.EnvFile
		if envFile == "" {
			envFile = ".env"
		}
		if err := godotenv.Load(envFile); err != nil {
			bootLogg.Warn(ctx, "env file not found, relying on environment")
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return nil, err
		}
	}

	logg := logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Output:      opts.LogOutput,
	})

	var mets *metrics.StorefrontMetrics
	if opts.Registry != nil {
		mets = metrics.NewStorefrontMetrics(opts.Registry)
	}

	backend, err := newBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	kv, err := kvstore.New(backend, logg)
	if err != nil {
		return nil, multierr.Append(err, backend.Close())
	}

	factory, err := options.NewFactory(logg, mets)
	if err != nil {
		return nil, multierr.Append(err, backend.Close())
	}
	transformer, err := catalog.NewTransformer(factory)
	if err != nil {
		return nil, multierr.Append(err, backend.Close())
	}
	repo, err := catalog.NewRepository(cfg.Catalog, logg)
	if err != nil {
		return nil, multierr.Append(err, backend.Close())
	}
	store, err := catalog.NewStore(repo, transformer, logg, mets)
	if err != nil {
		return nil, multierr.Append(err, backend.Close())
	}
	if err := store.LoadProducts(ctx); err != nil {
		logg.Warn(ctx, "starting with an empty catalog")
	}

	categories, err := catalog.LoadCategoryRegistry(ctx, cfg.Catalog.CategoriesPath)
	if err != nil {
		logg.Warn(ctx, "category registry unavailable")
		categories = nil
	}

	cartSvc, err := cart.NewService(ctx, kv, cfg.Storage.CartKey, logg, mets)
	if err != nil {
		return nil, multierr.Append(err, backend.Close())
	}

	return &App{
		Config:     cfg,
		Logger:     logg,
		Metrics:    mets,
		KV:         kv,
		Catalog:    store,
		Categories: categories,
		Cart:       cartSvc,
		backend:    backend,
	}, nil
}

func newBackend(ctx context.Context, cfg *config.Config) (kvstore.Backend, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return kvstore.NewMemoryBackend(), nil
	case config.BackendRedis:
		return kvstore.NewRedisBackend(ctx, cfg.Redis)
	case config.BackendSQLite:
		return kvstore.NewSQLiteBackend(ctx, cfg.SQLite)
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}
}

// Close releases the storage backend.
func (a *App) Close() error {
	return a.backend.Close()
}
