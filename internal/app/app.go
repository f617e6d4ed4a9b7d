// Package app собирает зависимости приложения из конфигурации.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"estoque/internal/config"
	"estoque/internal/domain/product"
	"estoque/internal/domain/session"
	"estoque/internal/domain/user"
	"estoque/internal/format"
	"estoque/internal/i18n"
	"estoque/internal/infrastructure/storage"
	"estoque/internal/infrastructure/storage/document"
	"estoque/internal/infrastructure/storage/memory"
	"estoque/internal/infrastructure/storage/postgres"
	"estoque/internal/infrastructure/storage/redis"
	"estoque/internal/infrastructure/storage/sqlite"
)

type App struct {
	Config    *config.Config
	Log       *slog.Logger
	Store     storage.Store
	Users     user.Servicer
	Sessions  session.Servicer
	Products  product.Servicer
	Localizer *i18n.Localizer
}

type Option func(*options)

type options struct {
	store       storage.Store
	productOpts []product.Option
}

// WithStore использует готовое хранилище вместо открытия по конфигурации.
func WithStore(s storage.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

func WithProductOptions(opts ...product.Option) Option {
	return func(o *options) {
		o.productOpts = append(o.productOpts, opts...)
	}
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	store := o.store
	if store == nil {
		var err error
		store, err = OpenStore(ctx, cfg.Storage, log)
		if err != nil {
			return nil, err
		}
	}

	localizer, err := i18n.New(format.ParseLocale(cfg.Locale))
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("ошибка загрузки переводов: %w", err)
	}

	sessions := session.NewService(document.NewSessionRepository(store, log), log)
	users := user.NewService(
		document.NewUserRepository(store, log),
		sessions,
		user.NewCredentialValidator(),
		log,
	)
	products := product.NewService(
		document.NewProductRepository(store, log),
		product.NewValidator(cfg.Validation.StrictDates),
		log,
		o.productOpts...,
	)

	log.Debug("app initialized", "storage", cfg.Storage.Driver, "locale", localizer.Locale())

	return &App{
		Config:    cfg,
		Log:       log,
		Store:     store,
		Users:     users,
		Sessions:  sessions,
		Products:  products,
		Localizer: localizer,
	}, nil
}

// Session resolves the logged-in user for product operations.
func (a *App) Session(ctx context.Context) (session.Session, error) {
	return a.Sessions.Current(ctx)
}

func (a *App) Locale() format.Locale {
	return a.Localizer.Locale()
}

func (a *App) Close() error {
	return a.Store.Close()
}

// OpenStore opens the key-value backend named by cfg.Driver.
func OpenStore(ctx context.Context, cfg config.Storage, log *slog.Logger) (storage.Store, error) {
	switch cfg.Driver {
	case storage.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o700); err != nil {
			return nil, fmt.Errorf("ошибка создания директории данных: %w", err)
		}
		return sqlite.New(ctx, cfg.SQLitePath, log)
	case storage.DriverPostgres:
		return postgres.New(ctx, cfg.PostgresDSN, log)
	case storage.DriverRedis:
		return redis.New(ctx, cfg.RedisURL, cfg.RedisPrefix, log)
	case storage.DriverMemory:
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
