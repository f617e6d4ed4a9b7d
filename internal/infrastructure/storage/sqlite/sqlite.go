package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"estoque/internal/infrastructure/migration"
	"estoque/internal/infrastructure/storage"
)

type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

// New открывает файл БД и прогоняет миграции схемы kv.
func New(ctx context.Context, path string, log *slog.Logger) (*Storage, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path must not be empty")
	}

	if err := migration.NewMigration(migration.DialectSQLite, migration.SQLiteURL(path), nil).Up(); err != nil {
		return nil, fmt.Errorf("ошибка миграции базы данных: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	return &Storage{
		db:  db,
		log: log.With("component", "sqlite_storage"),
	}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storage.Wrap("get", key, err)
	}
	return value, true, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return storage.Wrap("set", key, err)
	}
	s.log.Debug("key written", "key", key, "bytes", len(value))
	return nil
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return storage.Wrap("remove", key, err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
