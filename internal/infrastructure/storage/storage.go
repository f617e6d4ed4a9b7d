package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrStorage помечает любой сбой чтения/записи хранилища.
var ErrStorage = errors.New("storage error")

// Store - строковое key-value хранилище, единственный слой персистентности.
// Отсутствующий ключ - это ok == false и err == nil.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Wrap оборачивает ошибку драйвера в ErrStorage с именем операции и ключом.
func Wrap(op, key string, err error) error {
	if err == nil {
		return nil
	}
	if key == "" {
		return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
	}
	return fmt.Errorf("%w: %s[%s]: %v", ErrStorage, op, key, err)
}
