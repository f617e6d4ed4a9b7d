package memory

import (
	"context"
	"sync"

	"estoque/internal/infrastructure/storage"
)

// Storage - in-memory хранилище, данные живут до завершения процесса
type Storage struct {
	mu     sync.RWMutex
	values map[string]string
	err    error
}

func New() *Storage {
	return &Storage{
		values: make(map[string]string),
	}
}

// FailWith заставляет все последующие операции возвращать err (nil снимает сбой).
func (m *Storage) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *Storage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return "", false, storage.Wrap("get", key, m.err)
	}
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *Storage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return storage.Wrap("set", key, m.err)
	}
	m.values[key] = value
	return nil
}

func (m *Storage) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return storage.Wrap("remove", key, m.err)
	}
	delete(m.values, key)
	return nil
}

// Len возвращает количество сохранённых ключей.
func (m *Storage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

func (m *Storage) Close() error {
	return nil
}
