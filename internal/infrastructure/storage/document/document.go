// Package document хранит доменные документы в виде JSON-строк поверх storage.Store.
package document

import (
	"context"
	"encoding/json"

	"estoque/internal/infrastructure/storage"
)

const (
	UsersKey       = "users"
	CurrentUserKey = "currentUser"
)

// load decodes the JSON value under key into dst. ok is false for an absent key.
// A value that does not decode is reported as a storage failure.
func load(ctx context.Context, s storage.Store, key string, dst any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, storage.Wrap("decode", key, err)
	}
	return true, nil
}

func save(ctx context.Context, s storage.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return storage.Wrap("encode", key, err)
	}
	return s.Set(ctx, key, string(raw))
}
