package product

import (
	"context"
)

// Repository reads and writes a user's whole product list under key.
// Load returns an empty list when the key is absent.
type Repository interface {
	Load(ctx context.Context, key string) (List, error)
	Save(ctx context.Context, key string, list List) error
}
