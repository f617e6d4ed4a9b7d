package session

import (
	"context"
)

// Repository persists the single session pointer.
type Repository interface {
	Save(ctx context.Context, email string) error
	Load(ctx context.Context) (string, bool, error)
}
