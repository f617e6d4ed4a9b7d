package user

import (
	"context"
)

// Repository reads and writes the whole credential document at once.
// Load reports ok == false when no user was ever registered.
type Repository interface {
	Load(ctx context.Context) (Credentials, bool, error)
	Save(ctx context.Context, creds Credentials) error
}
