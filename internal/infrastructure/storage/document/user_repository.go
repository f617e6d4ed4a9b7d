package document

import (
	"context"

	"golang.org/x/exp/slog"

	"estoque/internal/domain/user"
	"estoque/internal/infrastructure/storage"
)

// UserRepository keeps every credential in one JSON object under "users".
type UserRepository struct {
	store storage.Store
	log   *slog.Logger
}

func NewUserRepository(store storage.Store, log *slog.Logger) *UserRepository {
	return &UserRepository{
		store: store,
		log:   log,
	}
}

func (r *UserRepository) Load(ctx context.Context) (user.Credentials, bool, error) {
	var creds user.Credentials
	ok, err := load(ctx, r.store, UsersKey, &creds)
	if err != nil || !ok {
		return nil, false, err
	}
	// "null" decodes to a nil map
	if creds == nil {
		creds = user.Credentials{}
	}
	return creds, true, nil
}

func (r *UserRepository) Save(ctx context.Context, creds user.Credentials) error {
	if creds == nil {
		creds = user.Credentials{}
	}
	return save(ctx, r.store, UsersKey, creds)
}
