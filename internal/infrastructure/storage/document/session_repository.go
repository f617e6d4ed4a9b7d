package document

import (
	"context"

	"golang.org/x/exp/slog"

	"estoque/internal/infrastructure/storage"
)

// SessionRepository stores the logged-in email as a plain string, not JSON.
type SessionRepository struct {
	store storage.Store
	log   *slog.Logger
}

func NewSessionRepository(store storage.Store, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		store: store,
		log:   log,
	}
}

func (r *SessionRepository) Save(ctx context.Context, email string) error {
	return r.store.Set(ctx, CurrentUserKey, email)
}

func (r *SessionRepository) Load(ctx context.Context) (string, bool, error) {
	return r.store.Get(ctx, CurrentUserKey)
}
