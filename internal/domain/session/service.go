package session

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Start(ctx context.Context, email string) (Session, error)
	Current(ctx context.Context) (Session, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "session_service"),
	}
}

// Start overwrites the stored pointer with email. The previous pointer is
// never cleared explicitly, only replaced.
func (s *Service) Start(ctx context.Context, email string) (Session, error) {
	if email == "" {
		return Session{}, ErrNoSession
	}
	if err := s.repo.Save(ctx, email); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}
	s.log.Debug("session started", "email", email)
	return New(email), nil
}

// Current resolves the stored pointer. A missing or empty pointer is ErrNoSession.
func (s *Service) Current(ctx context.Context) (Session, error) {
	email, ok, err := s.repo.Load(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	if !ok || email == "" {
		return Session{}, ErrNoSession
	}
	return New(email), nil
}
