package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"estoque/internal/domain/session"
)

type Servicer interface {
	Register(ctx context.Context, email, password string) error
	Authenticate(ctx context.Context, email, password string) (session.Session, error)
	CurrentUser(ctx context.Context) (string, bool, error)
	SignUp(ctx context.Context, email, password, confirm string) error
	Login(ctx context.Context, email, password string) (session.Session, error)
}

type Service struct {
	repo      Repository
	sessions  session.Servicer
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, sessions session.Servicer, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		sessions:  sessions,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

// Register inserts email into the credential document and writes the whole
// document back. An absent document is treated as empty.
func (s *Service) Register(ctx context.Context, email, password string) error {
	creds, _, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error("failed to load users", "error", err)
		return fmt.Errorf("load users: %w", err)
	}
	if creds == nil {
		creds = Credentials{}
	}

	if creds.Has(email) {
		s.log.Debug("registration rejected", "email", email, "error", ErrAlreadyRegistered)
		return ErrAlreadyRegistered
	}

	creds[email] = password
	if err := s.repo.Save(ctx, creds); err != nil {
		s.log.Error("failed to save users", "error", err)
		return fmt.Errorf("save users: %w", err)
	}

	s.log.Info("user registered", "email", email)
	return nil
}

// Authenticate matches the plaintext password exactly and, on success, moves
// the session pointer to email.
func (s *Service) Authenticate(ctx context.Context, email, password string) (session.Session, error) {
	return s.authenticate(ctx, email, password, nil)
}

func (s *Service) CurrentUser(ctx context.Context) (string, bool, error) {
	sess, err := s.sessions.Current(ctx)
	if errors.Is(err, session.ErrNoSession) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return sess.Email, true, nil
}

// SignUp runs the registration form checks before Register.
func (s *Service) SignUp(ctx context.Context, email, password, confirm string) error {
	if err := s.validator.ValidateSignUp(email, password, confirm); err != nil {
		s.log.Debug("validation failed", "email", email, "error", err)
		return err
	}
	return s.Register(ctx, email, password)
}

// Login runs the login form checks. The email shape is checked only after the
// credential document is known to exist.
func (s *Service) Login(ctx context.Context, email, password string) (session.Session, error) {
	if email == "" || password == "" {
		return session.Session{}, ErrMissingCredentials
	}
	return s.authenticate(ctx, email, password, s.validator.ValidateEmail)
}

func (s *Service) authenticate(
	ctx context.Context,
	email, password string,
	checkEmail func(string) error,
) (session.Session, error) {
	creds, ok, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error("failed to load users", "error", err)
		return session.Session{}, fmt.Errorf("load users: %w", err)
	}
	if !ok {
		return session.Session{}, ErrNoUsersRegistered
	}

	if checkEmail != nil {
		if err := checkEmail(email); err != nil {
			return session.Session{}, err
		}
	}

	stored, found := creds[email]
	if !found || stored == "" || stored != password {
		s.log.Debug("authentication failed", "email", email)
		return session.Session{}, ErrInvalidCredentials
	}

	sess, err := s.sessions.Start(ctx, email)
	if err != nil {
		s.log.Error("failed to start session", "email", email, "error", err)
		return session.Session{}, err
	}

	s.log.Info("user logged in", "email", email)
	return sess, nil
}
