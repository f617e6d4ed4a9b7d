package product

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"estoque/internal/domain/session"
)

type Servicer interface {
	List(ctx context.Context, s session.Session) (List, error)
	Get(ctx context.Context, s session.Session, id int64) (Product, error)
	Add(ctx context.Context, s session.Session, d Draft) (Product, error)
	Update(ctx context.Context, s session.Session, id int64, d Draft) (Product, error)
	Remove(ctx context.Context, s session.Session, id int64) error
}

// DraftValidator gates every write.
type DraftValidator interface {
	Validate(d Draft) error
	ValidateChange(d Draft, prev Product) error
}

type Service struct {
	repo      Repository
	validator DraftValidator
	now       func() time.Time
	log       *slog.Logger
}

type Option func(*Service)

// WithClock заменяет источник времени, из которого выдаются id
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo Repository, validator DraftValidator, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		validator: validator,
		now:       time.Now,
		log:       log.With("component", "product_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) List(ctx context.Context, sess session.Session) (List, error) {
	key, err := sess.ProductsKey()
	if err != nil {
		return nil, err
	}
	return s.load(ctx, key)
}

func (s *Service) Get(ctx context.Context, sess session.Session, id int64) (Product, error) {
	list, err := s.List(ctx, sess)
	if err != nil {
		return Product{}, err
	}
	i := list.indexOf(id)
	if i < 0 {
		return Product{}, ErrNotFound
	}
	return list[i], nil
}

// Add appends a new product. The id is the current Unix time in milliseconds,
// moved past the largest id in the list when it would collide.
func (s *Service) Add(ctx context.Context, sess session.Session, d Draft) (Product, error) {
	key, err := sess.ProductsKey()
	if err != nil {
		return Product{}, err
	}
	if err := s.validator.Validate(d); err != nil {
		s.log.Debug("draft rejected", "email", sess.Email, "error", err)
		return Product{}, err
	}

	list, err := s.load(ctx, key)
	if err != nil {
		return Product{}, err
	}

	id := s.now().UnixMilli()
	if last := list.maxID(); id <= last {
		id = last + 1
	}

	p := d.toProduct(id)
	list = append(list, p)
	if err := s.save(ctx, key, list); err != nil {
		return Product{}, err
	}

	s.log.Info("product added", "email", sess.Email, "id", p.ID)
	return p, nil
}

// Update replaces the product with the given id in place.
func (s *Service) Update(ctx context.Context, sess session.Session, id int64, d Draft) (Product, error) {
	key, err := sess.ProductsKey()
	if err != nil {
		return Product{}, err
	}

	list, err := s.load(ctx, key)
	if err != nil {
		return Product{}, err
	}

	i := list.indexOf(id)
	if i < 0 {
		s.log.Debug("product not found", "email", sess.Email, "id", id)
		return Product{}, ErrNotFound
	}

	if err := s.validator.ValidateChange(d, list[i]); err != nil {
		s.log.Debug("draft rejected", "email", sess.Email, "id", id, "error", err)
		return Product{}, err
	}

	p := d.toProduct(id)
	list[i] = p
	if err := s.save(ctx, key, list); err != nil {
		return Product{}, err
	}

	s.log.Info("product updated", "email", sess.Email, "id", id)
	return p, nil
}

// Remove drops the product with the given id. An unknown id is not an error;
// the list is written back either way.
func (s *Service) Remove(ctx context.Context, sess session.Session, id int64) error {
	key, err := sess.ProductsKey()
	if err != nil {
		return err
	}

	list, err := s.load(ctx, key)
	if err != nil {
		return err
	}

	kept := make(List, 0, len(list))
	for _, p := range list {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if err := s.save(ctx, key, kept); err != nil {
		return err
	}

	s.log.Info("product removed", "email", sess.Email, "id", id, "found", len(kept) != len(list))
	return nil
}

func (s *Service) load(ctx context.Context, key string) (List, error) {
	list, err := s.repo.Load(ctx, key)
	if err != nil {
		s.log.Error("failed to load products", "key", key, "error", err)
		return nil, fmt.Errorf("load products: %w", err)
	}
	if list == nil {
		list = List{}
	}
	return list, nil
}

func (s *Service) save(ctx context.Context, key string, list List) error {
	if err := s.repo.Save(ctx, key, list); err != nil {
		s.log.Error("failed to save products", "key", key, "error", err)
		return fmt.Errorf("save products: %w", err)
	}
	return nil
}
