package document

import (
	"context"

	"golang.org/x/exp/slog"

	"estoque/internal/domain/product"
	"estoque/internal/infrastructure/storage"
)

// ProductRepository stores each user's product list as one JSON array.
type ProductRepository struct {
	store storage.Store
	log   *slog.Logger
}

func NewProductRepository(store storage.Store, log *slog.Logger) *ProductRepository {
	return &ProductRepository{
		store: store,
		log:   log,
	}
}

func (r *ProductRepository) Load(ctx context.Context, key string) (product.List, error) {
	list := product.List{}
	ok, err := load(ctx, r.store, key, &list)
	if err != nil {
		return nil, err
	}
	if !ok || list == nil {
		return product.List{}, nil
	}
	return list, nil
}

// Save writes the whole list with a single Set. An empty list is written as
// "[]" rather than removing the key.
func (r *ProductRepository) Save(ctx context.Context, key string, list product.List) error {
	if list == nil {
		list = product.List{}
	}
	if err := save(ctx, r.store, key, list); err != nil {
		return err
	}
	r.log.Debug("product list saved", "key", key, "count", len(list))
	return nil
}
