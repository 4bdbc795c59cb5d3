package repositories

import (
	"context"
	"fmt"

	"storefront/models"
)

type RemoteCartRepository struct {
	remote *Remote
}

func NewCartRepository(remote *Remote) *RemoteCartRepository {
	return &RemoteCartRepository{remote: remote}
}

func (r *RemoteCartRepository) List(ctx context.Context) ([]models.CartItem, error) {
	items := []models.CartItem{}
	if err := r.remote.get(ctx, "/cart", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByProduct looks up the cart line for a product, for merge-on-add.
// Returns ErrNotFound when the product is not in the cart yet.
func (r *RemoteCartRepository) FindByProduct(ctx context.Context, productID int) (*models.CartItem, error) {
	items := []models.CartItem{}
	if err := r.remote.get(ctx, fmt.Sprintf("/cart?productId=%d", productID), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return &items[0], nil
}

// Create posts a new line item and fills in the store-assigned ID.
func (r *RemoteCartRepository) Create(ctx context.Context, item *models.CartItem) error {
	return r.remote.post(ctx, "/cart", item, item)
}

func (r *RemoteCartRepository) Update(ctx context.Context, item models.CartItem) error {
	return r.remote.put(ctx, fmt.Sprintf("/cart/%d", item.ID), item, nil)
}

func (r *RemoteCartRepository) Delete(ctx context.Context, id int) error {
	return r.remote.delete(ctx, fmt.Sprintf("/cart/%d", id))
}
