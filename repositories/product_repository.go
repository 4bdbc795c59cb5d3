package repositories

import (
	"context"
	"fmt"

	"storefront/models"
)

type RemoteProductRepository struct {
	remote *Remote
}

func NewProductRepository(remote *Remote) *RemoteProductRepository {
	return &RemoteProductRepository{remote: remote}
}

func (r *RemoteProductRepository) List(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.remote.get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *RemoteProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := r.remote.get(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update writes the full product back, reviews included. It is the write
// path for appending a review.
func (r *RemoteProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.remote.put(ctx, fmt.Sprintf("/products/%d", product.ID), product, product)
}
