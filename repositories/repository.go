package repositories

import (
	"context"

	"storefront/models"
)

// The remote store owns products, campaigns and cart items. Services
// depend on these interfaces so tests can swap in in-memory fakes.

type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
}

type CampaignRepository interface {
	List(ctx context.Context) ([]models.Campaign, error)
	Create(ctx context.Context, campaign *models.Campaign) error
}

type CartRepository interface {
	List(ctx context.Context) ([]models.CartItem, error)
	FindByProduct(ctx context.Context, productID int) (*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item models.CartItem) error
	Delete(ctx context.Context, id int) error
}
