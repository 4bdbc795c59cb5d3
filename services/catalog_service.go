package services

import (
	"context"

	"storefront/models"
	"storefront/repositories"

	"golang.org/x/sync/singleflight"
)

type catalogData struct {
	products  []models.Product
	campaigns []models.Campaign
}

// CatalogService reads the product and campaign collections from the
// remote store and produces the discounted, filtered view the listing
// pages render.
type CatalogService struct {
	products  repositories.ProductRepository
	campaigns repositories.CampaignRepository
	sfg       singleflight.Group // collapses concurrent remote fetches
}

func NewCatalogService(products repositories.ProductRepository, campaigns repositories.CampaignRepository) *CatalogService {
	return &CatalogService{
		products:  products,
		campaigns: campaigns,
	}
}

func (s *CatalogService) fetch(ctx context.Context) (catalogData, error) {
	v, err, _ := s.sfg.Do("catalog", func() (interface{}, error) {
		products, err := s.products.List(ctx)
		if err != nil {
			return catalogData{}, err
		}
		campaigns, err := s.campaigns.List(ctx)
		if err != nil {
			return catalogData{}, err
		}
		return catalogData{products: products, campaigns: campaigns}, nil
	})
	if err != nil {
		return catalogData{}, err
	}
	return v.(catalogData), nil
}

// Browse returns the filtered, sorted product views with campaign
// discounts resolved and effective prices computed.
func (s *CatalogService) Browse(ctx context.Context, opts models.CatalogOptions) ([]models.ProductView, error) {
	data, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterProducts(data.products, opts)

	views := make([]models.ProductView, 0, len(filtered))
	for _, p := range filtered {
		discount := ResolveDiscount(p.ID, data.campaigns)
		views = append(views, models.ProductView{
			Product:            p,
			DiscountPercentage: discount,
			EffectivePrice:     EffectivePrice(p.Price, discount),
		})
	}
	return views, nil
}

// Categories returns the distinct category values in first-seen order.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	categories := []string{}
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories, nil
}

// ProductDetail returns one product with its discount resolved. The
// effective price here is what the cart locks in on add.
func (s *CatalogService) ProductDetail(ctx context.Context, id int) (*models.ProductView, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, err
	}

	discount := ResolveDiscount(product.ID, campaigns)
	return &models.ProductView{
		Product:            *product,
		DiscountPercentage: discount,
		EffectivePrice:     EffectivePrice(product.Price, discount),
	}, nil
}
