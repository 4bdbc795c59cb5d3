package services

import (
	"context"
	"sync"
	"testing"

	"storefront/models"
	"storefront/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProductRepo struct {
	m        sync.Mutex
	products []models.Product
	err      error
}

func (r *mockProductRepo) List(context.Context) ([]models.Product, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]models.Product{}, r.products...), nil
}

func (r *mockProductRepo) GetByID(_ context.Context, id int) (*models.Product, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *mockProductRepo) Update(_ context.Context, product *models.Product) error {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return r.err
	}
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return repositories.ErrNotFound
}

func TestBrowse_ResolvesDiscounts(t *testing.T) {
	products := &mockProductRepo{products: []models.Product{
		{ID: 1, Title: "Lamp", Price: 100, Category: "lighting"},
		{ID: 2, Title: "Chair", Price: 250, Category: "furniture"},
	}}
	campaigns := &mockCampaignRepo{campaigns: []models.Campaign{
		{ID: 1, ProductIDs: []int{1}, DiscountPercentage: 20},
	}}
	sut := NewCatalogService(products, campaigns)

	views, err := sut.Browse(context.Background(), models.CatalogOptions{})
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, 20, views[0].DiscountPercentage)
	assert.InDelta(t, 80.0, views[0].EffectivePrice, 1e-9)
	assert.Equal(t, 100.0, views[0].Price, "list price never mutated")

	assert.Equal(t, 0, views[1].DiscountPercentage)
	assert.Equal(t, 250.0, views[1].EffectivePrice)
}

func TestBrowse_AppliesOptions(t *testing.T) {
	products := &mockProductRepo{products: []models.Product{
		{ID: 1, Title: "Desk Lamp", Price: 45, Category: "lighting"},
		{ID: 2, Title: "Floor Lamp", Price: 120, Category: "lighting"},
		{ID: 3, Title: "Chair", Price: 250, Category: "furniture"},
	}}
	sut := NewCatalogService(products, &mockCampaignRepo{})

	views, err := sut.Browse(context.Background(), models.CatalogOptions{
		Category: "lighting",
		Sort:     models.SortPriceDesc,
	})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 2, views[0].ID)
	assert.Equal(t, 1, views[1].ID)
}

func TestCategories_DistinctFirstSeenOrder(t *testing.T) {
	products := &mockProductRepo{products: []models.Product{
		{ID: 1, Category: "lighting"},
		{ID: 2, Category: "furniture"},
		{ID: 3, Category: "lighting"},
		{ID: 4, Category: ""},
	}}
	sut := NewCatalogService(products, &mockCampaignRepo{})

	categories, err := sut.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"lighting", "furniture"}, categories)
}

func TestProductDetail_NotFound(t *testing.T) {
	sut := NewCatalogService(&mockProductRepo{}, &mockCampaignRepo{})

	_, err := sut.ProductDetail(context.Background(), 42)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProductDetail_LocksInDiscountedPrice(t *testing.T) {
	products := &mockProductRepo{products: []models.Product{
		{ID: 1, Title: "Lamp", Price: 100},
	}}
	campaigns := &mockCampaignRepo{campaigns: []models.Campaign{
		{ID: 1, ProductIDs: []int{1}, DiscountPercentage: 35},
	}}
	sut := NewCatalogService(products, campaigns)

	view, err := sut.ProductDetail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 35, view.DiscountPercentage)
	assert.InDelta(t, 65.0, view.EffectivePrice, 1e-9)
}
