package services

import (
	"testing"

	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Espresso Machine", Description: "Compact brewer", Price: 300, Category: "appliances"},
		{ID: 2, Title: "Desk Lamp", Description: "Warm light for late nights", Price: 45, Category: "lighting"},
		{ID: 3, Title: "Floor Lamp", Description: "Tall and bright", Price: 120, Category: "lighting"},
		{ID: 4, Title: "Grinder", Description: "Burr espresso grinder", Price: 150, Category: "appliances"},
	}
}

func TestFilterProducts_CategoryExactMatch(t *testing.T) {
	got := FilterProducts(sampleProducts(), models.CatalogOptions{Category: "lighting"})
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	// case-sensitive, no match
	got = FilterProducts(sampleProducts(), models.CatalogOptions{Category: "Lighting"})
	assert.Empty(t, got)
}

func TestFilterProducts_SearchTitleOrDescription(t *testing.T) {
	// matches title of 1 and description of 4, case-insensitive
	got := FilterProducts(sampleProducts(), models.CatalogOptions{Search: "ESPRESSO"})
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 4, got[1].ID)
}

func TestFilterProducts_SearchRunsOnCategoryOutput(t *testing.T) {
	got := FilterProducts(sampleProducts(), models.CatalogOptions{Category: "lighting", Search: "espresso"})
	assert.Empty(t, got)
}

func TestFilterProducts_Sort(t *testing.T) {
	asc := FilterProducts(sampleProducts(), models.CatalogOptions{Sort: models.SortPriceAsc})
	require.Len(t, asc, 4)
	assert.Equal(t, []int{2, 3, 4, 1}, []int{asc[0].ID, asc[1].ID, asc[2].ID, asc[3].ID})

	desc := FilterProducts(sampleProducts(), models.CatalogOptions{Sort: models.SortPriceDesc})
	assert.Equal(t, 1, desc[0].ID)
	assert.Equal(t, 2, desc[3].ID)

	// unknown option keeps incoming order
	unsorted := FilterProducts(sampleProducts(), models.CatalogOptions{Sort: "rating"})
	assert.Equal(t, 1, unsorted[0].ID)
	assert.Equal(t, 4, unsorted[3].ID)
}

func TestFilterProducts_Idempotent(t *testing.T) {
	opts := models.CatalogOptions{Category: "appliances", Search: "grinder", Sort: models.SortPriceAsc}
	first := FilterProducts(sampleProducts(), opts)
	second := FilterProducts(sampleProducts(), opts)
	assert.Equal(t, first, second)
}

func TestFilterProducts_DoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	FilterProducts(products, models.CatalogOptions{Sort: models.SortPriceAsc})
	assert.Equal(t, sampleProducts(), products)
}

func TestCatalogView_CategoryChangeResetsSearchAndSort(t *testing.T) {
	view := NewCatalogView()
	view.SetSearch("lamp")
	view.SetSort(models.SortPriceDesc)

	view.SetCategory("lighting")

	opts := view.Options()
	assert.Equal(t, "lighting", opts.Category)
	assert.Empty(t, opts.Search)
	assert.Equal(t, models.SortNone, opts.Sort)
}

func TestCatalogView_SearchAndSortKeepCategory(t *testing.T) {
	view := NewCatalogView()
	view.SetCategory("lighting")
	view.SetSearch("lamp")
	view.SetSort(models.SortPriceAsc)

	opts := view.Options()
	assert.Equal(t, "lighting", opts.Category)
	assert.Equal(t, "lamp", opts.Search)
	assert.Equal(t, models.SortPriceAsc, opts.Sort)
}
