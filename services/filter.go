package services

import (
	"sort"
	"strings"
	"sync"

	"storefront/models"
)

// FilterProducts runs the three-stage view pipeline: category filter, then
// search filter over the category stage's output, then sort. It is pure;
// the input slice is never reordered or mutated.
func FilterProducts(products []models.Product, opts models.CatalogOptions) []models.Product {
	result := make([]models.Product, 0, len(products))

	for _, p := range products {
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		result = append(result, p)
	}

	if opts.Search != "" {
		term := strings.ToLower(opts.Search)
		filtered := result[:0]
		for _, p := range result {
			if strings.Contains(strings.ToLower(p.Title), term) ||
				strings.Contains(strings.ToLower(p.Description), term) {
				filtered = append(filtered, p)
			}
		}
		result = filtered
	}

	switch opts.Sort {
	case models.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case models.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	}

	return result
}

// CatalogView holds the user's current filter selections. Changing the
// category resets search and sort in the same step, since a category
// switch changes what the other two controls are scoped to.
type CatalogView struct {
	mu   sync.Mutex
	opts models.CatalogOptions
}

func NewCatalogView() *CatalogView {
	return &CatalogView{}
}

func (v *CatalogView) Options() models.CatalogOptions {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.opts
}

func (v *CatalogView) SetCategory(category string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.opts = models.CatalogOptions{Category: category}
}

func (v *CatalogView) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.opts.Search = term
}

func (v *CatalogView) SetSort(opt models.SortOption) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.opts.Sort = opt
}
