package models

// SortOption enumerates the legal sort selections. Anything else leaves
// the incoming order untouched.
type SortOption string

const (
	SortNone      SortOption = ""
	SortPriceAsc  SortOption = "price_asc"
	SortPriceDesc SortOption = "price_desc"
)

// CatalogOptions is the closed configuration for the filter/sort pipeline:
// exact-match category, case-insensitive search term, and sort selection.
type CatalogOptions struct {
	Category string     `json:"category" form:"category"`
	Search   string     `json:"search" form:"search"`
	Sort     SortOption `json:"sort" form:"sort"`
}
