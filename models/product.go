package models

// Product is a catalog entry. The remote store owns it; the engine never
// mutates its list price.
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Reviews     []Review `json:"reviews,omitempty"`
}

// ProductView decorates a Product with its resolved campaign discount and
// the resulting effective price for listing and detail responses.
type ProductView struct {
	Product
	DiscountPercentage int     `json:"discount_percentage"`
	EffectivePrice     float64 `json:"effective_price"`
}
