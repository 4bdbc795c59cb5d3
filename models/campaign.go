package models

type Campaign struct {
	ID                 int    `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	Image              string `json:"image"`
	ProductIDs         []int  `json:"productIds"`
	DiscountPercentage int    `json:"discountPercentage"`
}

// Contains reports whether the campaign claims the given product.
func (c Campaign) Contains(productID int) bool {
	for _, id := range c.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}
