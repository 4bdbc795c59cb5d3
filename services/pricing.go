package services

import "storefront/models"

// ResolveDiscount returns the discount percentage of the first campaign in
// the supplied order that claims the product, or 0 when none does. A miss
// is a normal outcome, not an error.
func ResolveDiscount(productID int, campaigns []models.Campaign) int {
	for _, campaign := range campaigns {
		if campaign.Contains(productID) {
			return campaign.DiscountPercentage
		}
	}
	return 0
}

// EffectivePrice applies a percentage discount to a list price. With no
// discount the list price is returned as-is, so a zero discount can never
// introduce rounding drift. The result stays unrounded; rounding happens
// only at presentation time.
func EffectivePrice(listPrice float64, discountPercentage int) float64 {
	if discountPercentage <= 0 {
		return listPrice
	}
	return listPrice * (1 - float64(discountPercentage)/100)
}
