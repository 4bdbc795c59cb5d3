package models

// Delivery pricing. Orders at or above the threshold ship free.
const (
	FreeDeliveryThreshold = 1000.0
	DeliveryFee           = 50.0
)

// CartItem is one line in the cart. Price is the unit price locked in at
// add time, already discounted; the remote store assigns the ID.
type CartItem struct {
	ID        int     `json:"id"`
	ProductID int     `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Note      string  `json:"note"`
}

// CartSnapshot holds derived totals. It is recomputed on every read and
// never persisted.
type CartSnapshot struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

// CartSummary feeds the nav badge: item count plus running subtotal.
type CartSummary struct {
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
}

// Snapshot computes totals for a set of line items.
func Snapshot(items []CartItem) CartSnapshot {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	fee := DeliveryFee
	if subtotal >= FreeDeliveryThreshold {
		fee = 0
	}

	return CartSnapshot{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}
}
