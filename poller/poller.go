package poller

import (
	"context"
	"log"
	"time"

	"storefront/services"
)

// Poller refreshes the cart mirror on a fixed interval so the summary
// badge stays current without tying refreshes to mutation timing. It
// stops as soon as its context is canceled.
type Poller struct {
	cart     *services.CartService
	interval time.Duration
}

func New(cart *services.CartService, interval time.Duration) *Poller {
	return &Poller{cart: cart, interval: interval}
}

func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := p.cart.Load(ctx); err != nil {
		log.Printf("cart refresh failed: %v", err)
	}
}
