package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"storefront/models"
)

type CheckoutState string

const (
	StateIdle                 CheckoutState = "idle"
	StateReviewingOrder       CheckoutState = "reviewing_order"
	StateAwaitingConfirmation CheckoutState = "awaiting_confirmation"
	StateCompleted            CheckoutState = "completed"
)

var ErrInvalidTransition = errors.New("invalid checkout transition")

// CheckoutService sequences cart review, payment confirmation and cart
// clearing. Payment itself is a no-op; the only durable effect of a
// completed checkout is the emptied cart. The cart stays editable while an
// order is under review.
type CheckoutService struct {
	cart *CartService

	mu    sync.Mutex
	state CheckoutState
}

func NewCheckoutService(cart *CartService) *CheckoutService {
	return &CheckoutService{cart: cart, state: StateIdle}
}

func (s *CheckoutService) State() CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Begin moves Idle to ReviewingOrder and returns the totals to review.
func (s *CheckoutService) Begin() (models.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return models.CartSnapshot{}, fmt.Errorf("%w: begin from %s", ErrInvalidTransition, s.state)
	}
	s.state = StateReviewingOrder
	return s.cart.Snapshot(), nil
}

// Cancel returns from ReviewingOrder to Idle with no side effects.
func (s *CheckoutService) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReviewingOrder {
		return fmt.Errorf("%w: cancel from %s", ErrInvalidTransition, s.state)
	}
	s.state = StateIdle
	return nil
}

// ConfirmPayment moves ReviewingOrder through AwaitingConfirmation and
// clears the cart. The flow reaches Completed only once the clear has
// confirmed; a failed clear leaves it in AwaitingConfirmation so the user
// can retry.
func (s *CheckoutService) ConfirmPayment(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case StateReviewingOrder:
		s.state = StateAwaitingConfirmation
	case StateAwaitingConfirmation:
		// retry after a failed clear
	default:
		s.mu.Unlock()
		return fmt.Errorf("%w: confirm from %s", ErrInvalidTransition, s.state)
	}
	s.mu.Unlock()

	if err := s.cart.Clear(ctx); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}

	s.mu.Lock()
	s.state = StateCompleted
	s.mu.Unlock()
	return nil
}

// Acknowledge closes out a completed checkout and starts a fresh cycle.
func (s *CheckoutService) Acknowledge() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCompleted {
		return fmt.Errorf("%w: acknowledge from %s", ErrInvalidTransition, s.state)
	}
	s.state = StateIdle
	return nil
}
