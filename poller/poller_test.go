package poller

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/models"
	"storefront/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	mu    sync.Mutex
	lists int
	items []models.CartItem
}

func (r *countingRepo) List(context.Context) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists++
	return append([]models.CartItem{}, r.items...), nil
}

func (r *countingRepo) FindByProduct(context.Context, int) (*models.CartItem, error) {
	return nil, nil
}

func (r *countingRepo) Create(context.Context, *models.CartItem) error { return nil }

func (r *countingRepo) Update(context.Context, models.CartItem) error { return nil }

func (r *countingRepo) Delete(context.Context, int) error { return nil }

func (r *countingRepo) listCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lists
}

func TestPoller_RefreshesCartMirror(t *testing.T) {
	repo := &countingRepo{items: []models.CartItem{
		{ID: 1, ProductID: 10, Price: 20, Quantity: 2},
	}}
	cart := services.NewCartService(repo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sut := New(cart, 10*time.Millisecond)
	go sut.Run(ctx)

	require.Eventually(t, func() bool {
		return repo.listCount() >= 2
	}, time.Second, 5*time.Millisecond, "poller never refreshed the cart")

	summary := cart.Summary()
	assert.Equal(t, 1, summary.Count)
	assert.InDelta(t, 40.0, summary.Subtotal, 1e-9)
}

func TestPoller_StopsOnCancel(t *testing.T) {
	repo := &countingRepo{}
	cart := services.NewCartService(repo)

	ctx, cancel := context.WithCancel(context.Background())
	sut := New(cart, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		sut.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return repo.listCount() >= 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancel")
	}

	count := repo.listCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, count, repo.listCount(), "no refreshes after teardown")
}
