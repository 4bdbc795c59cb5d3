package services

import (
	"context"
	"errors"
	"sync"

	"storefront/models"
	"storefront/repositories"

	"golang.org/x/sync/errgroup"
)

var (
	ErrQuantityTooLow = errors.New("quantity must be at least 1")
	ErrItemNotFound   = errors.New("cart item not found")
)

// CartService mirrors the remote cart collection. The local cache is
// advisory until refreshed and is only ever updated from confirmed remote
// responses: each mutation takes a per-item sequence number before its
// remote call, and a confirmation is applied only if no higher-numbered
// confirmation for that item has landed first. A slow write can therefore
// never clobber the result of a later, faster one.
type CartService struct {
	repo repositories.CartRepository

	mu      sync.Mutex
	items   map[int]models.CartItem
	order   []int // item IDs in display order
	issued  map[int]uint64
	applied map[int]uint64
}

func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{
		repo:    repo,
		items:   map[int]models.CartItem{},
		issued:  map[int]uint64{},
		applied: map[int]uint64{},
	}
}

func (s *CartService) nextSeq(itemID int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued[itemID]++
	return s.issued[itemID]
}

// confirm applies a mutation's result to the cache unless a later
// confirmation for the same item already landed.
func (s *CartService) confirm(itemID int, seq uint64, apply func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.applied[itemID] {
		return false // stale response, discard
	}
	s.applied[itemID] = seq
	apply()
	return true
}

// Load fetches the full cart and replaces the local cache wholesale.
func (s *CartService) Load(ctx context.Context) ([]models.CartItem, error) {
	fetched, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[int]models.CartItem, len(fetched))
	s.order = s.order[:0]
	for _, item := range fetched {
		s.items[item.ID] = item
		s.order = append(s.order, item.ID)
	}
	return s.itemsLocked(), nil
}

// Items returns the cached line items in display order.
func (s *CartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsLocked()
}

func (s *CartService) itemsLocked() []models.CartItem {
	items := make([]models.CartItem, 0, len(s.order))
	for _, id := range s.order {
		if item, ok := s.items[id]; ok {
			items = append(items, item)
		}
	}
	return items
}

// AddOrMerge adds a product to the cart, merging into the existing line
// item when the product is already there. The unit price is the effective
// price at add time and is locked in from then on. The lookup-then-write
// is not atomic against concurrent adds of the same product from another
// client of the remote store.
func (s *CartService) AddOrMerge(ctx context.Context, productID int, title string, unitPrice float64, image string, quantity int, note string) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrQuantityTooLow
	}

	existing, err := s.repo.FindByProduct(ctx, productID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		updated := *existing
		updated.Quantity += quantity
		seq := s.nextSeq(updated.ID)
		if err := s.repo.Update(ctx, updated); err != nil {
			return nil, err
		}
		s.confirm(updated.ID, seq, func() {
			if _, ok := s.items[updated.ID]; !ok {
				s.order = append(s.order, updated.ID)
			}
			s.items[updated.ID] = updated
		})
		return &updated, nil
	}

	item := models.CartItem{
		ProductID: productID,
		Title:     title,
		Price:     unitPrice,
		Image:     image,
		Quantity:  quantity,
		Note:      note,
	}
	if err := s.repo.Create(ctx, &item); err != nil {
		return nil, err
	}
	seq := s.nextSeq(item.ID)
	s.confirm(item.ID, seq, func() {
		s.items[item.ID] = item
		s.order = append(s.order, item.ID)
	})
	return &item, nil
}

// SetQuantity persists a new quantity. Values below 1 are rejected before
// any remote call is made.
func (s *CartService) SetQuantity(ctx context.Context, itemID, quantity int) error {
	if quantity < 1 {
		return ErrQuantityTooLow
	}

	item, ok := s.lookup(itemID)
	if !ok {
		return ErrItemNotFound
	}

	item.Quantity = quantity
	seq := s.nextSeq(itemID)
	if err := s.repo.Update(ctx, item); err != nil {
		return err
	}
	s.confirm(itemID, seq, func() {
		if cached, ok := s.items[itemID]; ok {
			cached.Quantity = quantity
			s.items[itemID] = cached
		}
	})
	return nil
}

// SetNote persists the line item's note text.
func (s *CartService) SetNote(ctx context.Context, itemID int, note string) error {
	item, ok := s.lookup(itemID)
	if !ok {
		return ErrItemNotFound
	}

	item.Note = note
	seq := s.nextSeq(itemID)
	if err := s.repo.Update(ctx, item); err != nil {
		return err
	}
	s.confirm(itemID, seq, func() {
		if cached, ok := s.items[itemID]; ok {
			cached.Note = note
			s.items[itemID] = cached
		}
	})
	return nil
}

// Remove deletes one line item. An item already gone from the remote store
// is dropped from the cache as well, since absence is the desired outcome.
func (s *CartService) Remove(ctx context.Context, itemID int) error {
	seq := s.nextSeq(itemID)
	err := s.repo.Delete(ctx, itemID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	s.confirm(itemID, seq, func() {
		s.dropLocked(itemID)
	})
	return nil
}

// Clear deletes every line item, one delete per item like the original
// store protocol requires. Each item leaves the cache only once its own
// deletion is confirmed, so an interrupted clear never reports items gone
// that the remote store still holds.
func (s *CartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	ids := append([]int(nil), s.order...)
	s.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			seq := s.nextSeq(id)
			err := s.repo.Delete(ctx, id)
			if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
			s.confirm(id, seq, func() {
				s.dropLocked(id)
			})
			return nil
		})
	}
	return g.Wait()
}

// Snapshot derives the current totals; nothing is stored.
func (s *CartService) Snapshot() models.CartSnapshot {
	return models.Snapshot(s.Items())
}

// Summary is the lightweight count/subtotal pair for the nav badge.
func (s *CartService) Summary() models.CartSummary {
	items := s.Items()
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return models.CartSummary{Count: len(items), Subtotal: subtotal}
}

func (s *CartService) lookup(itemID int) (models.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[itemID]
	return item, ok
}

func (s *CartService) dropLocked(itemID int) {
	delete(s.items, itemID)
	for i, id := range s.order {
		if id == itemID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
