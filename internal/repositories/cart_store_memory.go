package repositories

import (
	"context"
	"sync"

	"ecompro/internal/models"
)

// MemoryCartStore is an in-memory implementation of CartStore, used in tests
// and local runs without Redis. Records are deep-copied on the way in and
// out so callers cannot alias the stored state.
type MemoryCartStore struct {
	carts map[string]models.Cart
	mu    sync.RWMutex
}

// NewMemoryCartStore creates a new instance of MemoryCartStore.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[string]models.Cart),
	}
}

// Get returns the owner's cart, or (nil, nil) when none exists.
func (s *MemoryCartStore) Get(ctx context.Context, ownerID string) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[ownerID]
	if !ok {
		return nil, nil
	}
	return copyCart(&cart), nil
}

// Set replaces the owner's whole cart record.
func (s *MemoryCartStore) Set(ctx context.Context, ownerID string, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[ownerID] = *copyCart(cart)
	return nil
}

// Delete removes the owner's cart record.
func (s *MemoryCartStore) Delete(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, ownerID)
	return nil
}

func copyCart(cart *models.Cart) *models.Cart {
	out := models.Cart{
		OwnerID: cart.OwnerID,
		Items:   make([]models.CartItem, len(cart.Items)),
	}
	copy(out.Items, cart.Items)
	for i, item := range cart.Items {
		if item.DiscountPrice != nil {
			dp := *item.DiscountPrice
			out.Items[i].DiscountPrice = &dp
		}
	}
	return &out
}
