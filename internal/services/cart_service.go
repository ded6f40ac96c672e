package services

import (
	"context"
	"fmt"
	"log"

	"ecompro/internal/models"
	"ecompro/internal/repositories"
	"ecompro/pkg/metrics"

	"golang.org/x/sync/singleflight"
)

// Quantity bounds for a single cart line. Values outside the range are
// clamped, not rejected.
const (
	MinLineQuantity = 1
	MaxLineQuantity = 10
)

// CartService is the cart aggregation engine: it turns add/update/remove
// intents plus catalog data into a new canonical cart state.
//
// Every mutation is read-whole-record, mutate, write-whole-record against
// the cart store; the service holds no cart state between calls and takes
// no locks, so concurrent mutations to the same owner can interleave as a
// lost update. See DESIGN.md for the trade-off.
type CartService struct {
	store       repositories.CartStore
	productRepo repositories.ProductRepository
	metrics     *metrics.Registry
	sfg         singleflight.Group // collapses concurrent reads per owner
}

// NewCartService creates a new CartService. metrics may be nil.
func NewCartService(store repositories.CartStore, productRepo repositories.ProductRepository, m *metrics.Registry) *CartService {
	return &CartService{
		store:       store,
		productRepo: productRepo,
		metrics:     m,
	}
}

// GetCart returns the owner's cart, or nil when none exists. A missing cart
// is a valid state, not an error. Store failures degrade to nil so the
// storefront keeps rendering.
//
// Collapsed concurrent reads share one *models.Cart, so callers must treat
// the result as read-only; mutations go through the service operations.
func (s *CartService) GetCart(ctx context.Context, ownerID string) *models.Cart {
	v, _, _ := s.sfg.Do(ownerID, func() (interface{}, error) {
		cart, err := s.store.Get(ctx, ownerID)
		if err != nil {
			log.Printf("cart store read failed for owner %s: %v", ownerID, err)
			return (*models.Cart)(nil), nil
		}
		return cart, nil
	})
	return v.(*models.Cart)
}

// AddItem adds one unit of a product with no variant selection, merging into
// an existing no-variant line when one is present.
func (s *CartService) AddItem(ctx context.Context, ownerID, productID string) error {
	return s.addOrIncrement(ctx, ownerID, productID, "", "", 1)
}

// AddItemWithOptions adds quantity units of a product variant, merging into
// the line with the same (product, size, color) triple when one is present.
func (s *CartService) AddItemWithOptions(ctx context.Context, ownerID, productID, size, color string, quantity int) error {
	return s.addOrIncrement(ctx, ownerID, productID, size, color, quantity)
}

// addOrIncrement applies the single merge policy for both add paths:
// increment the existing line's quantity by the requested delta, then clamp.
func (s *CartService) addOrIncrement(ctx context.Context, ownerID, productID, size, color string, quantity int) error {
	quantity = clampQuantity(quantity)

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return fmt.Errorf("catalog lookup for product %s failed: %w", productID, err)
	}

	cart := s.loadOrEmpty(ctx, ownerID)

	merged := false
	for i := range cart.Items {
		if cart.Items[i].SameVariant(productID, size, color) {
			cart.Items[i].Quantity = clampQuantity(cart.Items[i].Quantity + quantity)
			// Touching the line refreshes its price snapshot.
			cart.Items[i].Price = product.Price
			cart.Items[i].DiscountPrice = product.DiscountPrice
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID:     product.ID,
			Name:          product.Name,
			Price:         product.Price,
			DiscountPrice: product.DiscountPrice,
			ImageURL:      product.PrimaryImage(),
			Quantity:      quantity,
			Size:          size,
			Color:         color,
		})
	}

	if err := s.store.Set(ctx, ownerID, cart); err != nil {
		return fmt.Errorf("failed to write cart for owner %s: %w", ownerID, err)
	}
	s.countMutation("add")
	return nil
}

// UpdateQuantity sets the quantity on every line of the product, clamped to
// the allowed range, and refreshes the line's price snapshot from the
// catalog. This is the only operation that refreshes an existing snapshot
// without an add.
func (s *CartService) UpdateQuantity(ctx context.Context, ownerID, productID string, quantity int) error {
	cart := s.loadOrEmpty(ctx, ownerID)
	if len(cart.Items) == 0 {
		return ErrCartNotFound
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return fmt.Errorf("catalog lookup for product %s failed: %w", productID, err)
	}

	quantity = clampQuantity(quantity)
	matched := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			cart.Items[i].Price = product.Price
			cart.Items[i].DiscountPrice = product.DiscountPrice
			matched = true
		}
	}
	if !matched {
		return ErrLineNotFound
	}

	if err := s.store.Set(ctx, ownerID, cart); err != nil {
		return fmt.Errorf("failed to write cart for owner %s: %w", ownerID, err)
	}
	s.countMutation("update")
	return nil
}

// RemoveLine removes the line matching the full variant triple. Removing a
// line that is not there is a no-op success. When the last line goes, the
// cart record is deleted entirely rather than stored empty.
func (s *CartService) RemoveLine(ctx context.Context, ownerID, productID, size, color string) error {
	return s.removeMatching(ctx, ownerID, func(item *models.CartItem) bool {
		return item.SameVariant(productID, size, color)
	})
}

// RemoveProduct removes every variant of the product in one call.
func (s *CartService) RemoveProduct(ctx context.Context, ownerID, productID string) error {
	return s.removeMatching(ctx, ownerID, func(item *models.CartItem) bool {
		return item.ProductID == productID
	})
}

func (s *CartService) removeMatching(ctx context.Context, ownerID string, match func(*models.CartItem) bool) error {
	cart := s.loadOrEmpty(ctx, ownerID)
	if len(cart.Items) == 0 {
		return nil // nothing to remove
	}

	kept := cart.Items[:0]
	for i := range cart.Items {
		if !match(&cart.Items[i]) {
			kept = append(kept, cart.Items[i])
		}
	}
	if len(kept) == len(cart.Items) {
		return nil // idempotent: line was not there
	}
	cart.Items = kept

	if len(cart.Items) == 0 {
		if err := s.store.Delete(ctx, ownerID); err != nil {
			return fmt.Errorf("failed to delete cart for owner %s: %w", ownerID, err)
		}
	} else {
		if err := s.store.Set(ctx, ownerID, cart); err != nil {
			return fmt.Errorf("failed to write cart for owner %s: %w", ownerID, err)
		}
	}
	s.countMutation("remove")
	return nil
}

// loadOrEmpty reads the owner's cart, degrading a store read failure to an
// empty cart: mutations prefer availability over consistency on the read
// side, while write failures stay hard errors.
func (s *CartService) loadOrEmpty(ctx context.Context, ownerID string) *models.Cart {
	cart, err := s.store.Get(ctx, ownerID)
	if err != nil {
		log.Printf("cart store read failed for owner %s, assuming empty cart: %v", ownerID, err)
		cart = nil
	}
	if cart == nil {
		cart = &models.Cart{OwnerID: ownerID}
	}
	return cart
}

func (s *CartService) countMutation(op string) {
	if s.metrics != nil {
		s.metrics.CartMutations.WithLabelValues(op).Inc()
	}
}

func clampQuantity(quantity int) int {
	if quantity < MinLineQuantity {
		return MinLineQuantity
	}
	if quantity > MaxLineQuantity {
		return MaxLineQuantity
	}
	return quantity
}
