package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"ecompro/internal/models"
	"ecompro/internal/repositories"
	"ecompro/pkg/metrics"
	"ecompro/pkg/payment"
)

// CheckoutConfig carries the deployment-wide checkout settings. Currency
// applies to every line item; there is no per-item currency.
type CheckoutConfig struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

// CheckoutService snapshots the current cart into payment-gateway line items
// and obtains a redirect URL. It checks out at cart-snapshot prices, not
// live catalog prices; the snapshot taken at the last cart mutation is the
// price the customer saw.
type CheckoutService struct {
	store   repositories.CartStore
	gateway payment.Gateway
	metrics *metrics.Registry
	config  CheckoutConfig

	// The cart read is the only retried step; gateway failures are
	// reported, never retried.
	cartReadAttempts int
	cartReadDelay    time.Duration
}

// NewCheckoutService creates a new CheckoutService. metrics may be nil.
func NewCheckoutService(store repositories.CartStore, gateway payment.Gateway, cfg CheckoutConfig, m *metrics.Registry) *CheckoutService {
	return &CheckoutService{
		store:            store,
		gateway:          gateway,
		metrics:          m,
		config:           cfg,
		cartReadAttempts: 3,
		cartReadDelay:    time.Second,
	}
}

// PrepareCheckout converts the owner's cart into a payment session and
// returns the gateway's redirect URL. An empty or missing cart fails with
// ErrEmptyCart before any external call; a gateway failure surfaces as
// ErrPaymentSession and leaves the cart untouched.
func (s *CheckoutService) PrepareCheckout(ctx context.Context, ownerID string) (string, error) {
	cart, err := s.readCartWithRetry(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("failed to read cart for checkout: %w", err)
	}
	if cart == nil || len(cart.Items) == 0 {
		return "", ErrEmptyCart
	}

	lineItems := make([]payment.LineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		lineItems = append(lineItems, payment.LineItem{
			Name:       item.Name,
			ImageURL:   item.ImageURL,
			UnitAmount: item.EffectiveUnitAmount(),
			Quantity:   item.Quantity,
		})
	}

	url, err := s.gateway.CreateSession(ctx, payment.SessionRequest{
		Currency:   s.config.Currency,
		LineItems:  lineItems,
		SuccessURL: s.config.SuccessURL,
		CancelURL:  s.config.CancelURL,
		OwnerID:    ownerID,
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.PaymentFailures.Inc()
		}
		return "", fmt.Errorf("%w: %v", ErrPaymentSession, err)
	}

	if s.metrics != nil {
		s.metrics.CheckoutSessions.Inc()
	}
	return url, nil
}

// readCartWithRetry reads the cart with a bounded fixed-delay retry. It does
// not distinguish transient from permanent store failures.
func (s *CheckoutService) readCartWithRetry(ctx context.Context, ownerID string) (*models.Cart, error) {
	var cart *models.Cart
	var err error
	for attempt := 1; attempt <= s.cartReadAttempts; attempt++ {
		cart, err = s.store.Get(ctx, ownerID)
		if err == nil {
			return cart, nil
		}
		log.Printf("cart read attempt %d/%d failed for owner %s: %v", attempt, s.cartReadAttempts, ownerID, err)
		if attempt < s.cartReadAttempts {
			time.Sleep(s.cartReadDelay)
		}
	}
	return nil, err
}
