package repositories

import (
	"ecompro/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// written exactly once at materialization and never mutated by the cart
// subsystem; UpdateStatus exists for the fulfillment side.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByOwner(ownerID string) ([]models.Order, error)
	// GetByPaymentRef looks an order up by its payment-session reference.
	// Returns ErrOrderNotFound when no order carries the reference.
	GetByPaymentRef(paymentRef string) (*models.Order, error)
	// Create persists the order and its items atomically. A duplicate
	// payment reference fails with ErrDuplicatePaymentRef.
	Create(order *models.Order) error
	UpdateStatus(id string, status string) error
	// CountAndRevenue returns the number of orders and the summed
	// TotalAmount across all of them, for the dashboard.
	CountAndRevenue() (int64, int64, error)
	// Recent returns the most recently created orders, newest first.
	Recent(limit int) ([]models.Order, error)
}
