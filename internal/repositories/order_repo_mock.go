package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"ecompro/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// GetAll returns all orders.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrOrderNotFound)
	}
	return &order, nil
}

// GetByOwner returns all orders for one owner.
func (r *MockOrderRepository) GetByOwner(ownerID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []models.Order
	for _, order := range r.orders {
		if order.OwnerID == ownerID {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// GetByPaymentRef returns the order carrying the payment reference.
func (r *MockOrderRepository) GetByPaymentRef(paymentRef string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.PaymentRef != nil && *order.PaymentRef == paymentRef {
			o := order
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order with payment ref %s: %w", paymentRef, ErrOrderNotFound)
}

// Create adds a new order, rejecting duplicate payment references. Orders
// without a ref never collide, matching the NULL semantics of the unique
// index in the GORM implementation.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.PaymentRef != nil {
		for _, existing := range r.orders {
			if existing.PaymentRef != nil && *existing.PaymentRef == *order.PaymentRef {
				return fmt.Errorf("payment ref %s: %w", *order.PaymentRef, ErrDuplicatePaymentRef)
			}
		}
	}
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order with ID %s for status update: %w", id, ErrOrderNotFound)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// CountAndRevenue returns the order count and summed revenue.
func (r *MockOrderRepository) CountAndRevenue() (int64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var revenue int64
	for _, order := range r.orders {
		revenue += order.TotalAmount
	}
	return int64(len(r.orders)), revenue, nil
}

// Recent returns the most recently created orders, newest first.
func (r *MockOrderRepository) Recent(limit int) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}
