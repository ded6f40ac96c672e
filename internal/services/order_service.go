package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ecompro/internal/models"
	"ecompro/internal/repositories"
	"ecompro/pkg/metrics"

	"github.com/google/uuid"
)

// EventPublisher publishes order lifecycle events to the message broker.
type EventPublisher interface {
	PublishOrderCreated(orderData map[string]interface{}) error
}

// OrderService materializes completed payments into durable orders and
// serves order queries for the storefront and dashboard.
type OrderService struct {
	orderRepo repositories.OrderRepository
	store     repositories.CartStore
	publisher EventPublisher
	metrics   *metrics.Registry
}

// NewOrderService creates a new OrderService. publisher and metrics may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, store repositories.CartStore, publisher EventPublisher, m *metrics.Registry) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		store:     store,
		publisher: publisher,
		metrics:   m,
	}
}

// MaterializeOrder converts the owner's current cart into a persisted order
// and then clears the cart, in that sequence: if the order write fails the
// cart stays intact, so a paid-for cart is never silently lost.
//
// paymentRef is the payment session id and doubles as an idempotency key:
// a redelivered payment event for an already-materialized payment is a
// no-op, even when the first attempt created the order but failed to clear
// the cart. An empty or missing cart is also a no-op success, which covers
// the common double-invocation after the cart was already cleared.
//
// Returns the created order, or nil when the call was a no-op.
func (s *OrderService) MaterializeOrder(ctx context.Context, ownerID, paymentRef string) (*models.Order, error) {
	if paymentRef != "" {
		if existing, err := s.orderRepo.GetByPaymentRef(paymentRef); err == nil {
			log.Printf("payment ref %s already materialized as order %s, skipping", paymentRef, existing.ID)
			return nil, nil
		} else if !errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, fmt.Errorf("idempotency lookup for payment ref %s failed: %w", paymentRef, err)
		}
	}

	// Unlike cart mutations, a store read failure is a hard error here:
	// assuming an empty cart would drop a paid order on the floor.
	cart, err := s.store.Get(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart for owner %s: %w", ownerID, err)
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, nil
	}

	order := &models.Order{
		ID:      uuid.New().String(),
		OwnerID: ownerID,
		Status:  "pending",
	}
	if paymentRef != "" {
		order.PaymentRef = &paymentRef
	}
	for _, item := range cart.Items {
		unitPaid := item.EffectiveUnitAmount()
		order.Items = append(order.Items, models.OrderItem{
			ProductID:      item.ProductID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitAmountPaid: unitPaid,
			Size:           item.Size,
			Color:          item.Color,
		})
		order.TotalAmount += unitPaid * int64(item.Quantity)
	}

	if err := s.orderRepo.Create(order); err != nil {
		if errors.Is(err, repositories.ErrDuplicatePaymentRef) {
			// Lost the race against a concurrent delivery of the same
			// payment event; the order exists, nothing more to do.
			log.Printf("payment ref %s raced an existing order, skipping", paymentRef)
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrOrderPersistence, err)
	}

	if s.metrics != nil {
		s.metrics.OrdersMaterialized.Inc()
		s.metrics.OrderRevenue.Add(float64(order.TotalAmount))
	}

	s.publishOrderCreated(order)

	// Clear the cart only after the order write succeeded. If this fails
	// the caller may retry the whole operation; the payment ref guards
	// against a duplicate order.
	if err := s.store.Delete(ctx, ownerID); err != nil {
		log.Printf("order %s created but cart clear failed for owner %s: %v", order.ID, ownerID, err)
		return order, fmt.Errorf("order created but failed to clear cart: %w", err)
	}

	return order, nil
}

func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping order event.")
		return
	}
	event := map[string]interface{}{
		"orderID": order.ID,
		"ownerID": order.OwnerID,
		"status":  order.Status,
		"total":   order.TotalAmount,
	}
	if err := s.publisher.PublishOrderCreated(event); err != nil {
		// Best-effort: the order is already durable, the event is not
		// allowed to fail materialization.
		log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
	} else {
		log.Printf("Successfully published order created event for order %s", order.ID)
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetOrdersByOwner retrieves all orders belonging to one owner.
func (s *OrderService) GetOrdersByOwner(ownerID string) ([]models.Order, error) {
	return s.orderRepo.GetByOwner(ownerID)
}

// UpdateOrderStatus updates the status of an existing order. Status
// transitions after materialization belong to fulfillment.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{"pending": true, "processing": true, "shipped": true, "delivered": true, "cancelled": true}
	if _, ok := validStatuses[status]; !ok {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}

// DashboardStats is the order roll-up shown on the admin dashboard.
type DashboardStats struct {
	TotalOrders  int64          `json:"total_orders"`
	TotalRevenue int64          `json:"total_revenue"`
	RecentOrders []models.Order `json:"recent_orders"`
}

// GetDashboardStats returns order counts, summed revenue and the most
// recent orders.
func (s *OrderService) GetDashboardStats() (*DashboardStats, error) {
	count, revenue, err := s.orderRepo.CountAndRevenue()
	if err != nil {
		return nil, fmt.Errorf("failed to compute order stats: %w", err)
	}
	recent, err := s.orderRepo.Recent(5)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent orders: %w", err)
	}
	return &DashboardStats{
		TotalOrders:  count,
		TotalRevenue: revenue,
		RecentOrders: recent,
	}, nil
}
