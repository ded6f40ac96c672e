package repositories

import (
	"errors"
	"fmt"

	"ecompro/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders with their items.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order by its ID, with items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetByOwner retrieves all orders belonging to one owner, newest first.
func (r *GORMOrderRepository) GetByOwner(ownerID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Where("owner_id = ?", ownerID).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for owner %s: %w", ownerID, err)
	}
	return orders, nil
}

// GetByPaymentRef retrieves the order created for a payment-session reference.
func (r *GORMOrderRepository) GetByPaymentRef(paymentRef string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "payment_ref = ?", paymentRef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with payment ref %s: %w", paymentRef, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to get order by payment ref %s: %w", paymentRef, err)
	}
	return &order, nil
}

// Create persists the order and its items in one transaction. The unique
// index on payment_ref turns a redelivered payment event into
// ErrDuplicatePaymentRef instead of a second order row; orders without a
// payment ref store NULL and never collide.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) && order.PaymentRef != nil {
			return fmt.Errorf("payment ref %s: %w", *order.PaymentRef, ErrDuplicatePaymentRef)
		}
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateStatus updates the status of an order.
func (r *GORMOrderRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s for status update: %w", id, ErrOrderNotFound)
	}
	return nil
}

// CountAndRevenue returns the order count and summed revenue in minor units.
func (r *GORMOrderRepository) CountAndRevenue() (int64, int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count orders: %w", err)
	}
	var revenue struct {
		Total int64
	}
	if err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").Scan(&revenue).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to sum order revenue: %w", err)
	}
	return count, revenue.Total, nil
}

// Recent returns the most recently created orders, newest first.
func (r *GORMOrderRepository) Recent(limit int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Order("created_at desc").
		Limit(limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent orders: %w", err)
	}
	return orders, nil
}
