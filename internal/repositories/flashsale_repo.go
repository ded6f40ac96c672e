package repositories

import (
	"errors"
	"fmt"

	"ecompro/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FlashSaleRepository defines the interface for flash-sale data access.
type FlashSaleRepository interface {
	Create(sale *models.FlashSale) error
	GetByID(id string) (*models.FlashSale, error)
	GetAll() ([]models.FlashSale, error)
	SetActive(id string, active bool) error
}

// GORMFlashSaleRepository is a GORM implementation of FlashSaleRepository.
type GORMFlashSaleRepository struct {
	db *gorm.DB
}

// NewGORMFlashSaleRepository creates a new instance of GORMFlashSaleRepository.
func NewGORMFlashSaleRepository(db *gorm.DB) *GORMFlashSaleRepository {
	return &GORMFlashSaleRepository{
		db: db,
	}
}

// Create persists the flash sale and its product memberships atomically.
func (r *GORMFlashSaleRepository) Create(sale *models.FlashSale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(sale).Error
	}); err != nil {
		return fmt.Errorf("failed to create flash sale: %w", err)
	}
	return nil
}

// GetByID retrieves a flash sale with its product memberships.
func (r *GORMFlashSaleRepository) GetByID(id string) (*models.FlashSale, error) {
	var sale models.FlashSale
	if err := r.db.Preload("Products").First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("flash sale with ID %s: %w", id, ErrFlashSaleNotFound)
		}
		return nil, fmt.Errorf("failed to get flash sale by ID %s: %w", id, err)
	}
	return &sale, nil
}

// GetAll retrieves all flash sales, newest first.
func (r *GORMFlashSaleRepository) GetAll() ([]models.FlashSale, error) {
	var sales []models.FlashSale
	if err := r.db.Preload("Products").Order("created_at desc").Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to get all flash sales: %w", err)
	}
	return sales, nil
}

// SetActive flips the active flag on a flash sale.
func (r *GORMFlashSaleRepository) SetActive(id string, active bool) error {
	res := r.db.Model(&models.FlashSale{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return fmt.Errorf("failed to update flash sale active flag: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("flash sale with ID %s: %w", id, ErrFlashSaleNotFound)
	}
	return nil
}
