package repositories

import (
	"errors"
	"fmt"
	"strings"

	"ecompro/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetFeatured retrieves all products flagged for the storefront front page.
func (r *GORMProductRepository) GetFeatured() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("is_featured = ?", true).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get featured products: %w", err)
	}
	return products, nil
}

// GetLowStock retrieves products whose stock is at or below the threshold.
func (r *GORMProductRepository) GetLowStock(threshold int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("stock <= ?", threshold).Order("stock asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get low stock products: %w", err)
	}
	return products, nil
}

// Search retrieves products whose name or description contains the query,
// case-insensitively, capped at SearchResultLimit.
func (r *GORMProductRepository) Search(query string) ([]models.Product, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var products []models.Product
	if err := r.db.
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Limit(SearchResultLimit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products for %q: %w", query, err)
	}
	return products, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound when no rows matched,
		// so we check RowsAffected.
		return fmt.Errorf("product with ID %s for update: %w", product.ID, ErrProductNotFound)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s for deletion: %w", id, ErrProductNotFound)
	}
	return nil
}
