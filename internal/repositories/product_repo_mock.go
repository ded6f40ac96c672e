package repositories

import (
	"fmt"
	"strings"
	"sync"

	"ecompro/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
	}
	return &product, nil
}

// GetFeatured returns products flagged as featured.
func (r *MockProductRepository) GetFeatured() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var featured []models.Product
	for _, p := range r.products {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// GetLowStock returns products whose stock is at or below the threshold.
func (r *MockProductRepository) GetLowStock(threshold int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var low []models.Product
	for _, p := range r.products {
		if p.Stock <= threshold {
			low = append(low, p)
		}
	}
	return low, nil
}

// Search matches the query case-insensitively against names and
// descriptions, capped at SearchResultLimit.
func (r *MockProductRepository) Search(query string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)
	var matches []models.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			matches = append(matches, p)
			if len(matches) == SearchResultLimit {
				break
			}
		}
	}
	return matches, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s for update: %w", product.ID, ErrProductNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s for deletion: %w", id, ErrProductNotFound)
	}
	delete(r.products, id)
	return nil
}
