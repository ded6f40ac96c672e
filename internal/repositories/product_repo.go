package repositories

import (
	"ecompro/internal/models"
)

// SearchResultLimit caps how many products a catalog search returns.
const SearchResultLimit = 10

// ProductRepository defines the interface for catalog data access. The cart
// subsystem only ever reads from it; the write methods serve the dashboard.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetFeatured() ([]models.Product, error)
	GetLowStock(threshold int) ([]models.Product, error)
	// Search matches the query case-insensitively against product names and
	// descriptions, returning at most SearchResultLimit products.
	Search(query string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
