package services

import (
	"fmt"
	"strings"

	"ecompro/internal/models"
	"ecompro/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validator.New(),
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetFeaturedProducts retrieves the storefront's featured products.
func (s *ProductService) GetFeaturedProducts() ([]models.Product, error) {
	return s.repo.GetFeatured()
}

// GetLowStockProducts retrieves products at or below the stock threshold.
func (s *ProductService) GetLowStockProducts(threshold int) ([]models.Product, error) {
	return s.repo.GetLowStock(threshold)
}

// SearchProducts finds products matching the query in name or description.
// A blank query matches nothing rather than everything.
func (s *ProductService) SearchProducts(query string) ([]models.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Product{}, nil
	}
	return s.repo.Search(query)
}

// CreateProduct validates and creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return fmt.Errorf("product validation failed: %w", err)
	}
	if product.DiscountPrice != nil && *product.DiscountPrice >= product.Price {
		return fmt.Errorf("discount price must be lower than list price")
	}
	return s.repo.Create(product)
}

// UpdateProduct validates and updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return fmt.Errorf("product validation failed: %w", err)
	}
	if product.DiscountPrice != nil && *product.DiscountPrice >= product.Price {
		return fmt.Errorf("discount price must be lower than list price")
	}
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
