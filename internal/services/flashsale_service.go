package services

import (
	"fmt"
	"log"
	"math"

	"ecompro/internal/models"
	"ecompro/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// FlashSaleService creates and deactivates flash sales. Activating a sale
// stamps each member product with a computed discount price and the sale
// window; deactivating clears them again.
type FlashSaleService struct {
	saleRepo    repositories.FlashSaleRepository
	productRepo repositories.ProductRepository
	validate    *validator.Validate
}

// NewFlashSaleService creates a new FlashSaleService.
func NewFlashSaleService(saleRepo repositories.FlashSaleRepository, productRepo repositories.ProductRepository) *FlashSaleService {
	return &FlashSaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		validate:    validator.New(),
	}
}

// DiscountedPrice computes the flash-sale price for a list price in minor
// units: round(price * (1 - pct/100)).
func DiscountedPrice(price int64, discountPercentage int) int64 {
	return int64(math.Round(float64(price) * (1 - float64(discountPercentage)/100)))
}

// CreateFlashSale validates the sale, resolves every member product,
// computes its discounted price, persists the sale and writes the discount
// onto the products. Products that fail to resolve fail the whole creation
// before anything is written.
func (s *FlashSaleService) CreateFlashSale(sale *models.FlashSale, productIDs []string) (*models.FlashSale, error) {
	if err := s.validate.Struct(sale); err != nil {
		return nil, fmt.Errorf("flash sale validation failed: %w", err)
	}
	if len(productIDs) == 0 {
		return nil, fmt.Errorf("flash sale needs at least one product")
	}

	products := make([]*models.Product, 0, len(productIDs))
	for _, id := range productIDs {
		product, err := s.productRepo.GetByID(id)
		if err != nil {
			return nil, fmt.Errorf("flash sale product %s: %w", id, err)
		}
		products = append(products, product)
	}

	sale.IsActive = true
	sale.Products = make([]models.FlashSaleProduct, 0, len(products))
	for _, product := range products {
		sale.Products = append(sale.Products, models.FlashSaleProduct{
			ProductID:     product.ID,
			DiscountPrice: DiscountedPrice(product.Price, sale.DiscountPercentage),
		})
	}

	if err := s.saleRepo.Create(sale); err != nil {
		return nil, fmt.Errorf("failed to create flash sale: %w", err)
	}

	// Stamp the discount onto the catalog so cart snapshots pick it up.
	for i, product := range products {
		discount := sale.Products[i].DiscountPrice
		product.DiscountPrice = &discount
		product.IsSale = true
		endDate := sale.EndDate
		product.SaleEndDate = &endDate
		if err := s.productRepo.Update(product); err != nil {
			log.Printf("Warning: failed to apply flash sale price to product %s: %v", product.ID, err)
		}
	}

	return sale, nil
}

// DeactivateFlashSale turns a sale off and clears the discount fields on
// its member products.
func (s *FlashSaleService) DeactivateFlashSale(id string) error {
	sale, err := s.saleRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.saleRepo.SetActive(id, false); err != nil {
		return err
	}

	for _, member := range sale.Products {
		product, err := s.productRepo.GetByID(member.ProductID)
		if err != nil {
			log.Printf("Warning: flash sale product %s no longer resolves: %v", member.ProductID, err)
			continue
		}
		product.DiscountPrice = nil
		product.IsSale = false
		product.SaleEndDate = nil
		if err := s.productRepo.Update(product); err != nil {
			log.Printf("Warning: failed to clear flash sale price on product %s: %v", product.ID, err)
		}
	}
	return nil
}

// GetAllFlashSales retrieves all flash sales.
func (s *FlashSaleService) GetAllFlashSales() ([]models.FlashSale, error) {
	return s.saleRepo.GetAll()
}
