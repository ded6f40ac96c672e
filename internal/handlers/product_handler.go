package handlers

import (
	"errors"
	"fmt"
	"log"

	"ecompro/internal/models"
	"ecompro/internal/repositories"
	"ecompro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Low-stock listing threshold for the dashboard.
const defaultLowStockThreshold = 5

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/featured", h.HandleGetFeatured)
	productRoutes.Get("/low-stock", h.HandleGetLowStock)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetFeatured retrieves the featured products.
func (h *ProductHandler) HandleGetFeatured(c *fiber.Ctx) error {
	products, err := h.service.GetFeaturedProducts()
	if err != nil {
		log.Printf("Error getting featured products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve featured products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetLowStock retrieves products at or below the stock threshold.
func (h *ProductHandler) HandleGetLowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", defaultLowStockThreshold)
	products, err := h.service.GetLowStockProducts(threshold)
	if err != nil {
		log.Printf("Error getting low stock products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve low stock products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleSearchProducts finds products by a free-text query over name and
// description.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "query parameter is required",
		})
	}

	products, err := h.service.SearchProducts(query)
	if err != nil {
		log.Printf("Error searching products for %q: %v", query, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not search products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.ID = c.Params("id")

	if err := h.service.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %s: %v", product.ID, err)
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", product.ID),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %s deleted successfully", productID),
	})
}
