package handlers

import (
	"errors"
	"log"
	"time"

	"ecompro/internal/models"
	"ecompro/internal/repositories"
	"ecompro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FlashSaleHandler handles HTTP requests for flash sales.
type FlashSaleHandler struct {
	service *services.FlashSaleService
}

// NewFlashSaleHandler creates a new FlashSaleHandler.
func NewFlashSaleHandler(service *services.FlashSaleService) *FlashSaleHandler {
	return &FlashSaleHandler{
		service: service,
	}
}

// RegisterRoutes registers the flash-sale routes with the Fiber app.
func (h *FlashSaleHandler) RegisterRoutes(router fiber.Router) {
	saleRoutes := router.Group("/flash-sales")
	saleRoutes.Get("/", h.HandleGetFlashSales)
	saleRoutes.Post("/", h.HandleCreateFlashSale)
	saleRoutes.Post("/:id/deactivate", h.HandleDeactivateFlashSale)
}

// HandleGetFlashSales retrieves all flash sales.
func (h *FlashSaleHandler) HandleGetFlashSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAllFlashSales()
	if err != nil {
		log.Printf("Error getting flash sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve flash sales",
			"error":   err.Error(),
		})
	}
	return c.JSON(sales)
}

// HandleCreateFlashSale creates a flash sale over a set of products.
func (h *FlashSaleHandler) HandleCreateFlashSale(c *fiber.Ctx) error {
	var body struct {
		Name               string    `json:"name"`
		Description        string    `json:"description"`
		StartDate          time.Time `json:"start_date"`
		EndDate            time.Time `json:"end_date"`
		DiscountPercentage int       `json:"discount_percentage"`
		ProductIDs         []string  `json:"product_ids"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	sale := models.FlashSale{
		Name:               body.Name,
		Description:        body.Description,
		StartDate:          body.StartDate,
		EndDate:            body.EndDate,
		DiscountPercentage: body.DiscountPercentage,
	}
	created, err := h.service.CreateFlashSale(&sale, body.ProductIDs)
	if err != nil {
		log.Printf("Error creating flash sale: %v", err)
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "One or more flash sale products were not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create flash sale",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleDeactivateFlashSale turns a flash sale off and clears product
// discounts.
func (h *FlashSaleHandler) HandleDeactivateFlashSale(c *fiber.Ctx) error {
	saleID := c.Params("id")
	if err := h.service.DeactivateFlashSale(saleID); err != nil {
		log.Printf("Error deactivating flash sale %s: %v", saleID, err)
		if errors.Is(err, repositories.ErrFlashSaleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Flash sale not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not deactivate flash sale",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}
