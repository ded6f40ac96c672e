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

// BannerHandler handles HTTP requests for storefront banners.
type BannerHandler struct {
	service *services.BannerService
}

// NewBannerHandler creates a new BannerHandler.
func NewBannerHandler(service *services.BannerService) *BannerHandler {
	return &BannerHandler{
		service: service,
	}
}

// RegisterRoutes registers the banner routes with the Fiber app.
func (h *BannerHandler) RegisterRoutes(router fiber.Router) {
	bannerRoutes := router.Group("/banners")
	bannerRoutes.Get("/", h.HandleGetBanners)
	bannerRoutes.Post("/", h.HandleCreateBanner)
	bannerRoutes.Delete("/:id", h.HandleDeleteBanner)
}

// HandleGetBanners retrieves all banners.
func (h *BannerHandler) HandleGetBanners(c *fiber.Ctx) error {
	banners, err := h.service.GetAllBanners()
	if err != nil {
		log.Printf("Error getting banners: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve banners",
			"error":   err.Error(),
		})
	}
	return c.JSON(banners)
}

// HandleCreateBanner creates a new banner.
func (h *BannerHandler) HandleCreateBanner(c *fiber.Ctx) error {
	var banner models.Banner
	if err := c.BodyParser(&banner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateBanner(&banner); err != nil {
		log.Printf("Error creating banner: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create banner",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(banner)
}

// HandleDeleteBanner deletes a banner by its ID.
func (h *BannerHandler) HandleDeleteBanner(c *fiber.Ctx) error {
	bannerID := c.Params("id")
	if err := h.service.DeleteBanner(bannerID); err != nil {
		log.Printf("Error deleting banner %s: %v", bannerID, err)
		if errors.Is(err, repositories.ErrBannerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Banner with ID %s not found", bannerID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete banner",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Banner %s deleted successfully", bannerID),
	})
}
