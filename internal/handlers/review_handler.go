package handlers

import (
	"errors"
	"log"

	"ecompro/internal/models"
	"ecompro/internal/repositories"
	"ecompro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	service *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service: service,
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/reviews", h.HandleAddReview)
	router.Get("/products/:id/reviews", h.HandleGetProductReviews)
}

// HandleAddReview creates a review for the authenticated owner.
func (h *ReviewHandler) HandleAddReview(c *fiber.Ctx) error {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		return err
	}

	var body struct {
		ProductID string `json:"product_id"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	review := models.Review{
		ProductID: body.ProductID,
		OwnerID:   ownerID,
		Rating:    body.Rating,
		Comment:   body.Comment,
	}
	if err := h.service.AddReview(&review); err != nil {
		log.Printf("Error adding review for product %s: %v", body.ProductID, err)
		switch {
		case errors.Is(err, services.ErrDuplicateReview):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "You have already submitted a review for this product.",
			})
		case errors.Is(err, repositories.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not submit review",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleGetProductReviews retrieves all reviews for a product.
func (h *ReviewHandler) HandleGetProductReviews(c *fiber.Ctx) error {
	productID := c.Params("id")
	reviews, err := h.service.GetProductReviews(productID)
	if err != nil {
		log.Printf("Error getting reviews for product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
			"error":   err.Error(),
		})
	}
	return c.JSON(reviews)
}
