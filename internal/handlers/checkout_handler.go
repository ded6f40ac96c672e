package handlers

import (
	"errors"
	"log"

	"ecompro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for checkout.
type CheckoutHandler struct {
	service *services.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
	}
}

// RegisterRoutes registers the checkout route with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)
}

// HandleCheckout creates a payment session for the owner's cart and returns
// the redirect URL. The front end sends the customer there.
func (h *CheckoutHandler) HandleCheckout(c *fiber.Ctx) error {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		return err
	}

	url, err := h.service.PrepareCheckout(c.Context(), ownerID)
	if err != nil {
		log.Printf("Checkout failed for owner %s: %v", ownerID, err)
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Your cart is empty",
				"error":   "empty-cart",
			})
		case errors.Is(err, services.ErrPaymentSession):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message": "Payment processing is unavailable, please try again later",
				"error":   "payment-processing",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not start checkout",
			"error":   "cart-retrieval",
		})
	}

	return c.JSON(fiber.Map{"url": url})
}
