package handlers

import (
	"errors"
	"log"

	"ecompro/internal/repositories"
	"ecompro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Post("/items/options", h.HandleAddItemWithOptions)
	cartRoutes.Patch("/items/quantity", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items", h.HandleRemoveLine)
	cartRoutes.Delete("/products/:productId", h.HandleRemoveProduct)
}

// HandleGetCart returns the owner's cart. A missing cart is a valid state
// and comes back as a null cart, not an error.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		return err
	}
	cart := h.service.GetCart(c.Context(), ownerID)
	return c.JSON(fiber.Map{"cart": cart})
}

// HandleAddItem adds one unit of a product with no variant selection.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		return err
	}

	var body struct {
		ProductID string `json:"product_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id is required",
		})
	}

	if err := h.service.AddItem(c.Context(), ownerID, body.ProductID); err != nil {
		return h.cartError(c, "Could not add item to cart", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleAddItemWithOptions adds a product variant with an explicit quantity.
func (h *CartHandler) HandleAddItemWithOptions(c *fiber.Ctx) error {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		return err
	}

	var body struct {
		ProductID string `json:"product_id"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil || body.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id is required",
		})
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	if err := h.service.AddItemWithOptions(c.Context(), ownerID, body.ProductID, body.Size, body.Color, body.Quantity); err != nil {
		return h.cartError(c, "Could not add item to cart", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleUpdateQuantity sets the quantity on a product's cart lines.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		return err
	}

	var body struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil || body.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id and quantity are required",
		})
	}

	if err := h.service.UpdateQuantity(c.Context(), ownerID, body.ProductID, body.Quantity); err != nil {
		return h.cartError(c, "Could not update cart item quantity", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleRemoveLine removes a single variant line from the cart.
func (h *CartHandler) HandleRemoveLine(c *fiber.Ctx) error {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		return err
	}

	var body struct {
		ProductID string `json:"product_id"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := c.BodyParser(&body); err != nil || body.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id is required",
		})
	}

	if err := h.service.RemoveLine(c.Context(), ownerID, body.ProductID, body.Size, body.Color); err != nil {
		return h.cartError(c, "Could not remove item from cart", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleRemoveProduct removes every variant of a product from the cart.
func (h *CartHandler) HandleRemoveProduct(c *fiber.Ctx) error {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		return err
	}

	productID := c.Params("productId")
	if err := h.service.RemoveProduct(c.Context(), ownerID, productID); err != nil {
		return h.cartError(c, "Could not remove product from cart", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *CartHandler) cartError(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, repositories.ErrProductNotFound),
		errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrLineNotFound):
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
