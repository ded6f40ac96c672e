package handlers

import (
	"errors"
	"fmt"
	"log"

	"ecompro/internal/repositories"
	"ecompro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders and the dashboard roll-up.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/materialize", h.HandleMaterializeOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)

	router.Get("/dashboard/stats", h.HandleDashboardStats)
}

// HandleGetOrders retrieves the authenticated owner's orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		return err
	}

	orders, err := h.service.GetOrdersByOwner(ownerID)
	if err != nil {
		log.Printf("Error getting orders for owner %s: %v", ownerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}

// HandleMaterializeOrder is invoked by the payment-success collaborator. It
// converts the owner's cart into a durable order and clears the cart. Safe
// to call twice for the same payment: the second call is a no-op.
func (h *OrderHandler) HandleMaterializeOrder(c *fiber.Ctx) error {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		return err
	}

	var body struct {
		PaymentRef string `json:"payment_ref"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.service.MaterializeOrder(c.Context(), ownerID, body.PaymentRef)
	if err != nil {
		log.Printf("Error materializing order for owner %s: %v", ownerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not materialize order",
			"error":   err.Error(),
		})
	}
	if order == nil {
		// Already materialized or the cart was empty; nothing new.
		return c.JSON(fiber.Map{"success": true})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// HandleUpdateOrderStatus updates the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}

	if err := c.BodyParser(&updateData); err != nil || updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	if err := h.service.UpdateOrderStatus(orderID, updateData.Status); err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order update failed: %v", err.Error()),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s status updated successfully to %s", orderID, updateData.Status),
	})
}

// HandleDashboardStats returns order counts, revenue and recent orders.
func (h *OrderHandler) HandleDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		log.Printf("Error computing dashboard stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute dashboard stats",
			"error":   err.Error(),
		})
	}
	return c.JSON(stats)
}
