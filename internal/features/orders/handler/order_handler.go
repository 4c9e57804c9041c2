package handler

import (
	"net/http"

	"shop-admin/internal/core/server"
	"shop-admin/internal/features/orders/domain"
	"shop-admin/internal/features/orders/ports"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service is the OrderService instance.
	service ports.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s ports.OrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// Register mounts the order routes on r.
func (h *OrderHandler) Register(r fiber.Router) {
	g := r.Group("/orders")
	g.Get("/", h.ListOrders)
	g.Get("/stats", h.GetStats)
	g.Get("/:id", h.GetOrder)
	g.Put("/:id/status", h.UpdateOrderStatus)
}

// ListOrders handles GET /admin/orders.
// @Summary List orders
// @Description Lists orders filtered by status (case-insensitive) and customer name.
// @Tags Orders
// @Produce json
// @Param status query string false "pending, confirmed, processing, shipping, delivered or cancelled"
// @Param customerName query string false "Case-insensitive match on the customer's full name"
// @Param refresh query bool false "Reload from the backend (default true)"
// @Success 200 {array} domain.View
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	criteria := domain.Criteria{
		Status:       domain.OrderStatus(c.Query("status")),
		CustomerName: c.Query("customerName"),
	}

	if c.Query("refresh") == "false" {
		return c.Status(http.StatusOK).JSON(h.service.View(criteria))
	}

	views, err := h.service.List(server.Context(c), criteria)
	if err != nil {
		return server.Fail(c, err, "Could not load orders")
	}
	return c.Status(http.StatusOK).JSON(views)
}

// GetStats handles GET /admin/orders/stats.
// @Summary Order statistics
// @Tags Orders
// @Produce json
// @Success 200 {object} domain.Stats
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/orders/stats [get]
func (h *OrderHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(server.Context(c))
	if err != nil {
		return server.Fail(c, err, "Could not load order statistics")
	}
	return c.Status(http.StatusOK).JSON(stats)
}

// GetOrder handles GET /admin/orders/:id.
// @Summary Get Order by ID
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.View
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	view, err := h.service.Get(server.Context(c), c.Params("id"))
	if err != nil {
		return server.Fail(c, err, "Could not load order")
	}
	return c.Status(http.StatusOK).JSON(view)
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status.
// @Summary Update order status
// @Description Moves the order to the given status. Unknown statuses are rejected.
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Param status query string true "Target status"
// @Success 200 {object} domain.View
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	status := c.Query("status")
	if status == "" {
		return server.BadRequest(c, "Status is required")
	}

	view, err := h.service.UpdateStatus(server.Context(c), c.Params("id"), status)
	if err != nil {
		return server.Fail(c, err, "Could not update order status")
	}
	return c.Status(http.StatusOK).JSON(view)
}
