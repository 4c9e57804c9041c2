package handler

import (
	"net/http"

	"shop-admin/internal/core/server"
	"shop-admin/internal/features/dashboard/ports"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the admin overview.
type DashboardHandler struct {
	service ports.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Register mounts the dashboard route on r.
func (h *DashboardHandler) Register(r fiber.Router) {
	r.Get("/dashboard", h.GetSummary)
}

// GetSummary handles GET /admin/dashboard.
// @Summary Dashboard overview
// @Description Totals of categories, products, variants and stock, plus the most recently created categories and products.
// @Tags Dashboard
// @Produce json
// @Param refresh query bool false "Bypass the cached overview"
// @Success 200 {object} domain.Summary
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	refresh, err := server.OptionalBool(c, "refresh")
	if err != nil {
		return server.Fail(c, err, "Could not load dashboard")
	}

	summary, err := h.service.Summary(server.Context(c), refresh != nil && *refresh)
	if err != nil {
		return server.Fail(c, err, "Could not load dashboard")
	}
	return c.Status(http.StatusOK).JSON(summary)
}
