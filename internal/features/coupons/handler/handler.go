package handler

import (
	"net/http"

	"shop-admin/internal/core/apperr"
	"shop-admin/internal/core/server"
	"shop-admin/internal/features/coupons/domain"
	"shop-admin/internal/features/coupons/ports"

	"github.com/gofiber/fiber/v2"
)

// CouponHandler handles HTTP requests for coupons.
type CouponHandler struct {
	service ports.CouponService
}

// NewCouponHandler creates a new CouponHandler.
func NewCouponHandler(service ports.CouponService) *CouponHandler {
	return &CouponHandler{
		service: service,
	}
}

// Register mounts the coupon routes on r.
func (h *CouponHandler) Register(r fiber.Router) {
	g := r.Group("/coupons")
	g.Get("/", h.ListCoupons)
	g.Get("/stats", h.GetStats)
	g.Get("/usable", h.ListUsableCoupons)
	g.Get("/code/:code", h.GetCouponByCode)
	g.Post("/validate", h.ValidateCoupon)
	g.Get("/:id", h.GetCoupon)
	g.Post("/", h.CreateCoupon)
	g.Put("/:id", h.UpdateCoupon)
	g.Delete("/:id", h.DeleteCoupon)
	g.Patch("/:id/toggle-status", h.ToggleCouponStatus)
	g.Post("/:code/use", h.UseCoupon)
}

func parseCriteria(c *fiber.Ctx) (domain.Criteria, error) {
	active, err := server.OptionalBool(c, "active")
	if err != nil {
		return domain.Criteria{}, err
	}

	criteria := domain.Criteria{Search: c.Query("search"), Active: active}

	if raw := c.Query("type"); raw != "" {
		criteria.Type = domain.Type(raw)
		if !criteria.Type.Valid() {
			return domain.Criteria{}, apperr.Invalid("type", "must be PERCENTAGE or FIXED_AMOUNT")
		}
	}
	if raw := c.Query("status"); raw != "" {
		status, ok := domain.ParseStatus(raw)
		if !ok {
			return domain.Criteria{}, apperr.Invalid("status", "must be inactive, upcoming, expired, used-up or active")
		}
		criteria.Status = status
	}
	return criteria, nil
}

// ListCoupons handles GET /admin/coupons.
// @Summary List coupons
// @Description Lists coupons annotated with their current status, filtered by search text, active flag, type and status.
// @Tags Coupons
// @Produce json
// @Param search query string false "Case-insensitive match on code, name or description"
// @Param active query bool false "Active flag filter"
// @Param type query string false "PERCENTAGE or FIXED_AMOUNT"
// @Param status query string false "inactive, upcoming, expired, used-up or active"
// @Param refresh query bool false "Reload from the backend (default true)"
// @Success 200 {array} domain.View
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/coupons [get]
func (h *CouponHandler) ListCoupons(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return server.Fail(c, err, "Could not load coupons")
	}

	if c.Query("refresh") == "false" {
		return c.Status(http.StatusOK).JSON(h.service.View(criteria))
	}

	views, err := h.service.List(server.Context(c), criteria)
	if err != nil {
		return server.Fail(c, err, "Could not load coupons")
	}
	return c.Status(http.StatusOK).JSON(views)
}

// GetStats handles GET /admin/coupons/stats.
// @Summary Coupon statistics
// @Tags Coupons
// @Produce json
// @Success 200 {object} domain.Stats
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/coupons/stats [get]
func (h *CouponHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(server.Context(c))
	if err != nil {
		return server.Fail(c, err, "Could not load coupon statistics")
	}
	return c.Status(http.StatusOK).JSON(stats)
}

// ListUsableCoupons handles GET /admin/coupons/usable.
// @Summary List redeemable coupons
// @Tags Coupons
// @Produce json
// @Success 200 {array} domain.View
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/coupons/usable [get]
func (h *CouponHandler) ListUsableCoupons(c *fiber.Ctx) error {
	views, err := h.service.Usable(server.Context(c))
	if err != nil {
		return server.Fail(c, err, "Could not load coupons")
	}
	return c.Status(http.StatusOK).JSON(views)
}

// GetCoupon handles GET /admin/coupons/:id.
// @Summary Get a coupon
// @Tags Coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} domain.View
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/coupons/{id} [get]
func (h *CouponHandler) GetCoupon(c *fiber.Ctx) error {
	view, err := h.service.Get(server.Context(c), c.Params("id"))
	if err != nil {
		return server.Fail(c, err, "Could not load coupon")
	}
	return c.Status(http.StatusOK).JSON(view)
}

// GetCouponByCode handles GET /admin/coupons/code/:code.
// @Summary Get a coupon by code
// @Tags Coupons
// @Produce json
// @Param code path string true "Coupon code"
// @Success 200 {object} domain.View
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/coupons/code/{code} [get]
func (h *CouponHandler) GetCouponByCode(c *fiber.Ctx) error {
	view, err := h.service.GetByCode(server.Context(c), c.Params("code"))
	if err != nil {
		return server.Fail(c, err, "Could not load coupon")
	}
	return c.Status(http.StatusOK).JSON(view)
}

// CreateCoupon handles POST /admin/coupons.
// @Summary Create a coupon
// @Tags Coupons
// @Accept json
// @Produce json
// @Param coupon body domain.Input true "Coupon details"
// @Success 201 {object} domain.View
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/coupons [post]
func (h *CouponHandler) CreateCoupon(c *fiber.Ctx) error {
	var in domain.Input
	if err := c.BodyParser(&in); err != nil {
		return server.BadRequest(c, "Invalid request body")
	}

	view, err := h.service.Create(server.Context(c), in)
	if err != nil {
		return server.Fail(c, err, "Could not create coupon")
	}
	return c.Status(http.StatusCreated).JSON(view)
}

// UpdateCoupon handles PUT /admin/coupons/:id.
// @Summary Update a coupon
// @Tags Coupons
// @Accept json
// @Produce json
// @Param id path string true "Coupon ID"
// @Param coupon body domain.Input true "Coupon details"
// @Success 200 {object} domain.View
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/coupons/{id} [put]
func (h *CouponHandler) UpdateCoupon(c *fiber.Ctx) error {
	var in domain.Input
	if err := c.BodyParser(&in); err != nil {
		return server.BadRequest(c, "Invalid request body")
	}

	view, err := h.service.Update(server.Context(c), c.Params("id"), in)
	if err != nil {
		return server.Fail(c, err, "Could not update coupon")
	}
	return c.Status(http.StatusOK).JSON(view)
}

// DeleteCoupon handles DELETE /admin/coupons/:id.
// @Summary Delete a coupon
// @Tags Coupons
// @Param id path string true "Coupon ID"
// @Success 204
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/coupons/{id} [delete]
func (h *CouponHandler) DeleteCoupon(c *fiber.Ctx) error {
	if err := h.service.Delete(server.Context(c), c.Params("id")); err != nil {
		return server.Fail(c, err, "Could not delete coupon")
	}
	return c.SendStatus(http.StatusNoContent)
}

// ToggleCouponStatus handles PATCH /admin/coupons/:id/toggle-status.
// @Summary Toggle the active flag of a coupon
// @Tags Coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} domain.View
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/coupons/{id}/toggle-status [patch]
func (h *CouponHandler) ToggleCouponStatus(c *fiber.Ctx) error {
	view, err := h.service.ToggleStatus(server.Context(c), c.Params("id"))
	if err != nil {
		return server.Fail(c, err, "Could not change coupon status")
	}
	return c.Status(http.StatusOK).JSON(view)
}

// UseCoupon handles POST /admin/coupons/:code/use.
// @Summary Record one redemption of a coupon
// @Tags Coupons
// @Produce json
// @Param code path string true "Coupon code"
// @Success 200 {object} domain.View
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/coupons/{code}/use [post]
func (h *CouponHandler) UseCoupon(c *fiber.Ctx) error {
	view, err := h.service.Use(server.Context(c), c.Params("code"))
	if err != nil {
		return server.Fail(c, err, "Could not use coupon")
	}
	return c.Status(http.StatusOK).JSON(view)
}

// ValidateCoupon handles POST /admin/coupons/validate.
// @Summary Check whether a coupon applies to an order
// @Tags Coupons
// @Accept json
// @Produce json
// @Param request body domain.ValidationRequest true "Order to check"
// @Success 200 {object} domain.ValidationResult
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/coupons/validate [post]
func (h *CouponHandler) ValidateCoupon(c *fiber.Ctx) error {
	var req domain.ValidationRequest
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "Invalid request body")
	}

	res, err := h.service.Validate(server.Context(c), req)
	if err != nil {
		return server.Fail(c, err, "Could not validate coupon")
	}
	return c.Status(http.StatusOK).JSON(res)
}
