package handler

import (
	"net/http"

	"shop-admin/internal/core/server"
	"shop-admin/internal/features/categories/domain"
	"shop-admin/internal/features/categories/ports"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service ports.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// Register mounts the category routes on r.
func (h *CategoryHandler) Register(r fiber.Router) {
	g := r.Group("/categories")
	g.Get("/", h.ListCategories)
	g.Get("/active", h.ListActiveCategories)
	g.Get("/:id", h.GetCategory)
	g.Post("/", h.CreateCategory)
	g.Put("/:id", h.UpdateCategory)
	g.Delete("/:id", h.DeleteCategory)
	g.Patch("/:id/toggle-status", h.ToggleCategoryStatus)
}

// ListCategories handles GET /admin/categories.
// @Summary List categories
// @Description Lists categories filtered by search text and active flag, optionally sorted. With refresh=false the last loaded list is filtered without calling the backend.
// @Tags Categories
// @Produce json
// @Param search query string false "Case-insensitive match on name or description"
// @Param active query bool false "Active flag filter"
// @Param sort query string false "name, productCount or createdAt"
// @Param refresh query bool false "Reload from the backend (default true)"
// @Success 200 {array} domain.Category
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/categories [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	active, err := server.OptionalBool(c, "active")
	if err != nil {
		return server.Fail(c, err, "Could not load categories")
	}

	criteria := domain.Criteria{
		Search: c.Query("search"),
		Active: active,
		Sort:   domain.ParseSortKey(c.Query("sort")),
	}

	if c.Query("refresh") == "false" {
		return c.Status(http.StatusOK).JSON(h.service.View(criteria))
	}

	items, err := h.service.List(server.Context(c), criteria)
	if err != nil {
		return server.Fail(c, err, "Could not load categories")
	}
	return c.Status(http.StatusOK).JSON(items)
}

// ListActiveCategories handles GET /admin/categories/active.
// @Summary List active categories
// @Tags Categories
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/categories/active [get]
func (h *CategoryHandler) ListActiveCategories(c *fiber.Ctx) error {
	items, err := h.service.Active(server.Context(c))
	if err != nil {
		return server.Fail(c, err, "Could not load categories")
	}
	return c.Status(http.StatusOK).JSON(items)
}

// GetCategory handles GET /admin/categories/:id.
// @Summary Get a category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} domain.Category
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.service.Get(server.Context(c), c.Params("id"))
	if err != nil {
		return server.Fail(c, err, "Could not load category")
	}
	return c.Status(http.StatusOK).JSON(category)
}

// CreateCategory handles POST /admin/categories.
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body domain.Input true "Category details"
// @Success 201 {object} domain.Category
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/categories [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var in domain.Input
	if err := c.BodyParser(&in); err != nil {
		return server.BadRequest(c, "Invalid request body")
	}

	created, err := h.service.Create(server.Context(c), in)
	if err != nil {
		return server.Fail(c, err, "Could not create category")
	}
	return c.Status(http.StatusCreated).JSON(created)
}

// UpdateCategory handles PUT /admin/categories/:id.
// @Summary Update a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body domain.Input true "Category details"
// @Success 200 {object} domain.Category
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	var in domain.Input
	if err := c.BodyParser(&in); err != nil {
		return server.BadRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(server.Context(c), c.Params("id"), in)
	if err != nil {
		return server.Fail(c, err, "Could not update category")
	}
	return c.Status(http.StatusOK).JSON(updated)
}

// DeleteCategory handles DELETE /admin/categories/:id.
// @Summary Delete a category
// @Tags Categories
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.service.Delete(server.Context(c), c.Params("id")); err != nil {
		return server.Fail(c, err, "Could not delete category")
	}
	return c.SendStatus(http.StatusNoContent)
}

// ToggleCategoryStatus handles PATCH /admin/categories/:id/toggle-status.
// @Summary Toggle the active flag of a category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} domain.Category
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/categories/{id}/toggle-status [patch]
func (h *CategoryHandler) ToggleCategoryStatus(c *fiber.Ctx) error {
	updated, err := h.service.ToggleStatus(server.Context(c), c.Params("id"))
	if err != nil {
		return server.Fail(c, err, "Could not change category status")
	}
	return c.Status(http.StatusOK).JSON(updated)
}
