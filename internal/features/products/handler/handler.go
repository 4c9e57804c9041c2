package handler

import (
	"net/http"
	"strconv"

	"shop-admin/internal/core/apperr"
	"shop-admin/internal/core/server"
	"shop-admin/internal/features/products/domain"
	"shop-admin/internal/features/products/ports"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products and variants.
type ProductHandler struct {
	service ports.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// Register mounts the product routes on r.
func (h *ProductHandler) Register(r fiber.Router) {
	g := r.Group("/products")
	g.Get("/", h.ListProducts)
	g.Get("/active", h.ListActiveProducts)
	g.Get("/price-range", h.ListByPriceRange)
	g.Get("/:id", h.GetProduct)
	g.Post("/", h.CreateProduct)
	g.Put("/:id", h.UpdateProduct)
	g.Delete("/:id", h.DeleteProduct)
	g.Patch("/:id/toggle-status", h.ToggleProductStatus)

	g.Get("/:id/variants", h.ListVariants)
	g.Post("/:id/variants", h.CreateVariant)
	g.Put("/:id/variants/:variantId", h.UpdateVariant)
	g.Delete("/:id/variants/:variantId", h.DeleteVariant)
}

// ListProducts handles GET /admin/products.
// @Summary List products
// @Description Lists products filtered by search text (name, description, sku), category and active flag.
// @Tags Products
// @Produce json
// @Param search query string false "Case-insensitive match on name, description or sku"
// @Param categoryId query string false "Category ID"
// @Param active query bool false "Active flag filter"
// @Param refresh query bool false "Reload from the backend (default true)"
// @Success 200 {array} domain.Product
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/products [get]
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	active, err := server.OptionalBool(c, "active")
	if err != nil {
		return server.Fail(c, err, "Could not load products")
	}

	criteria := domain.Criteria{
		Search:     c.Query("search"),
		Active:     active,
		CategoryID: c.Query("categoryId"),
	}

	if c.Query("refresh") == "false" {
		return c.Status(http.StatusOK).JSON(h.service.View(criteria))
	}

	items, err := h.service.List(server.Context(c), criteria)
	if err != nil {
		return server.Fail(c, err, "Could not load products")
	}
	return c.Status(http.StatusOK).JSON(items)
}

// ListActiveProducts handles GET /admin/products/active.
// @Summary List active products
// @Tags Products
// @Produce json
// @Param tag query string false "Only products carrying this tag, e.g. featured"
// @Success 200 {array} domain.Product
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/products/active [get]
func (h *ProductHandler) ListActiveProducts(c *fiber.Ctx) error {
	items, err := h.service.Active(server.Context(c), c.Query("tag"))
	if err != nil {
		return server.Fail(c, err, "Could not load products")
	}
	return c.Status(http.StatusOK).JSON(items)
}

// ListByPriceRange handles GET /admin/products/price-range.
// @Summary List products within a price range
// @Tags Products
// @Produce json
// @Param minPrice query number true "Lowest price"
// @Param maxPrice query number true "Highest price"
// @Success 200 {array} domain.Product
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/products/price-range [get]
func (h *ProductHandler) ListByPriceRange(c *fiber.Ctx) error {
	minPrice, err := strconv.ParseFloat(c.Query("minPrice"), 64)
	if err != nil {
		return server.Fail(c, apperr.Invalid("minPrice", "must be a number"), "Could not load products")
	}
	maxPrice, err := strconv.ParseFloat(c.Query("maxPrice"), 64)
	if err != nil {
		return server.Fail(c, apperr.Invalid("maxPrice", "must be a number"), "Could not load products")
	}

	items, err := h.service.PriceRange(server.Context(c), minPrice, maxPrice)
	if err != nil {
		return server.Fail(c, err, "Could not load products")
	}
	return c.Status(http.StatusOK).JSON(items)
}

// GetProduct handles GET /admin/products/:id.
// @Summary Get a product with its variants
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/products/{id} [get]
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.service.Get(server.Context(c), c.Params("id"))
	if err != nil {
		return server.Fail(c, err, "Could not load product")
	}
	return c.Status(http.StatusOK).JSON(product)
}

// CreateProduct handles POST /admin/products.
// @Summary Create a product
// @Description The SKU, when given, is checked against existing products first.
// @Tags Products
// @Accept json
// @Produce json
// @Param product body domain.Input true "Product details"
// @Success 201 {object} domain.Product
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/products [post]
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var in domain.Input
	if err := c.BodyParser(&in); err != nil {
		return server.BadRequest(c, "Invalid request body")
	}

	created, err := h.service.Create(server.Context(c), in)
	if err != nil {
		return server.Fail(c, err, "Could not create product")
	}
	return c.Status(http.StatusCreated).JSON(created)
}

// UpdateProduct handles PUT /admin/products/:id.
// @Summary Update a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body domain.Input true "Product details"
// @Success 200 {object} domain.Product
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	var in domain.Input
	if err := c.BodyParser(&in); err != nil {
		return server.BadRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(server.Context(c), c.Params("id"), in)
	if err != nil {
		return server.Fail(c, err, "Could not update product")
	}
	return c.Status(http.StatusOK).JSON(updated)
}

// DeleteProduct handles DELETE /admin/products/:id.
// @Summary Delete a product and its variants
// @Tags Products
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.service.Delete(server.Context(c), c.Params("id")); err != nil {
		return server.Fail(c, err, "Could not delete product")
	}
	return c.SendStatus(http.StatusNoContent)
}

// ToggleProductStatus handles PATCH /admin/products/:id/toggle-status.
// @Summary Toggle the active flag of a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/products/{id}/toggle-status [patch]
func (h *ProductHandler) ToggleProductStatus(c *fiber.Ctx) error {
	updated, err := h.service.ToggleStatus(server.Context(c), c.Params("id"))
	if err != nil {
		return server.Fail(c, err, "Could not change product status")
	}
	return c.Status(http.StatusOK).JSON(updated)
}

// ListVariants handles GET /admin/products/:id/variants.
// @Summary List the variants of a product
// @Tags Variants
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} domain.Variant
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/products/{id}/variants [get]
func (h *ProductHandler) ListVariants(c *fiber.Ctx) error {
	variants, err := h.service.Variants(server.Context(c), c.Params("id"))
	if err != nil {
		return server.Fail(c, err, "Could not load variants")
	}
	return c.Status(http.StatusOK).JSON(variants)
}

// CreateVariant handles POST /admin/products/:id/variants.
// @Summary Add a variant
// @Description Answers with the whole parent product.
// @Tags Variants
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param variant body domain.VariantInput true "Variant details"
// @Success 201 {object} domain.Product
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/products/{id}/variants [post]
func (h *ProductHandler) CreateVariant(c *fiber.Ctx) error {
	var in domain.VariantInput
	if err := c.BodyParser(&in); err != nil {
		return server.BadRequest(c, "Invalid request body")
	}

	product, err := h.service.CreateVariant(server.Context(c), c.Params("id"), in)
	if err != nil {
		return server.Fail(c, err, "Could not create variant")
	}
	return c.Status(http.StatusCreated).JSON(product)
}

// UpdateVariant handles PUT /admin/products/:id/variants/:variantId.
// @Summary Update a variant
// @Description Answers with the whole parent product.
// @Tags Variants
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param variantId path string true "Variant ID"
// @Param variant body domain.VariantInput true "Variant details"
// @Success 200 {object} domain.Product
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/products/{id}/variants/{variantId} [put]
func (h *ProductHandler) UpdateVariant(c *fiber.Ctx) error {
	var in domain.VariantInput
	if err := c.BodyParser(&in); err != nil {
		return server.BadRequest(c, "Invalid request body")
	}

	product, err := h.service.UpdateVariant(server.Context(c), c.Params("id"), c.Params("variantId"), in)
	if err != nil {
		return server.Fail(c, err, "Could not update variant")
	}
	return c.Status(http.StatusOK).JSON(product)
}

// DeleteVariant handles DELETE /admin/products/:id/variants/:variantId.
// @Summary Delete a variant
// @Description Answers with the whole parent product.
// @Tags Variants
// @Produce json
// @Param id path string true "Product ID"
// @Param variantId path string true "Variant ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /admin/products/{id}/variants/{variantId} [delete]
func (h *ProductHandler) DeleteVariant(c *fiber.Ctx) error {
	product, err := h.service.DeleteVariant(server.Context(c), c.Params("id"), c.Params("variantId"))
	if err != nil {
		return server.Fail(c, err, "Could not delete variant")
	}
	return c.Status(http.StatusOK).JSON(product)
}
