package server

import (
	"context"
	"errors"
	"net/http"

	"shop-admin/internal/core/apperr"
	"shop-admin/internal/core/httpclient"
	"shop-admin/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// RayID returns the request id set by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok && id != "" {
		return id
	}
	return "unknown"
}

// Context returns the request context carrying the ray id for backend calls.
func Context(c *fiber.Ctx) context.Context {
	return httpclient.WithRequestID(c.UserContext(), RayID(c))
}

// BadRequest answers 400 with message.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Message: message,
		RayID:   RayID(c),
	})
}

// Fail logs err and answers with the status matching its class. Validation
// messages are shown as-is; backend failures get the generic per-action message.
func Fail(c *fiber.Ctx, err error, action string) error {
	rayID := RayID(c)

	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Message: ve.Error(), RayID: rayID})
	case errors.Is(err, apperr.ErrNotFound):
		logger.Get().Warn(action, zap.String("ray_id", rayID), zap.Error(err))
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Message: "Not found", RayID: rayID})
	case errors.Is(err, apperr.ErrBackend):
		logger.Get().Error(action, zap.String("ray_id", rayID), zap.Error(err))
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{Message: action + ". Please try again.", RayID: rayID})
	default:
		logger.Get().Error(action, zap.String("ray_id", rayID), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Message: "Internal Server Error", RayID: rayID})
	}
}

// OptionalBool parses a tri-state query flag: missing or empty means nil.
func OptionalBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := c.Query(key)
	switch raw {
	case "":
		return nil, nil
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	default:
		return nil, apperr.Invalid(key, "must be true or false")
	}
}
