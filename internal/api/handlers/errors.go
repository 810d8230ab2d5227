package handlers

import (
	"errors"

	"studiekompas/internal/models"
	"studiekompas/internal/service"
	"studiekompas/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrEmptyMessage):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrRecommendationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrChatBusy):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrProviderUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	code := errorStatus(err)
	if code == fiber.StatusInternalServerError {
		logger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(code).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func getSession(c *fiber.Ctx) (*models.Session, error) {
	session, ok := c.Locals(middleware.SessionLocalsKey).(*models.Session)
	if !ok || session == nil {
		return nil, service.ErrSessionNotFound
	}
	return session, nil
}
