package middleware

import (
	"studiekompas/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionLocalsKey is the fiber.Ctx locals key the resolved session is stored under.
const SessionLocalsKey = "session"

type SessionStore interface {
	GetByID(id uuid.UUID) (*models.Session, bool)
}

// SessionMiddleware resolves the :id route parameter to a live flow session.
func SessionMiddleware(store SessionStore, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("id")
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("Invalid session id", zap.String("session_id", raw))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid session ID",
			})
		}

		session, ok := store.GetByID(id)
		if !ok {
			logger.Debug("Unknown or expired session", zap.String("session_id", raw))
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		}

		c.Locals(SessionLocalsKey, session)

		return c.Next()
	}
}
