package middlewares

import (
	"semicolon_service/pkg/database"
	"semicolon_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MongoConnection make sure the store is reachable before any handler runs
func MongoConnection(p database.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := p.Acquire(c.UserContext()); err != nil {
			logger.Log.Error("database unavailable", zap.String("path", c.Path()), zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "database unavailable",
			})
		}
		return c.Next()
	}
}
