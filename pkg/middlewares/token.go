package middlewares

import (
	"strings"

	"semicolon_service/pkg"
	"semicolon_service/pkg/logger"
	t_token "semicolon_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	//QueryToken token in query name
	QueryToken = "auth"

	//CookieToken token in cookie name
	CookieToken = "auth_token"

	//TokenRole get role form token, set c.locals name
	TokenRole = "role"
)

// JWTMiddleware validates the unlock token from Authorization header, query or cookie
func JWTMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := bearer(c.Get(fiber.HeaderAuthorization))
		if tokenStr == "" {
			tokenStr = c.Query(QueryToken)
		}
		if tokenStr == "" {
			tokenStr = c.Cookies(CookieToken)
		}

		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing token",
			})
		}

		claims, err := t_token.ParseJWTWrapper(tokenStr)
		if err != nil {
			logger.Log.Debug("token rejected", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals(TokenRole, claims.Role)
		return c.Next()
	}
}

// RequireRole must run after JWTMiddleware
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(TokenRole).(string)
		if !pkg.Contains(roles, role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden",
			})
		}
		return c.Next()
	}
}

func bearer(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
