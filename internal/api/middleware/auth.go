package middleware

import (
	"strings"

	"github.com/dukamart/storefront/internal/auth"
	"github.com/dukamart/storefront/internal/constants"
	"github.com/gofiber/fiber/v2"
)

const UserIDKey = "userID"

// RequireAuth resolves the caller from the session cookie, or from a bearer
// token for non-browser clients.
func RequireAuth(tokens *auth.TokenManager, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			header := c.Get(fiber.HeaderAuthorization)
			token = strings.TrimPrefix(header, "Bearer ")
		}

		if token == "" {
			return unauthorized(c)
		}

		userID, err := tokens.Parse(token)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(UserIDKey).(int64)
	return id
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    constants.ErrCodeUnauthorized,
		"message": constants.GetErrorMessage(constants.ErrCodeUnauthorized),
	})
}
