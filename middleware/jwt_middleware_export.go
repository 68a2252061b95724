package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meCodeKo/siverek-depo/utils"
)

// JWTMiddlewareForExport reads JWT from the Authorization header.
// If missing, it also accepts a token from the query string (?token=...).
// This is intentionally scoped for download endpoints invoked via window.open.
func JWTMiddlewareForExport(c *fiber.Ctx) error {
	tokenStr := bearerToken(c)
	if tokenStr == "" {
		tokenStr = c.Query("token", "")
	}

	if tokenStr == "" {
		return utils.Fail(c, fiber.StatusUnauthorized, "missing or malformed token")
	}

	claims, err := utils.ParseToken(tokenStr)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "invalid or expired token")
	}

	setUserLocals(c, claims)
	return c.Next()
}
