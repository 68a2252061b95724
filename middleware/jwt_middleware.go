package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/meCodeKo/siverek-depo/utils"
)

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func setUserLocals(c *fiber.Ctx, claims *utils.Claims) {
	c.Locals("userID", claims.ID)
	c.Locals("userRole", claims.Role)
	c.Locals("userName", claims.FullName)
}

// JWTMiddleware requires a valid bearer token and stamps the user identity
// into the request locals.
func JWTMiddleware(c *fiber.Ctx) error {
	tokenStr := bearerToken(c)
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

// JWTOptional validates a token when one is supplied but lets anonymous
// requests through. Used on the auth endpoint, where login itself must be
// reachable without a session while the user-management actions are not.
func JWTOptional(c *fiber.Ctx) error {
	tokenStr := bearerToken(c)
	if tokenStr == "" {
		return c.Next()
	}

	claims, err := utils.ParseToken(tokenStr)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "invalid or expired token")
	}

	setUserLocals(c, claims)
	return c.Next()
}
