package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meCodeKo/siverek-depo/permissions"
	"github.com/meCodeKo/siverek-depo/utils"
)

// RequirePermission guards a route with a (resource, action) lookup against
// the role stamped in by the JWT middleware. Unknown or missing roles are
// denied.
func RequirePermission(resource, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("userRole").(string)
		if !permissions.HasPermission(role, resource, action) {
			return utils.Fail(c, fiber.StatusForbidden, "access denied")
		}
		return c.Next()
	}
}
