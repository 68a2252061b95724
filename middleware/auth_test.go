package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meCodeKo/siverek-depo/utils"
)

func newGuardedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/items", JWTMiddleware, RequirePermission("inventory", "read"),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Delete("/items", JWTMiddleware, RequirePermission("inventory", "delete"),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, _, err := utils.GenerateToken("USR001", "someone", "Some One", role)
	require.NoError(t, err)
	return token
}

func TestJWTMiddleware_MissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	app := newGuardedApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/items", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddleware_BadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	app := newGuardedApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/items", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequirePermission_AllowsAndDenies(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	app := newGuardedApp(t)

	// read-only role can list but not delete
	req := httptest.NewRequest(fiber.MethodGet, "/items", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "user"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodDelete, "/items", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "user"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodDelete, "/items", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "admin"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareForExport_QueryToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	app := fiber.New()
	app.Get("/export", JWTMiddlewareForExport,
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(fiber.MethodGet, "/export?token="+tokenFor(t, "manager"), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/export", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
