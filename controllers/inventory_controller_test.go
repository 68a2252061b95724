package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meCodeKo/siverek-depo/models"
)

func TestInventorySnapshot_CarriesAllFourCollections(t *testing.T) {
	payload := inventorySnapshot(
		[]models.Item{{ID: "ITM0001"}},
		[]models.StockTransaction{{ID: "TRX000001"}},
		[]models.Category{{ID: "KTG001"}},
		[]models.Location{{ID: "LOC001"}},
	)

	for _, key := range []string{"items", "transactions", "categories", "locations"} {
		assert.Contains(t, payload, key)
	}
	assert.Len(t, payload["transactions"], 1)
}

func postApp(role string) *fiber.App {
	app := fiber.New()
	app.Post("/api/inventory", func(c *fiber.Ctx) error {
		c.Locals("userID", "USR001")
		c.Locals("userRole", role)
		c.Locals("userName", "Some One")
		return InventoryPost(c)
	})
	return app
}

func postAction(t *testing.T, app *fiber.App, body string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/inventory", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestInventoryPost_RejectsUnknownActions(t *testing.T) {
	app := postApp("admin")

	// updateStock only exists on PUT
	assert.Equal(t, fiber.StatusUnprocessableEntity,
		postAction(t, app, `{"action":"updateStock","data":{}}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity,
		postAction(t, app, `{"action":"renameItem","data":{}}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity,
		postAction(t, app, `{"data":{}}`))
}

func TestInventoryPost_PermissionCheckedBeforePayload(t *testing.T) {
	app := postApp("user")

	assert.Equal(t, fiber.StatusForbidden,
		postAction(t, app, `{"action":"addItem","data":{}}`))
	assert.Equal(t, fiber.StatusForbidden,
		postAction(t, app, `{"action":"addTransaction","data":{}}`))
}
