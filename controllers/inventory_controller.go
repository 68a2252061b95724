package controllers

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/meCodeKo/siverek-depo/models"
	"github.com/meCodeKo/siverek-depo/permissions"
	"github.com/meCodeKo/siverek-depo/repository"
	"github.com/meCodeKo/siverek-depo/utils"
)

// statusForError maps repository and model sentinel errors onto HTTP status
// codes shared by every controller.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrInvalidQuantity):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrConflict), errors.Is(err, models.ErrDuplicate):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func failErr(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		zap.L().Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return utils.Fail(c, status, "internal server error")
	}
	return utils.Fail(c, status, err.Error())
}

func userRole(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}

func performerName(c *fiber.Ctx) string {
	if name, _ := c.Locals("userName").(string); name != "" {
		return name
	}
	return "System"
}

func denied(c *fiber.Ctx) error {
	return utils.Fail(c, fiber.StatusForbidden, "access denied")
}

// actionRequest is the envelope for every write to /api/inventory.
type actionRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

func parseAction(c *fiber.Ctx) (*actionRequest, error) {
	var req actionRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, err
	}
	if req.Action == "" {
		return nil, errors.New("action is required")
	}
	return &req, nil
}

// InventoryGet serves reads. With no action it returns the full snapshot of
// items, categories and locations in one payload.
func InventoryGet(c *fiber.Ctx) error {
	role := userRole(c)
	switch c.Query("action") {
	case "items":
		if !permissions.HasPermission(role, "inventory", "read") {
			return denied(c)
		}
		items, err := repository.GetAllItems()
		if err != nil {
			return failErr(c, err)
		}
		return utils.OK(c, items)

	case "transactions":
		if !permissions.HasPermission(role, "transactions", "read") {
			return denied(c)
		}
		f, err := transactionFilterFromQuery(c)
		if err != nil {
			return utils.Fail(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		txs, err := repository.QueryTransactions(f)
		if err != nil {
			return failErr(c, err)
		}
		return utils.OK(c, txs)

	case "categories":
		if !permissions.HasPermission(role, "inventory", "read") {
			return denied(c)
		}
		cats, err := repository.GetAllCategories()
		if err != nil {
			return failErr(c, err)
		}
		return utils.OK(c, cats)

	case "locations":
		if !permissions.HasPermission(role, "inventory", "read") {
			return denied(c)
		}
		locs, err := repository.GetAllLocations()
		if err != nil {
			return failErr(c, err)
		}
		return utils.OK(c, locs)

	case "":
		if !permissions.HasPermission(role, "inventory", "read") {
			return denied(c)
		}
		items, err := repository.GetAllItems()
		if err != nil {
			return failErr(c, err)
		}
		txs, err := repository.QueryTransactions(models.TransactionFilter{})
		if err != nil {
			return failErr(c, err)
		}
		cats, err := repository.GetAllCategories()
		if err != nil {
			return failErr(c, err)
		}
		locs, err := repository.GetAllLocations()
		if err != nil {
			return failErr(c, err)
		}
		return utils.OK(c, inventorySnapshot(items, txs, cats, locs))

	default:
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "unknown action")
	}
}

// inventorySnapshot is the full dashboard payload served when GET carries no
// action: items, ledger entries, categories and locations together.
func inventorySnapshot(items []models.Item, txs []models.StockTransaction, cats []models.Category, locs []models.Location) fiber.Map {
	return fiber.Map{
		"items":        items,
		"transactions": txs,
		"categories":   cats,
		"locations":    locs,
	}
}

func transactionFilterFromQuery(c *fiber.Ctx) (models.TransactionFilter, error) {
	f := models.TransactionFilter{
		ItemID: c.Query("itemId"),
		Type:   c.Query("type"),
		Search: c.Query("q"),
	}
	if f.Type != "" && !models.ValidTransactionType(f.Type) {
		return f, errors.New("unknown transaction type")
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, errors.New("from must be YYYY-MM-DD")
		}
		f.From = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, errors.New("to must be YYYY-MM-DD")
		}
		// inclusive end of day
		f.To = t.Add(24*time.Hour - time.Nanosecond)
	}
	return f, nil
}

// InventoryPost handles addItem and addTransaction.
func InventoryPost(c *fiber.Ctx) error {
	req, err := parseAction(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	role := userRole(c)

	switch req.Action {
	case "addItem":
		if !permissions.HasPermission(role, "inventory", "create") {
			return denied(c)
		}
		return addItem(c, req.Data)

	case "addTransaction":
		if !permissions.HasPermission(role, "transactions", "create") {
			return denied(c)
		}
		return addTransaction(c, req.Data)

	default:
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "unknown action")
	}
}

func addItem(c *fiber.Ctx, data json.RawMessage) error {
	var in models.ItemInput
	if err := json.Unmarshal(data, &in); err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "invalid item payload")
	}
	if err := in.Validate(); err != nil {
		return failErr(c, err)
	}

	id, err := repository.GenerateID("item")
	if err != nil {
		return failErr(c, err)
	}
	now := time.Now()
	item := &models.Item{
		ID:            id,
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Category:      in.Category,
		Brand:         in.Brand,
		Model:         in.Model,
		SerialNumber:  in.SerialNumber,
		Barcode:       in.Barcode,
		Quantity:      in.Quantity,
		MinStockLevel: in.MinStockLevel,
		Unit:          in.Unit,
		Location:      in.Location,
		Status:        in.Status,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := repository.CreateItem(item); err != nil {
		return failErr(c, err)
	}

	if _, err := repository.InitialStockEntry(item, performerName(c)); err != nil {
		// Roll the item back so the inventory and the ledger stay in step.
		if delErr := repository.DeleteItem(item.ID); delErr != nil {
			zap.L().Error("orphaned item after failed initial stock entry",
				zap.String("itemId", item.ID), zap.Error(delErr))
		}
		return failErr(c, err)
	}
	return utils.Created(c, "item created", item)
}

func addTransaction(c *fiber.Ctx, data json.RawMessage) error {
	var in models.TransactionInput
	if err := json.Unmarshal(data, &in); err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "invalid transaction payload")
	}
	tx, err := repository.RecordTransaction(in, performerName(c))
	if err != nil {
		return failErr(c, err)
	}
	return utils.Created(c, "transaction recorded", tx)
}

// itemUpdate holds the updatable item fields. Pointers distinguish "not sent"
// from zero values. Quantity is deliberately absent: stock only moves through
// ledger transactions.
type itemUpdate struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	Brand         *string `json:"brand"`
	Model         *string `json:"model"`
	SerialNumber  *string `json:"serialNumber"`
	Barcode       *string `json:"barcode"`
	MinStockLevel *int    `json:"minStockLevel"`
	Unit          *string `json:"unit"`
	Location      *string `json:"location"`
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
	Quantity      *int    `json:"quantity"`
}

// InventoryPut handles updateItem and updateStock.
func InventoryPut(c *fiber.Ctx) error {
	req, err := parseAction(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	role := userRole(c)

	switch req.Action {
	case "updateItem":
		if !permissions.HasPermission(role, "inventory", "update") {
			return denied(c)
		}
		return updateItem(c, req.Data)

	case "updateStock":
		if !permissions.HasPermission(role, "transactions", "create") {
			return denied(c)
		}
		return addTransaction(c, req.Data)

	default:
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "unknown action")
	}
}

func updateItem(c *fiber.Ctx, data json.RawMessage) error {
	var body struct {
		ItemID string `json:"itemId"`
		itemUpdate
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "invalid item payload")
	}
	if body.ItemID == "" {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "itemId is required")
	}
	if body.Quantity != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity,
			"quantity is managed through stock transactions")
	}

	set := bson.M{}
	if body.Name != nil {
		if strings.TrimSpace(*body.Name) == "" {
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "name must not be empty")
		}
		set["name"] = strings.TrimSpace(*body.Name)
	}
	if body.Description != nil {
		set["description"] = *body.Description
	}
	if body.Category != nil {
		if _, err := repository.GetCategoryByID(*body.Category); err != nil {
			return failErr(c, err)
		}
		set["category"] = *body.Category
	}
	if body.Brand != nil {
		set["brand"] = *body.Brand
	}
	if body.Model != nil {
		set["model"] = *body.Model
	}
	if body.SerialNumber != nil {
		set["serial_number"] = *body.SerialNumber
	}
	if body.Barcode != nil {
		set["barcode"] = *body.Barcode
	}
	if body.MinStockLevel != nil {
		if *body.MinStockLevel < 0 {
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "minStockLevel must not be negative")
		}
		set["min_stock_level"] = *body.MinStockLevel
	}
	if body.Unit != nil {
		if !models.ValidUnit(*body.Unit) {
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "unknown unit")
		}
		set["unit"] = *body.Unit
	}
	if body.Location != nil {
		if _, err := repository.GetLocationByID(*body.Location); err != nil {
			return failErr(c, err)
		}
		set["location"] = *body.Location
	}
	if body.Status != nil {
		if !models.ValidStatus(*body.Status) {
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "unknown status")
		}
		set["status"] = *body.Status
	}
	if body.Notes != nil {
		set["notes"] = *body.Notes
	}
	if len(set) == 0 {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "no fields to update")
	}

	item, err := repository.UpdateItem(body.ItemID, set)
	if err != nil {
		return failErr(c, err)
	}
	return utils.OKMessage(c, "item updated", item)
}

// InventoryDelete handles deleteItem. Ledger entries for the item are kept.
func InventoryDelete(c *fiber.Ctx) error {
	req, err := parseAction(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.Action != "deleteItem" {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "unknown action")
	}
	if !permissions.HasPermission(userRole(c), "inventory", "delete") {
		return denied(c)
	}

	var body struct {
		ItemID string `json:"itemId"`
	}
	if err := json.Unmarshal(req.Data, &body); err != nil || body.ItemID == "" {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "itemId is required")
	}
	if err := repository.DeleteItem(body.ItemID); err != nil {
		return failErr(c, err)
	}
	return utils.OKMessage(c, "item deleted", fiber.Map{"itemId": body.ItemID})
}
