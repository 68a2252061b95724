package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/meCodeKo/siverek-depo/repository"
	"github.com/meCodeKo/siverek-depo/utils"
)

func GetSettings(c *fiber.Ctx) error {
	s, err := repository.GetSettings()
	if err != nil {
		return failErr(c, err)
	}
	return utils.OK(c, s)
}

func UpdateSettings(c *fiber.Ctx) error {
	var body struct {
		OrganizationName    *string `json:"organizationName"`
		LowStockAlerts      *bool   `json:"lowStockAlerts"`
		SessionTimeoutHours *int    `json:"sessionTimeoutHours"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "invalid settings payload")
	}

	set := bson.M{}
	if body.OrganizationName != nil {
		if strings.TrimSpace(*body.OrganizationName) == "" {
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "organizationName must not be empty")
		}
		set["organization_name"] = strings.TrimSpace(*body.OrganizationName)
	}
	if body.LowStockAlerts != nil {
		set["low_stock_alerts"] = *body.LowStockAlerts
	}
	if body.SessionTimeoutHours != nil {
		if *body.SessionTimeoutHours < 1 || *body.SessionTimeoutHours > 168 {
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "sessionTimeoutHours must be between 1 and 168")
		}
		set["session_timeout_hours"] = *body.SessionTimeoutHours
	}
	if len(set) == 0 {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "no fields to update")
	}

	s, err := repository.UpdateSettings(set)
	if err != nil {
		return failErr(c, err)
	}
	return utils.OKMessage(c, "settings updated", s)
}
