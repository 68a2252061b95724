package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusActive      = "active"
	StatusInactive    = "inactive"
	StatusDamaged     = "damaged"
	StatusMaintenance = "maintenance"
)

var validUnits = map[string]bool{
	"piece":        true,
	"kg":           true,
	"liter":        true,
	"meter":        true,
	"square-meter": true,
	"cubic-meter":  true,
	"box":          true,
	"package":      true,
}

var validStatuses = map[string]bool{
	StatusActive:      true,
	StatusInactive:    true,
	StatusDamaged:     true,
	StatusMaintenance: true,
}

func ValidUnit(u string) bool   { return validUnits[u] }
func ValidStatus(s string) bool { return validStatuses[s] }

// Item is a tracked piece of equipment in the warehouse.
type Item struct {
	ID            string    `json:"id" bson:"_id"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Category      string    `json:"category" bson:"category"`
	Brand         string    `json:"brand,omitempty" bson:"brand,omitempty"`
	Model         string    `json:"model,omitempty" bson:"model,omitempty"`
	SerialNumber  string    `json:"serialNumber,omitempty" bson:"serial_number,omitempty"`
	Barcode       string    `json:"barcode,omitempty" bson:"barcode,omitempty"`
	Quantity      int       `json:"quantity" bson:"quantity"`
	MinStockLevel int       `json:"minStockLevel" bson:"min_stock_level"`
	Unit          string    `json:"unit" bson:"unit"`
	Location      string    `json:"location" bson:"location"`
	Status        string    `json:"status" bson:"status"`
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updated_at"`
}

// IsLowStock reports whether the item is at or below its minimum stock level.
func (i *Item) IsLowStock() bool {
	return i.Quantity <= i.MinStockLevel
}

// ItemInput carries the client-supplied fields for creating an item.
type ItemInput struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	SerialNumber  string `json:"serialNumber"`
	Barcode       string `json:"barcode"`
	Quantity      int    `json:"quantity"`
	MinStockLevel int    `json:"minStockLevel"`
	Unit          string `json:"unit"`
	Location      string `json:"location"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}

// Validate checks required fields, enums and the non-negative invariants.
// Status defaults to active when empty.
func (in *ItemInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if strings.TrimSpace(in.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrValidation)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	if in.MinStockLevel < 0 {
		return fmt.Errorf("%w: minStockLevel must not be negative", ErrValidation)
	}
	if !ValidUnit(in.Unit) {
		return fmt.Errorf("%w: unknown unit %q", ErrValidation, in.Unit)
	}
	if in.Status == "" {
		in.Status = StatusActive
	}
	if !ValidStatus(in.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}
	return nil
}
