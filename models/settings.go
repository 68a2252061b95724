package models

import "time"

// Settings is the single application settings document.
type Settings struct {
	ID                  string    `json:"-" bson:"_id"`
	OrganizationName    string    `json:"organizationName" bson:"organization_name"`
	LowStockAlerts      bool      `json:"lowStockAlerts" bson:"low_stock_alerts"`
	SessionTimeoutHours int       `json:"sessionTimeoutHours" bson:"session_timeout_hours"`
	UpdatedAt           time.Time `json:"updatedAt" bson:"updated_at"`
}
