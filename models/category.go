package models

import "time"

type Category struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    bool      `json:"isActive" bson:"is_active"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}
