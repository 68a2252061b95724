package models

import "time"

type Location struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Building    string    `json:"building,omitempty" bson:"building,omitempty"`
	Floor       string    `json:"floor,omitempty" bson:"floor,omitempty"`
	Room        string    `json:"room,omitempty" bson:"room,omitempty"`
	Shelf       string    `json:"shelf,omitempty" bson:"shelf,omitempty"`
	IsActive    bool      `json:"isActive" bson:"is_active"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}
