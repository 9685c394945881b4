package entity

import "time"

// Cost tiers for any catalog item.
const (
	CostCheap     = 1
	CostModerate  = 2
	CostExpensive = 3
)

// Consumable holds the attributes shared by every catalog item,
// embedded in Food and Ingredient.
type Consumable struct {
	ID              string     `json:"id"`              // Opaque unique identifier, immutable once created.
	Name            string     `json:"name"`            // Unique within the entity type, case-sensitive.
	Rating          int        `json:"rating"`          // Intended range 1-10.
	IsHealthyOption bool       `json:"isHealthyOption"` // Healthy-choice flag.
	Cost            int        `json:"cost"`            // Cost tier, 1=cheap to 3=expensive.
	CreatedAt       time.Time  `json:"createdAt"`       // Set at creation, never changed.
	UpdatedAt       *time.Time `json:"updatedAt"`       // Stamped on every successful partial update.
}
