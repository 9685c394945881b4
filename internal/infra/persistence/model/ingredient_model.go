package model

import "time"

// IngredientDocument is the BSON shape of an ingredient in the
// ingredients collection.
type IngredientDocument struct {
	ID              string     `bson:"_id"`
	Name            string     `bson:"name"`
	Rating          int        `bson:"rating"`
	IsHealthyOption bool       `bson:"isHealthyOption"`
	Cost            int        `bson:"cost"`
	Macro           string     `bson:"macro"`
	Barcodes        []string   `bson:"barcodes,omitempty"`
	CreatedAt       time.Time  `bson:"createdAt"`
	UpdatedAt       *time.Time `bson:"updatedAt,omitempty"`
}
