// Package model contains the BSON document structs for the document
// store. Documents are converted to and from domain entities through
// explicit mapping functions in the mongodb package; there is no
// implicit conversion.
package model

import "time"

// FoodDocument is the BSON shape of a food in the foods collection.
type FoodDocument struct {
	ID              string     `bson:"_id"`
	Name            string     `bson:"name"`
	Rating          int        `bson:"rating"`
	IsHealthyOption bool       `bson:"isHealthyOption"`
	Cost            int        `bson:"cost"`
	Ingredients     []string   `bson:"ingredients"`
	Course          string     `bson:"course"`
	Difficulty      int        `bson:"difficulty"`
	Speed           int        `bson:"speed"`
	CreatedAt       time.Time  `bson:"createdAt"`
	UpdatedAt       *time.Time `bson:"updatedAt,omitempty"`
}
