package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is a shipping address owned by a user. Default-ness is not
// stored here: the owning user's DefaultAddress field is the single
// source of truth, so at most one address can ever be the default.
type Address struct {
	Id         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User       primitive.ObjectID `bson:"user" json:"user"`
	FullName   string             `bson:"fullName" json:"fullName" validate:"required"`
	Phone      string             `bson:"phone" json:"phone" validate:"required"`
	Line1      string             `bson:"line1" json:"line1" validate:"required"`
	Line2      string             `bson:"line2,omitempty" json:"line2,omitempty"`
	City       string             `bson:"city" json:"city" validate:"required"`
	District   string             `bson:"district" json:"district" validate:"required"`
	Province   string             `bson:"province" json:"province" validate:"required"`
	PostalCode string             `bson:"postalCode" json:"postalCode" validate:"required"`
	IsDefault  bool               `bson:"-" json:"isDefault"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FlagDefault sets IsDefault on the one address matching the user's
// DefaultAddress field, clearing it everywhere else.
func FlagDefault(addresses []Address, defaultID primitive.ObjectID) []Address {
	for i := range addresses {
		addresses[i].IsDefault = !defaultID.IsZero() && addresses[i].Id == defaultID
	}
	return addresses
}
