package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a storefront customer. OAuth-only users have no password hash;
// DefaultAddress points at the address pre-selected at checkout.
type User struct {
	Id             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	GoogleID       string             `bson:"googleId,omitempty" json:"googleId,omitempty"`
	Name           string             `bson:"name" json:"name" validate:"required"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	Avatar         string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Password       string             `bson:"password,omitempty" json:"-"`
	DefaultAddress primitive.ObjectID `bson:"defaultAddress,omitempty" json:"defaultAddress,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
