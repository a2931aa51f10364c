package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line item, stored as its own document keyed by
// (user, product). Splitting the cart across independent records means
// concurrent edits to different products never touch the same document.
type CartItem struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Product   primitive.ObjectID `bson:"product" json:"product"`
	Quantity  int                `bson:"quantity" json:"quantity" validate:"required,min=1"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HydratedCartItem pairs a line item with its live product document for
// cart reads.
type HydratedCartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ReducedQuantity applies the decrement-by-one rule to a line item.
// With removeAtZero false the quantity never drops below one; with it
// true a line item at one is deleted instead (remove reports deletion).
func ReducedQuantity(current int, removeAtZero bool) (quantity int, remove bool) {
	if current <= 1 {
		if removeAtZero {
			return 0, true
		}
		return 1, false
	}
	return current - 1, false
}

// CartItemsPrice sums unit price times quantity over hydrated items,
// rounded to the currency's smallest unit.
func CartItemsPrice(items []HydratedCartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Product.Price * float64(it.Quantity)
	}
	return roundToCents(total)
}
