package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReducedQuantityFloor(t *testing.T) {
	// Quantity never drops below one when removal at zero is off.
	q, remove := ReducedQuantity(1, false)
	assert.Equal(t, 1, q)
	assert.False(t, remove)

	q, remove = ReducedQuantity(3, false)
	assert.Equal(t, 2, q)
	assert.False(t, remove)
}

func TestReducedQuantityRemoveAtZero(t *testing.T) {
	q, remove := ReducedQuantity(1, true)
	assert.Equal(t, 0, q)
	assert.True(t, remove)

	// Above the floor the policy makes no difference.
	q, remove = ReducedQuantity(2, true)
	assert.Equal(t, 1, q)
	assert.False(t, remove)
}

func TestCartItemsPrice(t *testing.T) {
	items := []HydratedCartItem{
		{Product: Product{Price: 19.99}, Quantity: 2},
		{Product: Product{Price: 5}, Quantity: 3},
	}

	assert.Equal(t, 54.98, CartItemsPrice(items))
	assert.Equal(t, 0.0, CartItemsPrice(nil))
}
