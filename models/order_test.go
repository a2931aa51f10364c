package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestItemsPrice(t *testing.T) {
	items := []OrderItem{
		{Product: primitive.NewObjectID(), Quantity: 2, Price: 100, Name: "Widget"},
		{Product: primitive.NewObjectID(), Quantity: 1, Price: 49.99, Name: "Gadget"},
	}

	assert.Equal(t, 249.99, ItemsPrice(items))
	assert.Equal(t, 0.0, ItemsPrice(nil))
}

func TestTotalPrice(t *testing.T) {
	items := []OrderItem{{Product: primitive.NewObjectID(), Quantity: 2, Price: 100, Name: "Widget"}}

	itemsPrice := ItemsPrice(items)
	assert.Equal(t, 200.0, itemsPrice)
	assert.Equal(t, 230.0, TotalPrice(itemsPrice, 20, 10))
}

func TestTotalPriceRoundsToCents(t *testing.T) {
	// 0.1 + 0.2 style float noise must not leak into stored totals.
	assert.Equal(t, 0.3, TotalPrice(0.1, 0.2, 0))
}

func TestNewOrderNumberFormat(t *testing.T) {
	n := NewOrderNumber()

	require.True(t, strings.HasPrefix(n, "ORD-"))
	parts := strings.Split(n, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 8)
}

func TestNewOrderNumberUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		n := NewOrderNumber()
		require.False(t, seen[n], "duplicate order number %s", n)
		seen[n] = true
	}
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PaymentPayPal))
	assert.True(t, ValidPaymentMethod(PaymentStripe))
	assert.True(t, ValidPaymentMethod(PaymentCashOnDelivery))
	assert.False(t, ValidPaymentMethod("Bitcoin"))
	assert.False(t, ValidPaymentMethod(""))
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled} {
		assert.True(t, ValidOrderStatus(s), s)
	}
	assert.False(t, ValidOrderStatus("Returned"))
}
