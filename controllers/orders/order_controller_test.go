package orderController

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tharshan2001/Ebee.lk/models"
)

func TestNewOrderTotals(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	req := CreateOrderRequest{
		OrderItems: []OrderItemRequest{
			{ProductID: productID.Hex(), Quantity: 2, Price: 100, Name: "Widget"},
		},
		ShippingAddress: models.ShippingAddress{
			FullName:   "Jordan Perera",
			Address:    "12 Lake Rd",
			City:       "Colombo",
			PostalCode: "00100",
			Country:    "Sri Lanka",
		},
		PaymentMethod: models.PaymentCashOnDelivery,
		TaxPrice:      20,
		ShippingPrice: 10,
	}

	order, err := newOrder(userID, req)
	require.NoError(t, err)

	assert.Equal(t, 200.0, order.ItemsPrice)
	assert.Equal(t, 230.0, order.TotalPrice)
	assert.Equal(t, userID, order.User)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.False(t, order.IsPaid)
	assert.False(t, order.IsDelivered)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))

	// The snapshot keeps the submitted price and name, not live data.
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, productID, order.OrderItems[0].Product)
	assert.Equal(t, 100.0, order.OrderItems[0].Price)
	assert.Equal(t, "Widget", order.OrderItems[0].Name)
}

func TestNewOrderInvalidProductID(t *testing.T) {
	req := CreateOrderRequest{
		OrderItems:    []OrderItemRequest{{ProductID: "nope", Quantity: 1, Price: 5, Name: "X"}},
		PaymentMethod: models.PaymentPayPal,
	}

	_, err := newOrder(primitive.NewObjectID(), req)
	assert.Error(t, err)
}

func TestNewOrderDistinctOrderNumbers(t *testing.T) {
	req := CreateOrderRequest{
		OrderItems:    []OrderItemRequest{{ProductID: primitive.NewObjectID().Hex(), Quantity: 1, Price: 5, Name: "X"}},
		PaymentMethod: models.PaymentStripe,
	}

	a, err := newOrder(primitive.NewObjectID(), req)
	require.NoError(t, err)
	b, err := newOrder(primitive.NewObjectID(), req)
	require.NoError(t, err)

	assert.NotEqual(t, a.OrderNumber, b.OrderNumber)
}

func TestCreateOrderRequestValidation(t *testing.T) {
	// Empty order items must fail validation before any write happens.
	err := validate.Struct(CreateOrderRequest{
		OrderItems:    []OrderItemRequest{},
		PaymentMethod: models.PaymentPayPal,
	})
	assert.Error(t, err)

	err = validate.Struct(CreateOrderRequest{
		OrderItems:    []OrderItemRequest{{ProductID: "x", Quantity: 0, Price: 5, Name: "X"}},
		PaymentMethod: models.PaymentPayPal,
	})
	assert.Error(t, err, "zero quantity line item must be rejected")
}
