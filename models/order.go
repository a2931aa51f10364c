package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Transitions are independent field updates, any status
// can follow any other.
const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentPayPal         = "PayPal"
	PaymentStripe         = "Stripe"
	PaymentCashOnDelivery = "Cash on Delivery"
)

// OrderItem is a denormalized snapshot of a cart line item. Price, name
// and image are captured at checkout so later product edits cannot
// alter historical orders.
type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity" validate:"required,min=1"`
	Price    float64            `bson:"price" json:"price" validate:"gte=0"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
}

// ShippingAddress is the address copy frozen into the order.
type ShippingAddress struct {
	FullName   string `bson:"fullName" json:"fullName" validate:"required"`
	Address    string `bson:"address" json:"address" validate:"required"`
	City       string `bson:"city" json:"city" validate:"required"`
	PostalCode string `bson:"postalCode" json:"postalCode" validate:"required"`
	Country    string `bson:"country" json:"country" validate:"required"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// PaymentResult records whatever the payment gateway reported.
type PaymentResult struct {
	Id           string `bson:"id,omitempty" json:"id,omitempty"`
	Status       string `bson:"status,omitempty" json:"status,omitempty"`
	UpdateTime   string `bson:"update_time,omitempty" json:"update_time,omitempty"`
	EmailAddress string `bson:"email_address,omitempty" json:"email_address,omitempty"`
}

// Order is the immutable checkout snapshot. Totals are computed once at
// creation and never recomputed from the line items.
type Order struct {
	Id              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	OrderItems      []OrderItem        `bson:"orderItems" json:"orderItems"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentResult   PaymentResult      `bson:"paymentResult,omitempty" json:"paymentResult,omitempty"`
	ItemsPrice      float64            `bson:"itemsPrice" json:"itemsPrice"`
	TaxPrice        float64            `bson:"taxPrice" json:"taxPrice"`
	ShippingPrice   float64            `bson:"shippingPrice" json:"shippingPrice"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	IsPaid          bool               `bson:"isPaid" json:"isPaid"`
	PaidAt          *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	IsDelivered     bool               `bson:"isDelivered" json:"isDelivered"`
	DeliveredAt     *time.Time         `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	Status          string             `bson:"status" json:"status"`
	OrderNumber     string             `bson:"orderNumber" json:"orderNumber"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ItemsPrice sums unit price times quantity, rounded to the currency's
// smallest unit.
func ItemsPrice(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return roundToCents(total)
}

// TotalPrice adds the caller-supplied tax and shipping to the item
// total. No hidden rounding beyond cents.
func TotalPrice(itemsPrice, taxPrice, shippingPrice float64) float64 {
	return roundToCents(itemsPrice + taxPrice + shippingPrice)
}

// NewOrderNumber allocates a human-readable, collision-free order
// number. The random suffix replaces the old count-then-write counter,
// which could hand out duplicates under concurrent checkouts.
func NewOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}

// ValidPaymentMethod reports whether s is one of the accepted methods.
func ValidPaymentMethod(s string) bool {
	switch s {
	case PaymentPayPal, PaymentStripe, PaymentCashOnDelivery:
		return true
	}
	return false
}

// ValidOrderStatus reports whether s is one of the five statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
