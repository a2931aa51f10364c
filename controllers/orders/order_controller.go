package orderController

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tharshan2001/Ebee.lk/configs"
	"github.com/tharshan2001/Ebee.lk/models"
	"github.com/tharshan2001/Ebee.lk/responses"
)

var validate = validator.New()

func orderCol() *mongo.Collection { return configs.GetCollection("orders") }
func cartCol() *mongo.Collection  { return configs.GetCollection("cart_items") }

func requesterID(c *fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Locals("userId").(string))
}

type OrderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price" validate:"gte=0"`
	Name      string  `json:"name" validate:"required"`
	Image     string  `json:"image"`
}

type CreateOrderRequest struct {
	OrderItems      []OrderItemRequest     `json:"orderItems" validate:"required,min=1,dive"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress" validate:"required"`
	PaymentMethod   string                 `json:"paymentMethod" validate:"required"`
	TaxPrice        float64                `json:"taxPrice" validate:"gte=0"`
	ShippingPrice   float64                `json:"shippingPrice" validate:"gte=0"`
}

// newOrder builds the immutable checkout snapshot. Line items carry the
// prices and names captured at submission time; the item total is
// computed here, tax and shipping are taken as supplied.
func newOrder(userID primitive.ObjectID, req CreateOrderRequest) (models.Order, error) {
	items := make([]models.OrderItem, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		productID, err := primitive.ObjectIDFromHex(it.ProductID)
		if err != nil {
			return models.Order{}, err
		}
		items = append(items, models.OrderItem{
			Product:  productID,
			Quantity: it.Quantity,
			Price:    it.Price,
			Name:     it.Name,
			Image:    it.Image,
		})
	}

	itemsPrice := models.ItemsPrice(items)
	now := time.Now()

	return models.Order{
		Id:              primitive.NewObjectID(),
		User:            userID,
		OrderItems:      items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		ItemsPrice:      itemsPrice,
		TaxPrice:        req.TaxPrice,
		ShippingPrice:   req.ShippingPrice,
		TotalPrice:      models.TotalPrice(itemsPrice, req.TaxPrice, req.ShippingPrice),
		Status:          models.OrderPending,
		OrderNumber:     models.NewOrderNumber(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Create places an order from the submitted snapshot and empties the
// user's cart.
func Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return responses.Error(c, fiber.StatusBadRequest, "Unknown payment method")
	}

	userID, err := requesterID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	order, err := newOrder(userID, req)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID in order items")
	}

	if _, err := orderCol().InsertOne(ctx, order); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error creating order")
	}

	if _, err := cartCol().DeleteMany(ctx, bson.M{"user": userID}); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Order created but failed to clear cart")
	}

	return responses.Created(c, "Order placed successfully", &fiber.Map{"order": order})
}

// MyOrders lists the requester's orders, newest first.
func MyOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, err := requesterID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := orderCol().Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching orders")
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error decoding orders")
	}

	return responses.OK(c, "Orders fetched successfully", &fiber.Map{"orders": orders})
}

// List returns every order, newest first. Admin gate applies.
func List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := orderCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching orders")
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error decoding orders")
	}

	return responses.OK(c, "Orders fetched successfully", &fiber.Map{"orders": orders})
}

// ownedOrder loads an order scoped to its owner. Orders belonging to
// someone else answer the same as missing ones.
func ownedOrder(ctx context.Context, c *fiber.Ctx) (*models.Order, error) {
	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return nil, responses.Error(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	userID, err := requesterID(c)
	if err != nil {
		return nil, responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	var order models.Order
	err = orderCol().FindOne(ctx, bson.M{"_id": orderID, "user": userID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, responses.Error(c, fiber.StatusNotFound, "Order not found")
	}
	if err != nil {
		return nil, responses.Error(c, fiber.StatusInternalServerError, "Error fetching order")
	}
	return &order, nil
}

// Get returns one of the requester's orders.
func Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	order, err := ownedOrder(ctx, c)
	if order == nil {
		return err
	}
	return responses.OK(c, "Order fetched successfully", &fiber.Map{"order": order})
}

type PayOrderRequest struct {
	Id           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

// Pay marks an order paid with the gateway's payment result.
func Pay(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req PayOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	order, err := ownedOrder(ctx, c)
	if order == nil {
		return err
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"isPaid": true,
		"paidAt": now,
		"paymentResult": models.PaymentResult{
			Id:           req.Id,
			Status:       req.Status,
			UpdateTime:   req.UpdateTime,
			EmailAddress: req.EmailAddress,
		},
		"updatedAt": now,
	}}
	if _, err := orderCol().UpdateOne(ctx, bson.M{"_id": order.Id}, update); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating order")
	}

	return responses.OK(c, "Order marked as paid", nil)
}

// Deliver marks an order delivered. Admin gate applies.
func Deliver(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"isDelivered": true,
		"deliveredAt": now,
		"status":      models.OrderDelivered,
		"updatedAt":   now,
	}}
	res, err := orderCol().UpdateOne(ctx, bson.M{"_id": orderID}, update)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating order")
	}
	if res.MatchedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "Order not found")
	}

	return responses.OK(c, "Order marked as delivered", nil)
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetStatus replaces the order status. There is no enforced state
// machine, any status can follow any other. Admin gate applies.
func SetStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	var req SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if !models.ValidOrderStatus(req.Status) {
		return responses.Error(c, fiber.StatusBadRequest, "Unknown order status")
	}

	update := bson.M{"$set": bson.M{"status": req.Status, "updatedAt": time.Now()}}
	res, err := orderCol().UpdateOne(ctx, bson.M{"_id": orderID}, update)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating order")
	}
	if res.MatchedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "Order not found")
	}

	return responses.OK(c, "Order status updated", nil)
}

// Cancel sets the status to Cancelled without checking the current
// status.
func Cancel(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	order, err := ownedOrder(ctx, c)
	if order == nil {
		return err
	}

	update := bson.M{"$set": bson.M{"status": models.OrderCancelled, "updatedAt": time.Now()}}
	if _, err := orderCol().UpdateOne(ctx, bson.M{"_id": order.Id}, update); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error cancelling order")
	}

	return responses.OK(c, "Order cancelled", nil)
}
