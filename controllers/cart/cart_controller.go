package cartController

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

// Each line item is its own document keyed by (user, product), so every
// mutation below is a single targeted write and concurrent edits to
// different products never conflict.

var validate = validator.New()

func cartCol() *mongo.Collection    { return configs.GetCollection("cart_items") }
func productCol() *mongo.Collection { return configs.GetCollection("products") }

func requesterID(c *fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Locals("userId").(string))
}

// fetchItems loads the user's line items hydrated with their live
// product documents. Items whose product has been deleted are skipped.
func fetchItems(ctx context.Context, userID primitive.ObjectID) ([]models.HydratedCartItem, error) {
	cursor, err := cartCol().Find(ctx, bson.M{"user": userID}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lineItems []models.CartItem
	if err := cursor.All(ctx, &lineItems); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(lineItems))
	for _, it := range lineItems {
		ids = append(ids, it.Product)
	}

	productsByID := make(map[primitive.ObjectID]models.Product, len(ids))
	if len(ids) > 0 {
		pcur, err := productCol().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return nil, err
		}
		defer pcur.Close(ctx)

		var products []models.Product
		if err := pcur.All(ctx, &products); err != nil {
			return nil, err
		}
		for _, p := range products {
			productsByID[p.Id] = p
		}
	}

	items := make([]models.HydratedCartItem, 0, len(lineItems))
	for _, it := range lineItems {
		product, ok := productsByID[it.Product]
		if !ok {
			continue
		}
		items = append(items, models.HydratedCartItem{Product: product, Quantity: it.Quantity})
	}
	return items, nil
}

// Get returns the user's cart. A user with no line items simply gets an
// empty cart, there is nothing to create up front.
func Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, err := requesterID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	items, err := fetchItems(ctx, userID)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching cart")
	}

	return responses.OK(c, "Cart fetched successfully", &fiber.Map{"items": items})
}

// Summary returns the cart's item total at live product prices.
func Summary(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, err := requesterID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	items, err := fetchItems(ctx, userID)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching cart")
	}

	var count int
	for _, it := range items {
		count += it.Quantity
	}

	return responses.OK(c, "Cart summary calculated successfully", &fiber.Map{
		"itemsPrice": models.CartItemsPrice(items),
		"itemCount":  count,
	})
}

type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// Add merges a product into the cart: an atomic upsert increments the
// existing line item or inserts a new one, never duplicating the line.
func Add(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Quantity must be at least 1")
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	userID, err := requesterID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	var product models.Product
	err = productCol().FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching product")
	}

	now := time.Now()
	update := bson.M{
		"$inc":         bson.M{"quantity": req.Quantity},
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	filter := bson.M{"user": userID, "product": productID}
	if _, err := cartCol().UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to update cart")
	}

	return responses.OK(c, "Successfully added to cart", nil)
}

type UpdateCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// SetQuantity replaces the quantity of an existing line item.
func SetQuantity(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req UpdateCartRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Quantity must be at least 1")
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	userID, err := requesterID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	update := bson.M{"$set": bson.M{"quantity": req.Quantity, "updatedAt": time.Now()}}
	res, err := cartCol().UpdateOne(ctx, bson.M{"user": userID, "product": productID}, update)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to update cart")
	}
	if res.MatchedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "Item not found in cart")
	}

	return responses.OK(c, "Cart updated successfully", nil)
}

// Reduce decrements a line item by one. The floor-of-1 versus
// remove-at-zero choice is the CART_REMOVE_AT_ZERO configuration switch.
func Reduce(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	userID, err := requesterID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	filter := bson.M{"user": userID, "product": productID}

	var item models.CartItem
	err = cartCol().FindOne(ctx, filter).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Item not found in cart")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching cart item")
	}

	quantity, remove := models.ReducedQuantity(item.Quantity, configs.CartRemoveAtZero())
	if remove {
		if _, err := cartCol().DeleteOne(ctx, filter); err != nil {
			return responses.Error(c, fiber.StatusInternalServerError, "Failed to update cart")
		}
		return responses.OK(c, "Item removed from cart", nil)
	}

	update := bson.M{"$set": bson.M{"quantity": quantity, "updatedAt": time.Now()}}
	if _, err := cartCol().UpdateOne(ctx, filter, update); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to update cart")
	}

	return responses.OK(c, "Successfully removed 1 item from cart", nil)
}

// Remove deletes a line item. Removing an absent product is a no-op.
func Remove(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	userID, err := requesterID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	if _, err := cartCol().DeleteOne(ctx, bson.M{"user": userID, "product": productID}); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to update cart")
	}

	return responses.OK(c, "Successfully removed from cart", nil)
}

// Clear empties the user's cart.
func Clear(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, err := requesterID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	if _, err := cartCol().DeleteMany(ctx, bson.M{"user": userID}); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to clear cart")
	}

	return responses.OK(c, "Cart cleared successfully", nil)
}
