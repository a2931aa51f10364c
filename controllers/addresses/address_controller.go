package addressController

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

// Default-ness lives on the user document as a single defaultAddress
// field: marking a new default is one atomic write, so there is never a
// moment with zero or two defaults.

var validate = validator.New()

func addressCol() *mongo.Collection { return configs.GetCollection("addresses") }
func userCol() *mongo.Collection    { return configs.GetCollection("users") }

func requesterID(c *fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Locals("userId").(string))
}

type AddressRequest struct {
	FullName   string `json:"fullName" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	District   string `json:"district" validate:"required"`
	Province   string `json:"province" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	IsDefault  bool   `json:"isDefault"`
}

func setDefaultAddress(ctx context.Context, userID, addressID primitive.ObjectID) error {
	_, err := userCol().UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{"defaultAddress": addressID}})
	return err
}

func unsetDefaultAddress(ctx context.Context, userID primitive.ObjectID) error {
	_, err := userCol().UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$unset": bson.M{"defaultAddress": ""}})
	return err
}

// Add creates a shipping address, optionally marking it the default.
func Add(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	userID, err := requesterID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	now := time.Now()
	address := models.Address{
		Id:         primitive.NewObjectID(),
		User:       userID,
		FullName:   req.FullName,
		Phone:      req.Phone,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		District:   req.District,
		Province:   req.Province,
		PostalCode: req.PostalCode,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := addressCol().InsertOne(ctx, address); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error adding address")
	}

	if req.IsDefault {
		if err := setDefaultAddress(ctx, userID, address.Id); err != nil {
			return responses.Error(c, fiber.StatusInternalServerError, "Error setting default address")
		}
		address.IsDefault = true
	}

	return responses.Created(c, "Address added successfully", &fiber.Map{"address": address})
}

// List returns all of the user's addresses with the default flagged.
func List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, err := requesterID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	cursor, err := addressCol().Find(ctx, bson.M{"user": userID})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching addresses")
	}
	defer cursor.Close(ctx)

	addresses := make([]models.Address, 0)
	if err := cursor.All(ctx, &addresses); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error decoding addresses")
	}

	var user models.User
	if err := userCol().FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching user")
	}

	return responses.OK(c, "Addresses fetched successfully", &fiber.Map{
		"addresses": models.FlagDefault(addresses, user.DefaultAddress),
	})
}

// Update edits an owned address. IsDefault=true transfers default-ness
// here; IsDefault=false on the current default clears it.
func Update(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	addressID, err := primitive.ObjectIDFromHex(c.Params("addressId"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid address ID")
	}

	var req AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	userID, err := requesterID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	update := bson.M{"$set": bson.M{
		"fullName":   req.FullName,
		"phone":      req.Phone,
		"line1":      req.Line1,
		"line2":      req.Line2,
		"city":       req.City,
		"district":   req.District,
		"province":   req.Province,
		"postalCode": req.PostalCode,
		"updatedAt":  time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var address models.Address
	err = addressCol().FindOneAndUpdate(ctx, bson.M{"_id": addressID, "user": userID}, update, opts).Decode(&address)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Address not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating address")
	}

	var user models.User
	if err := userCol().FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching user")
	}

	if req.IsDefault {
		if err := setDefaultAddress(ctx, userID, addressID); err != nil {
			return responses.Error(c, fiber.StatusInternalServerError, "Error setting default address")
		}
		address.IsDefault = true
	} else if user.DefaultAddress == addressID {
		if err := unsetDefaultAddress(ctx, userID); err != nil {
			return responses.Error(c, fiber.StatusInternalServerError, "Error clearing default address")
		}
	}

	return responses.OK(c, "Address updated successfully", &fiber.Map{"address": address})
}

// Delete removes an owned address, clearing the user's default pointer
// if it referenced the deleted address.
func Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	addressID, err := primitive.ObjectIDFromHex(c.Params("addressId"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid address ID")
	}

	userID, err := requesterID(c)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	var address models.Address
	err = addressCol().FindOneAndDelete(ctx, bson.M{"_id": addressID, "user": userID}).Decode(&address)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Address not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error deleting address")
	}

	var user models.User
	if err := userCol().FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err == nil && user.DefaultAddress == addressID {
		if err := unsetDefaultAddress(ctx, userID); err != nil {
			return responses.Error(c, fiber.StatusInternalServerError, "Error clearing default address")
		}
	}

	return responses.OK(c, "Address deleted successfully", nil)
}
