package productsController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tharshan2001/Ebee.lk/models"
	"github.com/tharshan2001/Ebee.lk/responses"
)

type AddReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// AddReview appends a customer review and refreshes the product's
// rating aggregate.
func AddReview(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var req AddReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Rating must be between 1 and 5")
	}

	userId := c.Locals("userId").(string)
	userObjectID, err := primitive.ObjectIDFromHex(userId)
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

	product.AddReview(models.Review{
		User:      userObjectID,
		Comment:   req.Comment,
		Rating:    req.Rating,
		CreatedAt: time.Now(),
	})

	update := bson.M{"$set": bson.M{
		"reviews":   product.Reviews,
		"ratings":   product.Ratings,
		"updatedAt": time.Now(),
	}}
	if _, err := productCol().UpdateOne(ctx, bson.M{"_id": productID}, update); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error saving review")
	}

	return responses.Created(c, "Review added successfully", &fiber.Map{"ratings": product.Ratings})
}
