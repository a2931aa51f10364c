package authController

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/tharshan2001/Ebee.lk/configs"
	"github.com/tharshan2001/Ebee.lk/middlewares"
	"github.com/tharshan2001/Ebee.lk/models"
	"github.com/tharshan2001/Ebee.lk/responses"
)

var validate = validator.New()

func userCol() *mongo.Collection { return configs.GetCollection("users") }

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a local-credential user and opens a session.
func Register(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var existing models.User
	err := userCol().FindOne(ctx, bson.M{"email": req.Email}).Decode(&existing)
	if err == nil {
		return responses.Error(c, fiber.StatusBadRequest, "User exists")
	}
	if err != mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusInternalServerError, "Error checking user existence")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error hashing password")
	}

	now := time.Now()
	user := models.User{
		Id:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := userCol().InsertOne(ctx, user); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error saving user, please try again later")
	}

	return openSession(c, user.Id.Hex())
}

// Login verifies local credentials and opens a session. Unknown email
// and bad password answer identically.
func Login(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var user models.User
	err := userCol().FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid credentials")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching from database")
	}

	if user.Password == "" {
		// OAuth-only account, no local password to compare.
		return responses.Error(c, fiber.StatusBadRequest, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	return openSession(c, user.Id.Hex())
}

// Logout clears the session cookie.
func Logout(c *fiber.Ctx) error {
	c.Cookie(middlewares.ExpiredCookie(middlewares.UserCookie))
	return responses.OK(c, "Logged out successfully", nil)
}

// Me returns the authenticated user loaded by the gate.
func Me(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return responses.Error(c, fiber.StatusNotFound, "User not found")
	}
	return responses.OK(c, "User fetched successfully", &fiber.Map{"user": user})
}

func openSession(c *fiber.Ctx, userId string) error {
	token, err := middlewares.CreateToken(userId, middlewares.NamespaceUser, middlewares.UserTokenTTL)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error generating token")
	}

	c.Cookie(middlewares.SessionCookie(middlewares.UserCookie, token, middlewares.UserTokenTTL))
	return responses.OK(c, "Authentication successful", nil)
}
