package adminController

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

func adminCol() *mongo.Collection { return configs.GetCollection("admins") }

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a back-office admin and opens an admin session.
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

	var existing models.Admin
	err := adminCol().FindOne(ctx, bson.M{"email": req.Email}).Decode(&existing)
	if err == nil {
		return responses.Error(c, fiber.StatusBadRequest, "Admin already exists")
	}
	if err != mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusInternalServerError, "Error checking admin existence")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error hashing password")
	}

	now := time.Now()
	admin := models.Admin{
		Id:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := adminCol().InsertOne(ctx, admin); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error saving admin")
	}

	if err := openAdminSession(c, admin.Id.Hex()); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error generating token")
	}
	return responses.Created(c, "Admin created successfully", &fiber.Map{"admin": admin})
}

// Login verifies admin credentials and opens an admin session.
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

	var admin models.Admin
	err := adminCol().FindOne(ctx, bson.M{"email": req.Email}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching from database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	if err := openAdminSession(c, admin.Id.Hex()); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error generating token")
	}
	return responses.OK(c, "Admin signed in successfully", &fiber.Map{"admin": admin})
}

// Profile returns the admin loaded by the gate.
func Profile(c *fiber.Ctx) error {
	admin, ok := c.Locals("admin").(models.Admin)
	if !ok {
		return responses.Error(c, fiber.StatusNotFound, "Admin not found")
	}
	return responses.OK(c, "Admin profile fetched successfully", &fiber.Map{"admin": admin})
}

// Logout clears the admin session cookie.
func Logout(c *fiber.Ctx) error {
	c.Cookie(middlewares.ExpiredCookie(middlewares.AdminCookie))
	return responses.OK(c, "Admin logged out successfully", nil)
}

func openAdminSession(c *fiber.Ctx, adminId string) error {
	token, err := middlewares.CreateToken(adminId, middlewares.NamespaceAdmin, middlewares.AdminTokenTTL)
	if err != nil {
		return err
	}
	c.Cookie(middlewares.SessionCookie(middlewares.AdminCookie, token, middlewares.AdminTokenTTL))
	return nil
}
