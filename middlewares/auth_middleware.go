package middlewares

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tharshan2001/Ebee.lk/configs"
	"github.com/tharshan2001/Ebee.lk/models"
	"github.com/tharshan2001/Ebee.lk/responses"
)

// bearerToken pulls the session token from the named cookie, falling
// back to an Authorization: Bearer header for non-browser clients.
func bearerToken(c *fiber.Ctx, cookie string) string {
	if t := c.Cookies(cookie); t != "" {
		return t
	}
	parts := strings.Split(c.Get("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// RequireUser gates a route on a valid user session. The referenced
// user must still exist; its id is stored in Locals("userId").
func RequireUser(c *fiber.Ctx) error {
	tokenString := bearerToken(c, UserCookie)
	if tokenString == "" {
		return responses.Error(c, fiber.StatusUnauthorized, "No auth token, access denied")
	}

	userId, err := ParseToken(tokenString, NamespaceUser)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Token verification failed, access denied")
	}

	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID in token")
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := configs.GetCollection("users").FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "User no longer exists")
	}

	c.Locals("userId", userId)
	c.Locals("user", user)
	return c.Next()
}

// RequireAdmin gates a route on a valid admin session. Admin tokens
// live in their own namespace; a user token never passes this gate.
func RequireAdmin(c *fiber.Ctx) error {
	tokenString := bearerToken(c, AdminCookie)
	if tokenString == "" {
		return responses.Error(c, fiber.StatusUnauthorized, "No admin token, access denied")
	}

	adminId, err := ParseToken(tokenString, NamespaceAdmin)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Token verification failed, access denied")
	}

	adminObjectID, err := primitive.ObjectIDFromHex(adminId)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid admin ID in token")
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var admin models.Admin
	if err := configs.GetCollection("admins").FindOne(ctx, bson.M{"_id": adminObjectID}).Decode(&admin); err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Admin no longer exists")
	}

	c.Locals("adminId", adminId)
	c.Locals("admin", admin)
	return c.Next()
}
