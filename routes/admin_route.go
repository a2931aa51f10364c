package routes

import (
	"github.com/gofiber/fiber/v2"

	adminController "github.com/tharshan2001/Ebee.lk/controllers/admin"
	"github.com/tharshan2001/Ebee.lk/middlewares"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin")

	admin.Post("/register", adminController.Register)
	admin.Post("/login", adminController.Login)
	admin.Get("/profile", middlewares.RequireAdmin, adminController.Profile)
	admin.Post("/logout", middlewares.RequireAdmin, adminController.Logout)
}
