package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tharshan2001/Ebee.lk/configs"
	authController "github.com/tharshan2001/Ebee.lk/controllers/auth"
	"github.com/tharshan2001/Ebee.lk/middlewares"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", authController.Register)
	auth.Post("/login", authController.Login)
	auth.Post("/logout", authController.Logout)
	auth.Get("/me", middlewares.RequireUser, authController.Me)

	if configs.GoogleAuthEnabled() {
		auth.Get("/google", authController.GoogleLogin)
		auth.Get("/google/callback", authController.GoogleCallback)
	}
}
