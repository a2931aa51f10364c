package routes

import (
	"github.com/gofiber/fiber/v2"

	cartController "github.com/tharshan2001/Ebee.lk/controllers/cart"
	"github.com/tharshan2001/Ebee.lk/middlewares"
)

func CartRoutes(app *fiber.App) {
	cart := app.Group("/api/cart", middlewares.RequireUser)

	cart.Get("/", cartController.Get)
	cart.Get("/summary", cartController.Summary)
	cart.Post("/add", cartController.Add)
	cart.Put("/update", cartController.SetQuantity)
	cart.Put("/reduce/:productId", cartController.Reduce)
	cart.Delete("/remove/:productId", cartController.Remove)
	cart.Delete("/clear", cartController.Clear)
}
