package routes

import (
	"github.com/gofiber/fiber/v2"

	addressController "github.com/tharshan2001/Ebee.lk/controllers/addresses"
	"github.com/tharshan2001/Ebee.lk/middlewares"
)

func AddressRoutes(app *fiber.App) {
	address := app.Group("/api/address", middlewares.RequireUser)

	address.Post("/", addressController.Add)
	address.Get("/", addressController.List)
	address.Put("/:addressId", addressController.Update)
	address.Delete("/:addressId", addressController.Delete)
}
