package routes

import (
	"github.com/gofiber/fiber/v2"

	productsController "github.com/tharshan2001/Ebee.lk/controllers/products"
	"github.com/tharshan2001/Ebee.lk/middlewares"
)

func ProductsRoutes(app *fiber.App) {
	products := app.Group("/api/products")

	products.Get("/", productsController.List)
	products.Get("/trending", productsController.Trending)
	products.Get("/slug/:slug", productsController.GetBySlug)
	products.Get("/:id", productsController.GetByID)

	products.Post("/", middlewares.RequireAdmin, productsController.Create)
	products.Put("/:id", middlewares.RequireAdmin, productsController.Update)
	products.Delete("/:id", middlewares.RequireAdmin, productsController.Delete)

	products.Post("/:id/reviews", middlewares.RequireUser, productsController.AddReview)
}
