package routes

import (
	"github.com/gofiber/fiber/v2"

	orderController "github.com/tharshan2001/Ebee.lk/controllers/orders"
	"github.com/tharshan2001/Ebee.lk/middlewares"
)

func OrdersRoutes(app *fiber.App) {
	orders := app.Group("/api/orders")

	orders.Post("/", middlewares.RequireUser, orderController.Create)
	orders.Get("/myorders", middlewares.RequireUser, orderController.MyOrders)
	orders.Get("/", middlewares.RequireAdmin, orderController.List)
	orders.Get("/:id", middlewares.RequireUser, orderController.Get)
	orders.Put("/:id/pay", middlewares.RequireUser, orderController.Pay)
	orders.Post("/:id/payment-intent", middlewares.RequireUser, orderController.CreatePaymentIntent)
	orders.Put("/:id/deliver", middlewares.RequireAdmin, orderController.Deliver)
	orders.Put("/:id/status", middlewares.RequireAdmin, orderController.SetStatus)
	orders.Put("/:id/cancel", middlewares.RequireUser, orderController.Cancel)
}
