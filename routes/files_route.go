package routes

import (
	"github.com/gofiber/fiber/v2"

	filesController "github.com/tharshan2001/Ebee.lk/controllers/files"
	"github.com/tharshan2001/Ebee.lk/middlewares"
)

func FilesRoutes(app *fiber.App) {
	files := app.Group("/api/files", middlewares.RequireAdmin)

	files.Post("/upload", filesController.Upload)
	files.Delete("/:id", filesController.Delete)
}
