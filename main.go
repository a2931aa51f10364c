package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/tharshan2001/Ebee.lk/configs"
	filesController "github.com/tharshan2001/Ebee.lk/controllers/files"
	"github.com/tharshan2001/Ebee.lk/logger"
	"github.com/tharshan2001/Ebee.lk/middlewares"
	"github.com/tharshan2001/Ebee.lk/responses"
	"github.com/tharshan2001/Ebee.lk/routes"
)

func main() {
	configs.LoadEnv()
	logger.Initialize(os.Getenv("NODE_ENV"))
	defer zap.L().Sync()

	configs.ConnectDB()

	app := fiber.New(fiber.Config{
		BodyLimit:    filesController.MaxUploadSize,
		ErrorHandler: errorHandler,
	})

	app.Use(middlewares.RequestLogger(zap.L()))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     configs.EnvFrontendURL(),
		AllowCredentials: true,
	}))

	app.Static("/uploads", configs.EnvUploadDir())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Server running")
	})

	routes.AuthRoutes(app)
	routes.AdminRoutes(app)
	routes.ProductsRoutes(app)
	routes.CartRoutes(app)
	routes.AddressRoutes(app)
	routes.OrdersRoutes(app)
	routes.FilesRoutes(app)

	addr := ":" + configs.EnvPort()
	zap.L().Info("server listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}

// errorHandler is the single fallback for anything a handler did not
// map itself.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	zap.L().Error("unhandled error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)

	return responses.Error(c, code, "Something broke!")
}
