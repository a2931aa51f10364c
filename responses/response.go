package responses

import "github.com/gofiber/fiber/v2"

// APIResponse is the uniform JSON envelope every handler replies with.
type APIResponse struct {
	Status  int        `json:"status"`
	Message string     `json:"message"`
	Result  *fiber.Map `json:"result,omitempty"`
}

// Error replies with a bare status/message envelope.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(APIResponse{
		Status:  status,
		Message: message,
	})
}

// OK replies with a 200 envelope carrying a result payload.
func OK(c *fiber.Ctx, message string, result *fiber.Map) error {
	return c.Status(fiber.StatusOK).JSON(APIResponse{
		Status:  fiber.StatusOK,
		Message: message,
		Result:  result,
	})
}

// Created replies with a 201 envelope carrying a result payload.
func Created(c *fiber.Ctx, message string, result *fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(APIResponse{
		Status:  fiber.StatusCreated,
		Message: message,
		Result:  result,
	})
}
