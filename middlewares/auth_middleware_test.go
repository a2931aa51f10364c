package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/user", RequireUser, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/admin", RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRequireUserNoToken(t *testing.T) {
	app := protectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/user", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "No auth token")
}

func TestRequireUserGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/user", nil)
	req.AddCookie(&http.Cookie{Name: UserCookie, Value: "not-a-jwt"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminRejectsUserToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := protectedApp()

	// A valid user-namespace token presented on the admin cookie fails
	// at the namespace check, before any identity lookup.
	token, err := CreateToken("abc123", NamespaceUser, UserTokenTTL)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookie, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireUserBearerHeaderFallback(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/user", nil)
	req.Header.Set("Authorization", "Basic abc")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Non-bearer Authorization headers are ignored, not parsed.
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
