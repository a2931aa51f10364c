package middlewares

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := CreateToken("abc123", NamespaceUser, UserTokenTTL)
	require.NoError(t, err)

	id, err := ParseToken(token, NamespaceUser)
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)
}

func TestTokenNamespaceMismatch(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// A user token must never pass the admin gate, and vice versa.
	userToken, err := CreateToken("abc123", NamespaceUser, UserTokenTTL)
	require.NoError(t, err)

	_, err = ParseToken(userToken, NamespaceAdmin)
	assert.ErrorIs(t, err, ErrWrongNamespace)

	adminToken, err := CreateToken("def456", NamespaceAdmin, AdminTokenTTL)
	require.NoError(t, err)

	_, err = ParseToken(adminToken, NamespaceUser)
	assert.ErrorIs(t, err, ErrWrongNamespace)
}

func TestTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := CreateToken("abc123", NamespaceUser, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, NamespaceUser)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := CreateToken("abc123", NamespaceUser, UserTokenTTL)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ParseToken(token, NamespaceUser)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestSessionCookieDevelopment(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	c := SessionCookie(UserCookie, "v", UserTokenTTL)
	assert.True(t, c.HTTPOnly)
	assert.False(t, c.Secure)
	assert.Equal(t, "Lax", c.SameSite)
}

func TestSessionCookieProduction(t *testing.T) {
	t.Setenv("NODE_ENV", "production")

	user := SessionCookie(UserCookie, "v", UserTokenTTL)
	assert.True(t, user.Secure)
	assert.Equal(t, "None", user.SameSite)

	admin := SessionCookie(AdminCookie, "v", AdminTokenTTL)
	assert.True(t, admin.Secure)
	assert.Equal(t, "Strict", admin.SameSite)
}

func TestExpiredCookieClearsSession(t *testing.T) {
	c := ExpiredCookie(UserCookie)
	assert.Empty(t, c.Value)
	assert.True(t, c.Expires.Before(time.Now()))
}
