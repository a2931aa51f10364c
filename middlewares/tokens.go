package middlewares

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/tharshan2001/Ebee.lk/configs"
)

// Token namespaces. User and admin sessions are signed with the same
// secret but carry an explicit namespace claim, so a token from one
// gate can never pass the other.
const (
	NamespaceUser  = "user"
	NamespaceAdmin = "admin"
)

// Cookie names for the two session kinds.
const (
	UserCookie  = "token"
	AdminCookie = "adminToken"
)

// Session lifetimes mirror the issued tokens' expiry.
const (
	UserTokenTTL  = 24 * time.Hour
	AdminTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrTokenInvalid   = errors.New("token verification failed")
	ErrWrongNamespace = errors.New("token namespace mismatch")
)

// CreateToken signs an HS256 bearer token for the given identity and
// namespace.
func CreateToken(id, namespace string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":  id,
		"ns":  namespace,
		"exp": time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.EnvJWTSecret()))
}

// ParseToken verifies signature, expiry and namespace, returning the
// identity id carried in the token.
func ParseToken(tokenString, namespace string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(configs.EnvJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return "", ErrTokenInvalid
	}

	if ns, _ := claims["ns"].(string); ns != namespace {
		return "", ErrWrongNamespace
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return "", ErrTokenInvalid
	}
	return id, nil
}

// SessionCookie builds the httpOnly cookie carrying a session token.
// Secure and SameSite depend on the environment: production runs the
// frontend on another origin, so the user cookie needs SameSite=None.
func SessionCookie(name, value string, ttl time.Duration) *fiber.Cookie {
	sameSite := "Lax"
	if name == AdminCookie {
		sameSite = "Strict"
	} else if configs.IsProduction() {
		sameSite = "None"
	}

	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: sameSite,
	}
}

// ExpiredCookie returns a cookie that clears the named session.
func ExpiredCookie(name string) *fiber.Cookie {
	c := SessionCookie(name, "", 0)
	c.Expires = time.Now().Add(-time.Hour)
	return c
}
