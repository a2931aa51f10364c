package configs

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file if one is present. Real deployments set
// variables directly, so a missing file is not an error.
func LoadEnv() {
	_ = godotenv.Load()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func EnvMongoURI() string {
	return getEnv("MONGOURI", "mongodb://localhost:27017")
}

func EnvDBName() string {
	return getEnv("DB_NAME", "ebee")
}

func EnvPort() string {
	return getEnv("PORT", "8001")
}

func EnvJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func EnvFrontendURL() string {
	return getEnv("FRONTEND_URL", "http://localhost:6001")
}

func IsProduction() bool {
	return os.Getenv("NODE_ENV") == "production"
}

func GoogleAuthEnabled() bool {
	return os.Getenv("ENABLE_GOOGLE_AUTH") == "true"
}

func EnvGoogleClientID() string {
	return os.Getenv("GOOGLE_CLIENT_ID")
}

func EnvGoogleClientSecret() string {
	return os.Getenv("GOOGLE_CLIENT_SECRET")
}

func EnvGoogleCallbackURL() string {
	return os.Getenv("GOOGLE_CALLBACK_URL")
}

func EnvStripeSecretKey() string {
	return os.Getenv("STRIPE_SECRET_KEY")
}

func EnvCurrency() string {
	return getEnv("CURRENCY", "usd")
}

func EnvUploadDir() string {
	return getEnv("UPLOAD_DIR", "./uploads")
}

// CartRemoveAtZero selects what reducing a line item already at quantity
// one does: false keeps the floor-of-1 behavior, true deletes the item.
func CartRemoveAtZero() bool {
	return os.Getenv("CART_REMOVE_AT_ZERO") == "true"
}
