package authController

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/tharshan2001/Ebee.lk/configs"
	"github.com/tharshan2001/Ebee.lk/middlewares"
	"github.com/tharshan2001/Ebee.lk/models"
	"github.com/tharshan2001/Ebee.lk/responses"
)

const (
	stateCookie = "oauthState"
	userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

func googleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     configs.EnvGoogleClientID(),
		ClientSecret: configs.EnvGoogleClientSecret(),
		RedirectURL:  configs.EnvGoogleCallbackURL(),
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint:     google.Endpoint,
	}
}

// GoogleLogin starts the OAuth redirect flow. The state parameter is
// pinned in a short-lived cookie and checked on the way back.
func GoogleLogin(c *fiber.Ctx) error {
	state := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: "Lax",
	})

	return c.Redirect(googleOAuthConfig().AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback completes the flow: exchanges the code, fetches the
// Google profile, finds or creates the user, then opens a session and
// redirects back to the storefront. Failures redirect to the login page.
func GoogleCallback(c *fiber.Ctx) error {
	loginURL := configs.EnvFrontendURL() + "/login"

	if c.Query("state") == "" || c.Query("state") != c.Cookies(stateCookie) {
		return c.Redirect(loginURL)
	}
	c.Cookie(middlewares.ExpiredCookie(stateCookie))

	code := c.Query("code")
	if code == "" {
		return c.Redirect(loginURL)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	conf := googleOAuthConfig()
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return c.Redirect(loginURL)
	}

	profile, err := fetchGoogleProfile(ctx, conf, token)
	if err != nil {
		return c.Redirect(loginURL)
	}

	user, err := findOrCreateGoogleUser(ctx, profile)
	if err != nil {
		return c.Redirect(loginURL)
	}

	sessionToken, err := middlewares.CreateToken(user.Id.Hex(), middlewares.NamespaceUser, middlewares.UserTokenTTL)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error generating token")
	}

	c.Cookie(middlewares.SessionCookie(middlewares.UserCookie, sessionToken, middlewares.UserTokenTTL))
	return c.Redirect(configs.EnvFrontendURL())
}

type googleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func fetchGoogleProfile(ctx context.Context, conf *oauth2.Config, token *oauth2.Token) (*googleProfile, error) {
	resp, err := conf.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func findOrCreateGoogleUser(ctx context.Context, profile *googleProfile) (*models.User, error) {
	var user models.User
	err := userCol().FindOne(ctx, bson.M{"googleId": profile.ID}).Decode(&user)

	if err == mongo.ErrNoDocuments {
		now := time.Now()
		user = models.User{
			Id:        primitive.NewObjectID(),
			GoogleID:  profile.ID,
			Name:      profile.Name,
			Email:     profile.Email,
			Avatar:    profile.Picture,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := userCol().InsertOne(ctx, user); err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	if user.Avatar != profile.Picture {
		update := bson.M{"$set": bson.M{"avatar": profile.Picture, "updatedAt": time.Now()}}
		if _, err := userCol().UpdateOne(ctx, bson.M{"_id": user.Id}, update); err != nil {
			return nil, err
		}
		user.Avatar = profile.Picture
	}
	return &user, nil
}
