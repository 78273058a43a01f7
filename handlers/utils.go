package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"axis-server/config"
	"axis-server/database"
	"axis-server/models"
)

// Store is the persistence port every handler goes through. Set once at
// startup via InitializeHandlers.
var Store database.Store

// InitializeHandlers wires the storage port into the handler package.
func InitializeHandlers(store database.Store) {
	Store = store
}

// Claims represents the JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	if config.AppConfig != nil {
		return []byte(config.AppConfig.JWTSecret)
	}
	return []byte("your-secret-key-change-in-production")
}

// generateJWT issues a signed token with 15 days expiration.
func generateJWT(userID, email, role string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// generateUUID generates a new UUID
func generateUUID() string {
	return uuid.New().String()
}

// currentUser rebuilds the requesting account from the claims the auth
// middleware stored on the context.
func currentUser(c *gin.Context) (models.UserAccount, bool) {
	userID, ok := c.Get("user_id")
	if !ok {
		return models.UserAccount{}, false
	}
	email, _ := c.Get("user_email")
	role, _ := c.Get("user_role")

	return models.UserAccount{
		ID:    userID.(string),
		Email: email.(string),
		Role:  role.(string),
	}, true
}
