package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mariafernandahr/pharmacy-api/store"
	"github.com/mariafernandahr/pharmacy-api/web"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		account, err := store.GetAccountByUsername(db, req.Username)
		if err != nil || subtle.ConstantTimeCompare([]byte(account.Password), []byte(req.Password)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		expiresAt := time.Now().Add(tokenTTL)
		token, err := issueAccountToken(account.ClientID, account.Username, expiresAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":      token,
			"client_id":  account.ClientID,
			"expires_at": expiresAt,
		})
	}
}

// GET /auth/me — requires middleware.ValidateToken.
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, ok := clientIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}
		account, err := store.GetAccountByClientID(db, clientID)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, account)
	}
}

func issueAccountToken(clientID uint, username string, expiresAt time.Time) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	claims := jwt.MapClaims{
		"client_id": clientID,
		"username":  username,
		"jti":       uuid.NewString(),
		"exp":       expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func clientIDFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get("client_id")
	if !exists {
		return 0, false
	}
	// MapClaims decode numbers as float64.
	id, ok := v.(float64)
	if !ok || id < 1 {
		return 0, false
	}
	return uint(id), true
}
