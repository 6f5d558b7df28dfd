// utils/auth.go
package utils

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Name of the cookie carrying the session token.
const TokenCookie = "token"

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func tokenExpiryHours() int {
	expiryHours := 24 // default
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}
	return expiryHours
}

// Generate JWT token for the session cookie
func GenerateToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"exp": time.Now().Add(time.Duration(tokenExpiryHours()) * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	return token.SignedString([]byte(secret))
}

// SetTokenCookie attaches the session token to the response.
func SetTokenCookie(c *gin.Context, token string) {
	c.SetCookie(TokenCookie, token, tokenExpiryHours()*3600, "/", "", false, true)
}

// ClearTokenCookie expires the session token.
func ClearTokenCookie(c *gin.Context) {
	c.SetCookie(TokenCookie, "", -1, "/", "", false, true)
}

// Auth middleware for browser sessions. Unauthenticated requests are
// redirected to the login page rather than answered with a bare 401.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookie)
		if err != nil || tokenString == "" {
			redirectToLogin(c)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			redirectToLogin(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			redirectToLogin(c)
			return
		}
		sub, _ := claims["sub"].(string)
		id, err := strconv.ParseUint(sub, 10, 64)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set("userId", uint(id))
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	Flash(c, "Please log in to access this page.")
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

// CurrentUserID returns the authenticated user's id placed in the context by
// AuthMiddleware.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userId")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
