package middleware

import (
	"errors"   // Error classification
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"digital_wallet/internal/auth" // Token verification and user lookup

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

const userKey = "currentUser" // gin context key holding *auth.User

// JWTAuthMiddleware validates bearer tokens and stores the resolved user in the context
func JWTAuthMiddleware(a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		scheme, tokenStr, ok := strings.Cut(authHeader, " ")
		// Check if the Authorization header is present and properly formatted
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenStr) == "" {
			Unauthorized(c, "Not authenticated")
			return
		}
		user, err := a.Authenticate(c.Request.Context(), strings.TrimSpace(tokenStr))
		switch {
		case err == nil:
		case errors.Is(err, auth.ErrInvalidToken):
			Unauthorized(c, "Could not validate credentials")
			return
		case errors.Is(err, auth.ErrInactiveUser):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Inactive user"})
			return
		default:
			logrus.WithFields(logrus.Fields{
				"request_id": RequestIDFrom(c),
				"error":      err.Error(),
			}).Error("Token check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.Set(userKey, user) // Store user in context
		c.Next()             // Proceed to the next handler
	}
}

// Unauthorized aborts with 401 and a bearer challenge
func Unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// CurrentUser returns the user stored by JWTAuthMiddleware
func CurrentUser(c *gin.Context) (*auth.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*auth.User)
	return u, ok
}
