package api

import (
	"errors"   // Error classification
	"net/http" // HTTP status codes
	"time"     // Token lifetime

	"digital_wallet/internal/auth"       // Credential checks and token issuance
	"digital_wallet/internal/metrics"    // Login counters
	"digital_wallet/internal/middleware" // Current user and 401 helper
	"digital_wallet/internal/schema"     // Validation details

	"github.com/gin-gonic/gin"         // Gin web framework
	"github.com/gin-gonic/gin/binding" // Form binding
	"github.com/sirupsen/logrus"       // Logging library
)

// LoginRequest is the form-encoded body of POST /token
type LoginRequest struct {
	Username string `form:"username" binding:"required"` // Username must be provided
	Password string `form:"password" binding:"required"` // Password must be provided
}

// TokenResponse is returned on successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"` // Signed JWT
	TokenType   string `json:"token_type"`   // Always "bearer"
	ExpiresIn   int64  `json:"expires_in"`   // Seconds until expiry
}

// LoginHandler checks the form credentials and returns a bearer token
func LoginHandler(a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindWith(&req, binding.Form); err != nil {
			if details, ok := schema.ValidationDetails(err); ok {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "details": details})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		token, exp, err := a.Login(c.Request.Context(), req.Username, req.Password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			metrics.LoginAttempts.WithLabelValues("failure").Inc()
			logrus.WithFields(logrus.Fields{
				"request_id": middleware.RequestIDFrom(c),
				"username":   req.Username,
			}).Warn("Login rejected")
			middleware.Unauthorized(c, "Incorrect username or password")
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"request_id": middleware.RequestIDFrom(c),
				"error":      err.Error(),
			}).Error("Login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		metrics.LoginAttempts.WithLabelValues("success").Inc()
		c.JSON(http.StatusOK, TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   int64(time.Until(exp).Round(time.Second) / time.Second),
		})
	}
}

// MeHandler returns the authenticated user's profile
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			middleware.Unauthorized(c, "Not authenticated")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
