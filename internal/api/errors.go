package api

import (
	"errors"   // Error classification
	"net/http" // HTTP status codes
	"strconv"  // Path id parsing

	"digital_wallet/internal/middleware" // Request ids for log lines
	"digital_wallet/internal/repository" // Repository sentinel errors
	"digital_wallet/internal/schema"     // Validation details

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// respondError maps repository errors onto HTTP responses; title names the entity in messages
func respondError(c *gin.Context, title string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": title + " not found"})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Referenced record is missing or still in use"})
	default:
		// Log the error with context
		logrus.WithFields(logrus.Fields{
			"request_id": middleware.RequestIDFrom(c),
			"entity":     title,
			"error":      err.Error(),
		}).Error("Storage operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// bindJSON decodes the body into obj; it writes 422 for constraint failures and 400 for malformed bodies
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}
	if details, ok := schema.ValidationDetails(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "details": details})
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
	return false
}

// pathID parses the :id path parameter; non-integers are a validation failure
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation failed",
			"details": []schema.FieldError{{Field: "id", Message: "must be a non-negative integer"}},
		})
		return 0, false
	}
	return uint(id), true
}
