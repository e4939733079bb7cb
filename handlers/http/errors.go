package httpHandler

import (
	"errors"
	"net/http"

	"agroclima-server/entities"

	"github.com/gin-gonic/gin"
)

// respondError maps a failure kind to its HTTP status. Anything unmapped is
// treated as a storage failure.
func respondError(c *gin.Context, err error) {
	var v *entities.ValidationError
	if errors.As(err, &v) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": v.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, entities.ErrMissingCredential):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Station credential missing"})
	case errors.Is(err, entities.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, entities.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, entities.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure"})
	}
}
