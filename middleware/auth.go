package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"agroclima-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// ProducerIDKey is where the authenticated producer id lands in gin context.
const ProducerIDKey = "producerID"

// RequireProducer validates the Bearer token and stores the producer id for
// downstream handlers.
func RequireProducer(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authorization, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		claims := &usecases.Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid || claims.ProducerID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ProducerIDKey, claims.ProducerID)
		c.Next()
	}
}

// ProducerID reads the authenticated producer id set by RequireProducer.
func ProducerID(c *gin.Context) string {
	return c.GetString(ProducerIDKey)
}
