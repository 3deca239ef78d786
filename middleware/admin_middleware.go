package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/HamzaDalhoumi/plant-shop/models"
	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the admin write path with a static bearer token
// (ADMIN_API_TOKEN). The storefront is public; the admin surface is only
// reachable by the ops tooling that holds the token.
func AdminAuthMiddleware() gin.HandlerFunc {
	expected := os.Getenv("ADMIN_API_TOKEN")
	if expected == "" {
		log.Println("⚠️ ADMIN_API_TOKEN not set, admin routes will reject all requests")
	}

	return func(c *gin.Context) {
		if expected == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - admin access not configured"))
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token format"))
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(expected)) != 1 {
			log.Println("[auth] rejected admin request with invalid token")
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		c.Next()
	}
}
