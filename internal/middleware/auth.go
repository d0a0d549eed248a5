// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"myflix-api/pkg/auth"
	"myflix-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing user data
const (
	UsernameKey = "username"
)

// Auth returns a middleware that validates JWT bearer tokens.
func Auth(jwtManager auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		// Keep the verified identity reachable via c.GetString(UsernameKey)
		// for request logging and any future owner-scoped route.
		c.Set(UsernameKey, claims.Username)

		c.Next()
	}
}
