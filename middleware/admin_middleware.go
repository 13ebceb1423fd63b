package middleware

import (
	"net/http"

	"github.com/baytrack/baytrack/models"
	"github.com/gin-gonic/gin"
)

// AdminMiddleware creates a middleware that ensures the user has admin role
// This middleware should be used after AuthMiddleware
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get role from context (set by AuthMiddleware)
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		// Check if role is admin
		if roleStr, ok := role.(string); !ok || roleStr != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Admin privileges required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// EditorMiddleware creates a middleware that ensures the user can modify
// schedule data (editor or admin role)
// This middleware should be used after AuthMiddleware
func EditorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if !ok || !models.Role(roleStr).CanEdit() {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Editor privileges required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
