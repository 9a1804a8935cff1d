package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// RequireAuth validates the Bearer token and stores the caller's user ID
// in the request context.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
			return
		}

		userID, err := h.Tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the authenticated user's ID set by RequireAuth.
func currentUserID(c *gin.Context) uint {
	id, _ := c.Get(userIDKey)
	userID, _ := id.(uint)
	return userID
}
