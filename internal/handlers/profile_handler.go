package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Me handles GET /api/me
// Returns the identity asserted by the caller's token. Requires the
// JWT middleware to have populated the context.
func Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User identity not found in token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       userID,
		"username": c.GetString("username"),
	})
}
