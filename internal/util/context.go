package util

import (
	"github.com/KlienGumapac/freedomewall/internal/errors"
	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user id
const UserIDKey = "user_id"

// GetUserIDFromContext extracts the user ID from the Gin context.
// Returns the user ID and true if found, or empty string and false if not authenticated.
// If the user is not authenticated, it automatically responds with 401 Unauthorized.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := ViewerID(c)
	if !ok {
		RespondUnauthorized(c, errors.MsgNoToken)
		return "", false
	}
	return userID, true
}

// ViewerID returns the user ID set by optional auth without writing a response
func ViewerID(c *gin.Context) (string, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
