package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the calling user's ID in the context.
const userIDKey = contextKey("userID")

// userIDHeader identifies the caller for audit purposes. The engine trusts
// the upstream gateway to have authenticated it.
const userIDHeader = "X-User-ID"

// systemUserID is recorded on audit fields when no caller identity is present.
const systemUserID = "system"

// UserIdentityMiddleware resolves the calling user's ID from the request and
// stores it in the request's context for audit attribution.
func UserIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			userID = systemUserID
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUserIDFromContext retrieves the calling user's ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}
