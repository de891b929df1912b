package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// adminIDKey is the key used to store the authenticated admin's ID in the request context.
const adminIDKey = contextKey("adminID")

// GetAdminIDFromContext retrieves the authenticated admin ID set by AuthMiddleware.
// It returns the ID and a boolean indicating if it was found.
func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	return adminIDFromCtx(c.Request.Context())
}

func adminIDFromCtx(ctx context.Context) (string, bool) {
	adminID, ok := ctx.Value(adminIDKey).(string)
	if !ok || adminID == "" {
		return "", false
	}
	return adminID, true
}
