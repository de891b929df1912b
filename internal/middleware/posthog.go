package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/storefront_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VisitorCookie holds the anonymous ID events are attributed to.
const VisitorCookie = "visitor_id"

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks storefront
// events with PostHog. Events are attributed to the admin when authenticated,
// otherwise to an anonymous visitor ID kept in a cookie.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		distinctID := visitorID(c, secureCookies)

		c.Next()

		// Skip if there was an error processing the request
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		if adminID, ok := GetAdminIDFromContext(c); ok {
			distinctID = adminID
		}

		// e.g. "/api/v1/compare/:productID" -> "api_v1_compare_:productID"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(distinctID, eventName, props)
	}
}

func visitorID(c *gin.Context, secure bool) string {
	if id, err := c.Cookie(VisitorCookie); err == nil {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(VisitorCookie, id, 365*24*60*60, "/", "", secure, true)
	return id
}
