package middleware

import (
	"github.com/gin-gonic/gin"

	"chitragupta-dashboard/pkg/logger"
)

const currentLocationKey = "current_location"

// RouteContext publishes the request path as the current location for the
// shell. The path is stored verbatim; highlighting compares it exactly.
func RouteContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		location := c.Request.URL.Path
		c.Set(currentLocationKey, location)
		ctx := logger.ContextWithFields(c.Request.Context(), map[string]interface{}{"location": location})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CurrentLocation returns the location published by RouteContext, or "" when
// the middleware did not run. An empty location matches no navigation entry.
func CurrentLocation(c *gin.Context) string {
	return c.GetString(currentLocationKey)
}
