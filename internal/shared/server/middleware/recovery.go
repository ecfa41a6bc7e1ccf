package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"stonkie-backend/internal/shared/server/respond"
	"stonkie-backend/internal/shared/telemetry"
)

// Recovery recovers from panics and returns a standardized error response.
// The stack is logged, never written to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				telemetry.Error("panic", map[string]any{
					"request_id": RequestIDFromContext(c),
					"error":      rec,
					"stack":      string(debug.Stack()),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
				})
				respond.Error(c, http.StatusInternalServerError, "internal_error", "Something went wrong. Please try again later.", nil)
				c.Abort()
			}
		}()
		c.Next()
	}
}
