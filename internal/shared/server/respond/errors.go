package respond

import (
	"github.com/gin-gonic/gin"

	"resumelens-backend/internal/shared/telemetry"
)

// ErrorResponse is the single error body shape exposed by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a standardized error response. The code is logged, not exposed.
func Error(c *gin.Context, status int, code, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
