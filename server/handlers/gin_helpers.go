package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/SergioFerreira2020/GestorLotes/server/middleware"
)

// SendJSONResponse writes a JSON response.
func SendJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendJSONError writes a plain JSON error and logs it.
func SendJSONError(c *gin.Context, statusCode int, message string) {
	reqID := middleware.GetRequestIDFromGin(c)

	slog.Error("request rejected",
		"error", message,
		"status_code", statusCode,
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	c.JSON(statusCode, gin.H{
		"error":   true,
		"message": message,
	})
}

// HandleError maps a service error onto its JSON response.
func HandleError(c *gin.Context, err error) {
	middleware.HandleGinError(c, err)
}

// ErrorResponse documents the error body for swagger.
type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id,omitempty"`
}
