package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/SergioFerreira2020/GestorLotes/server/errors"
)

// Global error metrics, fed by HandleGinError and read by the diagnostics
// endpoint.
var globalErrorMetrics *apperrors.ErrorMetricsCollector

// InitErrorMetrics initializes the global error metrics collector.
func InitErrorMetrics() {
	globalErrorMetrics = apperrors.NewErrorMetricsCollector()
}

// GetErrorMetrics returns the global error metrics collector.
func GetErrorMetrics() *apperrors.ErrorMetricsCollector {
	if globalErrorMetrics == nil {
		globalErrorMetrics = apperrors.NewErrorMetricsCollector()
	}
	return globalErrorMetrics
}

// HTTPError is implemented by errors that know their HTTP status. Declared
// here rather than importing the concrete type to avoid an import cycle.
type HTTPError interface {
	error
	StatusCode() int
	UserMessage() string
	GetContext() string
	Unwrap() error
}

// ErrorResponse is the JSON error body every endpoint returns.
type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleGinError maps an error to its JSON response. AppError-style errors
// keep their status and user message; anything else is a 500 with a generic
// body and full details in the logs.
func HandleGinError(c *gin.Context, err error) {
	reqID := GetRequestIDFromGin(c)
	endpoint := c.FullPath()

	var statusCode int
	var message string
	var appErr *apperrors.AppError

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.StatusCode()
		message = httpErr.UserMessage()

		if errors.As(err, &appErr) {
			GetErrorMetrics().RecordError(appErr, endpoint, reqID)
		}

		slog.Error("request failed",
			"error", httpErr.Unwrap(),
			"user_message", httpErr.UserMessage(),
			"context", httpErr.GetContext(),
			"status_code", statusCode,
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	} else {
		statusCode = http.StatusInternalServerError
		message = "Erro interno do servidor"

		appErr = apperrors.NewInternalError("unhandled error", err)
		GetErrorMetrics().RecordError(appErr, endpoint, reqID)

		slog.Error("request failed",
			"error", err,
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}

	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error:     message,
		Timestamp: time.Now().Format(time.RFC3339),
		RequestID: reqID,
	})
}

// SendJSONError writes a plain JSON error without going through the AppError
// taxonomy. Used for transport-level rejections.
func SendJSONError(c *gin.Context, message string, statusCode int) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error:     message,
		Timestamp: time.Now().Format(time.RFC3339),
		RequestID: GetRequestIDFromGin(c),
	})
}
