package middleware

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDKey is the context key for the request id.
type RequestIDKey struct{}

// GetRequestID extracts the request id from a context.
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	reqID, ok := ctx.Value(RequestIDKey{}).(string)
	if !ok {
		return ""
	}
	return reqID
}

// SetRequestID stores the request id in a context.
func SetRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, RequestIDKey{}, reqID)
}

// NewRequestID generates a fresh request id.
func NewRequestID() string {
	return uuid.New().String()
}
