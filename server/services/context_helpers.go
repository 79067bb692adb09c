package services

import (
	"context"

	apperrors "github.com/SergioFerreira2020/GestorLotes/server/errors"
	"github.com/SergioFerreira2020/GestorLotes/server/middleware"
)

// ValidateContext rejects nil or already-cancelled contexts so a service
// never starts a write it cannot finish.
func ValidateContext(ctx context.Context) error {
	if ctx == nil {
		return apperrors.NewValidationError("contexto inválido", nil)
	}

	select {
	case <-ctx.Done():
		return apperrors.NewServiceUnavailableError("pedido cancelado", ctx.Err())
	default:
		return nil
	}
}

// requestIDFrom pulls the request id out of the context for log correlation.
func requestIDFrom(ctx context.Context) string {
	return middleware.GetRequestID(ctx)
}
