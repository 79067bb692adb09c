package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SergioFerreira2020/GestorLotes/server/middleware"
	"github.com/SergioFerreira2020/GestorLotes/stock"
)

// HealthHandler reports liveness and basic diagnostics.
type HealthHandler struct {
	ledger  *stock.Ledger
	pinger  interface{ Ping() error }
	started time.Time
}

// NewHealthHandler creates the health handler. pinger may be nil when the
// store has no connection to probe.
func NewHealthHandler(ledger *stock.Ledger, pinger interface{ Ping() error }) *HealthHandler {
	return &HealthHandler{
		ledger:  ledger,
		pinger:  pinger,
		started: time.Now(),
	}
}

// HandleHealth reports service health.
// @Summary Estado do serviço
// @Tags sistema
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	status := http.StatusOK
	label := "ok"
	dbStatus := "ok"

	if h.pinger != nil {
		if err := h.pinger.Ping(); err != nil {
			status = http.StatusServiceUnavailable
			label = "degraded"
			dbStatus = "unreachable"
		}
	}

	c.JSON(status, gin.H{
		"status":         label,
		"database":       dbStatus,
		"stock_drift":    h.ledger.DriftCount(),
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	})
}

// HandleErrorMetrics exposes the collected error metrics.
// @Summary Métricas de erros
// @Tags sistema
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/diagnostics/errors [get]
func (h *HealthHandler) HandleErrorMetrics(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, middleware.GetErrorMetrics().GetMetrics())
}
