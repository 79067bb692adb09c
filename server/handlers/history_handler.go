package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SergioFerreira2020/GestorLotes/server/services"
)

// HistoryHandler exposes the delivery log.
type HistoryHandler struct {
	history *services.HistoryService
}

// NewHistoryHandler creates the history handler.
func NewHistoryHandler(history *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// HandleList returns the delivery log, newest first.
// @Summary Histórico de entregas
// @Tags histórico
// @Produce json
// @Success 200 {array} services.HistoryRecord
// @Failure 500 {object} ErrorResponse
// @Router /api/history [get]
func (h *HistoryHandler) HandleList(c *gin.Context) {
	records, err := h.history.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, records)
}
