package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/SergioFerreira2020/GestorLotes/server/errors"
	"github.com/SergioFerreira2020/GestorLotes/server/services"
)

// LotesHandler exposes the lot lifecycle over HTTP.
type LotesHandler struct {
	lots *services.LoteService
}

// NewLotesHandler creates the lot handler.
func NewLotesHandler(lots *services.LoteService) *LotesHandler {
	return &LotesHandler{lots: lots}
}

// FieldUpdateRequest carries the new value for a lot field edit.
type FieldUpdateRequest struct {
	Value string `json:"value"`
}

// AssignRequest names the client a lot is reserved for.
type AssignRequest struct {
	ClientID string `json:"clientId" binding:"required"`
}

// HandleList lists every lot.
// @Summary Listar lotes
// @Description Devolve todos os lotes numerados, incluindo os vazios. O filtro opcional restringe a lotes livres ou atribuídos.
// @Tags lotes
// @Produce json
// @Param filter query string false "Filtro: free ou assigned"
// @Success 200 {array} services.Lot
// @Failure 500 {object} ErrorResponse
// @Router /api/lotes [get]
func (h *LotesHandler) HandleList(c *gin.Context) {
	lots, err := h.lots.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	switch filter := c.Query("filter"); filter {
	case "":
		// no filter
	case "free":
		// Free lots hold a description and are not reserved yet; the empty
		// shells of unstored numbers do not count.
		filtered := lots[:0]
		for _, lot := range lots {
			if lot.Description != "" && lot.AssignedTo == "" {
				filtered = append(filtered, lot)
			}
		}
		lots = filtered
	case "assigned":
		filtered := lots[:0]
		for _, lot := range lots {
			if lot.AssignedTo != "" {
				filtered = append(filtered, lot)
			}
		}
		lots = filtered
	default:
		SendJSONError(c, http.StatusBadRequest, "filtro inválido: use free ou assigned")
		return
	}

	SendJSONResponse(c, http.StatusOK, lots)
}

// HandleGet returns one lot.
// @Summary Consultar lote
// @Tags lotes
// @Produce json
// @Param id path string true "Número do lote"
// @Success 200 {object} services.Lot
// @Failure 400 {object} ErrorResponse
// @Router /api/lotes/{id} [get]
func (h *LotesHandler) HandleGet(c *gin.Context) {
	lot, err := h.lots.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, lot)
}

// HandleUpdateDescription edits the description of a lot and reconciles the
// stock ledger.
// @Summary Editar descrição do lote
// @Description Atualiza a descrição e ajusta o stock agregado conforme os atributos extraídos.
// @Tags lotes
// @Accept json
// @Produce json
// @Param id path string true "Número do lote"
// @Param request body FieldUpdateRequest true "Nova descrição"
// @Success 200 {object} services.Lot
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/lotes/{id}/description [put]
func (h *LotesHandler) HandleUpdateDescription(c *gin.Context) {
	h.handleUpdateField(c, services.FieldDescription)
}

// HandleUpdateTrade edits the trade field of a lot.
// @Summary Editar troca do lote
// @Description Atualiza o campo de troca; não tem efeito no stock.
// @Tags lotes
// @Accept json
// @Produce json
// @Param id path string true "Número do lote"
// @Param request body FieldUpdateRequest true "Nova troca"
// @Success 200 {object} services.Lot
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/lotes/{id}/trade [put]
func (h *LotesHandler) HandleUpdateTrade(c *gin.Context) {
	h.handleUpdateField(c, services.FieldTrade)
}

func (h *LotesHandler) handleUpdateField(c *gin.Context, field string) {
	var req FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("corpo do pedido inválido", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	lot, err := h.lots.UpdateField(c.Request.Context(), c.Param("id"), field, req.Value)
	if err != nil {
		HandleError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, lot)
}

// HandleAssign reserves a lot for a client.
// @Summary Atribuir lote a cliente
// @Tags lotes
// @Accept json
// @Produce json
// @Param id path string true "Número do lote"
// @Param request body AssignRequest true "Cliente"
// @Success 200 {object} services.Lot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/lotes/{id}/assign [post]
func (h *LotesHandler) HandleAssign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("corpo do pedido inválido: clientId em falta", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	lot, err := h.lots.Assign(c.Request.Context(), c.Param("id"), req.ClientID)
	if err != nil {
		HandleError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, lot)
}

// HandleDeliver delivers an assigned lot.
// @Summary Entregar lote
// @Description Regista a entrega no histórico, desconta o stock e liberta o número do lote.
// @Tags lotes
// @Produce json
// @Param id path string true "Número do lote"
// @Success 200 {object} services.HistoryRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/lotes/{id}/deliver [post]
func (h *LotesHandler) HandleDeliver(c *gin.Context) {
	record, err := h.lots.Deliver(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, record)
}

// HandlePending lists the lots assigned and awaiting delivery.
// @Summary Lotes por entregar
// @Tags lotes
// @Produce json
// @Success 200 {array} services.Lot
// @Failure 500 {object} ErrorResponse
// @Router /api/lotes/pending [get]
func (h *LotesHandler) HandlePending(c *gin.Context) {
	pending, err := h.lots.Pending(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, pending)
}
