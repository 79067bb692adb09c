package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/SergioFerreira2020/GestorLotes/server/errors"
	"github.com/SergioFerreira2020/GestorLotes/server/services"
)

// ClientsHandler exposes the beneficiary registry over HTTP.
type ClientsHandler struct {
	clients *services.ClientService
	lots    *services.LoteService
}

// NewClientsHandler creates the clients handler.
func NewClientsHandler(clients *services.ClientService, lots *services.LoteService) *ClientsHandler {
	return &ClientsHandler{clients: clients, lots: lots}
}

// HandleList lists all clients.
// @Summary Listar clientes
// @Tags clientes
// @Produce json
// @Success 200 {array} services.Client
// @Failure 500 {object} ErrorResponse
// @Router /api/clients [get]
func (h *ClientsHandler) HandleList(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, clients)
}

// HandleGet returns one client.
// @Summary Consultar cliente
// @Tags clientes
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} services.Client
// @Failure 404 {object} ErrorResponse
// @Router /api/clients/{id} [get]
func (h *ClientsHandler) HandleGet(c *gin.Context) {
	client, err := h.clients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, client)
}

// HandleCreate registers a client.
// @Summary Criar cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param request body services.ClientInput true "Dados do cliente"
// @Success 201 {object} services.Client
// @Failure 400 {object} ErrorResponse
// @Router /api/clients [post]
func (h *ClientsHandler) HandleCreate(c *gin.Context) {
	var input services.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		appErr := apperrors.NewValidationError("corpo do pedido inválido", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	client, err := h.clients.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusCreated, client)
}

// HandleUpdate rewrites a client's details.
// @Summary Atualizar cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Param request body services.ClientInput true "Dados do cliente"
// @Success 200 {object} services.Client
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/clients/{id} [put]
func (h *ClientsHandler) HandleUpdate(c *gin.Context) {
	var input services.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		appErr := apperrors.NewValidationError("corpo do pedido inválido", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	client, err := h.clients.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, client)
}

// HandleDelete removes a client without assigned lots.
// @Summary Apagar cliente
// @Description Recusa enquanto o cliente tiver lotes atribuídos por entregar.
// @Tags clientes
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 204 "Sem conteúdo"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/clients/{id} [delete]
func (h *ClientsHandler) HandleDelete(c *gin.Context) {
	if err := h.clients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandlePending lists the client's lots awaiting delivery, so the operator
// can confirm what a deliver-all covers.
// @Summary Lotes por entregar de um cliente
// @Tags clientes
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {array} services.Lot
// @Failure 404 {object} ErrorResponse
// @Router /api/clients/{id}/pending [get]
func (h *ClientsHandler) HandlePending(c *gin.Context) {
	clientID := c.Param("id")
	if _, err := h.clients.Get(c.Request.Context(), clientID); err != nil {
		HandleError(c, err)
		return
	}

	pending, err := h.lots.PendingForClient(c.Request.Context(), clientID)
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, pending)
}

// HandleDeliverAll delivers every lot assigned to the client.
// @Summary Entregar todos os lotes do cliente
// @Description Entrega lote a lote; uma falha não reverte as entregas anteriores.
// @Tags clientes
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {array} services.HistoryRecord
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/clients/{id}/deliver-all [post]
func (h *ClientsHandler) HandleDeliverAll(c *gin.Context) {
	records, err := h.lots.DeliverAll(c.Request.Context(), c.Param("id"))
	if err != nil {
		// Partial deliveries still happened; report them alongside the error.
		if len(records) > 0 {
			c.JSON(http.StatusMultiStatus, gin.H{
				"delivered": records,
				"error":     true,
				"message":   "algumas entregas falharam",
			})
			return
		}
		HandleError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, records)
}
