package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SergioFerreira2020/GestorLotes/extractors"
	apperrors "github.com/SergioFerreira2020/GestorLotes/server/errors"
	"github.com/SergioFerreira2020/GestorLotes/server/services"
	"github.com/SergioFerreira2020/GestorLotes/stock"
)

// StockHandler exposes the low-stock report, its XLSX export and the
// attribute-extraction preview.
type StockHandler struct {
	notifications *services.NotificationService
	exporter      *stock.Exporter
	extractor     *extractors.Extractor
}

// NewStockHandler creates the stock handler.
func NewStockHandler(notifications *services.NotificationService, exporter *stock.Exporter, extractor *extractors.Extractor) *StockHandler {
	return &StockHandler{
		notifications: notifications,
		exporter:      exporter,
		extractor:     extractor,
	}
}

// LowStockResponse is the low-stock report payload.
type LowStockResponse struct {
	Threshold int              `json:"threshold"`
	Entries   []stock.LowEntry `json:"entries"`
}

// ExtractResponse is the attribute-extraction preview payload.
type ExtractResponse struct {
	Text       string                 `json:"text"`
	Matched    bool                   `json:"matched"`
	Attributes *extractors.Attributes `json:"attributes,omitempty"`
}

// HandleLowStock returns the entries at or below the configured limit.
// @Summary Stock baixo
// @Tags stock
// @Produce json
// @Success 200 {object} LowStockResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/stock/low [get]
func (h *StockHandler) HandleLowStock(c *gin.Context) {
	entries, err := h.notifications.LowStock(c.Request.Context())
	if err != nil {
		HandleError(c, apperrors.NewInternalError("failed to scan stock", err))
		return
	}

	SendJSONResponse(c, http.StatusOK, LowStockResponse{
		Threshold: h.notifications.Threshold(),
		Entries:   entries,
	})
}

// HandleLowStockExport streams the low-stock report as an XLSX workbook.
// @Summary Exportar stock baixo (XLSX)
// @Tags stock
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} ErrorResponse
// @Router /api/stock/low/export [get]
func (h *StockHandler) HandleLowStockExport(c *gin.Context) {
	entries, err := h.notifications.LowStock(c.Request.Context())
	if err != nil {
		HandleError(c, apperrors.NewInternalError("failed to scan stock", err))
		return
	}

	filename := fmt.Sprintf("stock-baixo-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := h.exporter.WriteLowStock(c.Writer, entries, h.notifications.Threshold()); err != nil {
		HandleError(c, apperrors.NewInternalError("failed to write workbook", err))
		return
	}
}

// HandleExtract previews the attribute extraction for a description.
// @Summary Pré-visualizar extração de atributos
// @Description Mostra o tamanho, género, faixa etária e categoria que uma descrição produziria.
// @Tags stock
// @Produce json
// @Param text query string true "Descrição a analisar"
// @Success 200 {object} ExtractResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/extract [get]
func (h *StockHandler) HandleExtract(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		SendJSONError(c, http.StatusBadRequest, "parâmetro text em falta")
		return
	}

	attrs := h.extractor.Extract(text)
	SendJSONResponse(c, http.StatusOK, ExtractResponse{
		Text:       text,
		Matched:    attrs != nil,
		Attributes: attrs,
	})
}
