package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	inventoryapp "github.com/purchase-system/backend/internal/application/inventory"
)

// StockHandler records inbound and outbound stock movements.
type StockHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

func NewStockHandler(stockService *inventoryapp.StockService, logger *zap.Logger) *StockHandler {
	return &StockHandler{
		BaseHandler:  NewBaseHandler(logger),
		stockService: stockService,
	}
}

// RegisterRoutes registers stock routes on the given router group
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stock := rg.Group("/stock")
	{
		stock.GET("", h.Overview)
		stock.POST("/entries", h.RecordEntry)
		stock.POST("/outputs", h.RecordOutput)
		stock.GET("/movements/:no_part", h.Movements)
	}
}

type stockEntryRequest struct {
	NoPart    string `json:"no_part" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Rack      string `json:"rack"`
	DateEntry string `json:"date_entry"`
}

// RecordEntry registers inbound stock for a part
func (h *StockHandler) RecordEntry(c *gin.Context) {
	var req stockEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "no_part and a positive quantity are required")
		return
	}

	date, ok := h.parseDate(c, req.DateEntry)
	if !ok {
		return
	}

	entry, err := h.stockService.RecordEntry(c.Request.Context(), req.NoPart, req.Quantity, req.Rack, date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, entry)
}

type stockOutputRequest struct {
	NoPart      string `json:"no_part" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	Destination string `json:"destination"`
	DateOutput  string `json:"date_output"`
}

// RecordOutput registers outbound stock for a part. Shipping more than
// is available is rejected.
func (h *StockHandler) RecordOutput(c *gin.Context) {
	var req stockOutputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "no_part and a positive quantity are required")
		return
	}

	date, ok := h.parseDate(c, req.DateOutput)
	if !ok {
		return
	}

	output, err := h.stockService.RecordOutput(c.Request.Context(), req.NoPart, req.Quantity, req.Destination, date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, output)
}

// Overview returns per-part entered, shipped and available quantities
func (h *StockHandler) Overview(c *gin.Context) {
	overview, err := h.stockService.Overview(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, overview)
}

// Movements returns a part's entries and outputs, most recent first
func (h *StockHandler) Movements(c *gin.Context) {
	entries, outputs, err := h.stockService.Movements(c.Request.Context(), c.Param("no_part"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{
		"entries": entries,
		"outputs": outputs,
	})
}

// parseDate parses an optional YYYY-MM-DD field, defaulting to today.
func (h *StockHandler) parseDate(c *gin.Context, value string) (time.Time, bool) {
	if value == "" {
		return time.Now(), true
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		h.BadRequest(c, "date must be in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return date, true
}
