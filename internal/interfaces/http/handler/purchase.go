package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	purchasingapp "github.com/purchase-system/backend/internal/application/purchasing"
	"github.com/purchase-system/backend/internal/domain/bom"
	"github.com/purchase-system/backend/internal/domain/purchasing"
	"github.com/purchase-system/backend/internal/interfaces/http/dto"
)

// PurchaseHandler creates purchase orders and tracks their progress.
type PurchaseHandler struct {
	BaseHandler
	purchaseService *purchasingapp.PurchaseService
}

func NewPurchaseHandler(purchaseService *purchasingapp.PurchaseService, logger *zap.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		BaseHandler:     NewBaseHandler(logger),
		purchaseService: purchaseService,
	}
}

// RegisterRoutes registers purchase routes on the given router group
func (h *PurchaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.Create)
		purchases.GET("/project/:no_project", h.ListByProject)
		purchases.GET("/tracking/:no_project", h.Tracking)
		purchases.PUT("/lines/status", h.UpdateLineStatus)
	}
}

type purchaseItemRequest struct {
	NoPart    string `json:"no_part" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	PriceUnit string `json:"price_unit" binding:"required"`
}

type createPurchaseRequest struct {
	NoProject     string                `json:"no_project" binding:"required"`
	VendorName    string                `json:"vendor_name" binding:"required"`
	Network       string                `json:"network" binding:"required"`
	Currency      string                `json:"currency" binding:"omitempty,max=10"`
	PO            *string               `json:"po" binding:"omitempty,max=100"`
	Shopping      *string               `json:"shopping" binding:"omitempty,max=100"`
	TimeDelivered string                `json:"time_delivered" binding:"omitempty"`
	Items         []purchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// Create records a multi-line purchase in one transaction: the network
// balance is verified and deducted, the purchase inserted and the
// covered BOM lines flipped to PO.
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req createPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "no_project, vendor_name, network and at least one item are required")
		return
	}

	items := make([]purchasing.PurchaseItem, 0, len(req.Items))
	for _, it := range req.Items {
		price, err := decimal.NewFromString(it.PriceUnit)
		if err != nil || price.IsNegative() {
			h.BadRequest(c, "price_unit must be a non-negative decimal")
			return
		}
		items = append(items, purchasing.PurchaseItem{
			NoPart:    it.NoPart,
			Quantity:  it.Quantity,
			PriceUnit: price,
		})
	}

	var timeDelivered *time.Time
	if req.TimeDelivered != "" {
		parsed, err := time.Parse("2006-01-02", req.TimeDelivered)
		if err != nil {
			h.BadRequest(c, "time_delivered must be a YYYY-MM-DD date")
			return
		}
		timeDelivered = &parsed
	}

	purchase, err := h.purchaseService.Create(c.Request.Context(), purchasingapp.CreatePurchaseRequest{
		NoProject:     req.NoProject,
		VendorName:    req.VendorName,
		Network:       req.Network,
		Currency:      req.Currency,
		PO:            req.PO,
		Shopping:      req.Shopping,
		TimeDelivered: timeDelivered,
		Items:         items,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, purchase)
}

// ListByProject returns a project's purchase lines joined with vendor
// and network data, most recent order first.
func (h *PurchaseHandler) ListByProject(c *gin.Context) {
	lines, err := h.purchaseService.ListByProject(c.Request.Context(), c.Param("no_project"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lines)
}

// Tracking summarizes a project's BOM line statuses and spend
func (h *PurchaseHandler) Tracking(c *gin.Context) {
	summary, err := h.purchaseService.Tracking(c.Request.Context(), c.Param("no_project"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

type updateLineStatusRequest struct {
	NoProject  string  `json:"no_project" binding:"required"`
	NoPart     string  `json:"no_part" binding:"required"`
	Status     string  `json:"status" binding:"required,line_status"`
	PurchaseID string  `json:"purchase_id" binding:"omitempty,uuid"`
	PO         *string `json:"po" binding:"omitempty,max=100"`
	Shopping   *string `json:"shopping" binding:"omitempty,max=100"`
}

// UpdateLineStatus moves one BOM line to a new workflow status. When a
// purchase_id comes along, the po and shopping references land on that
// purchase in the same call.
func (h *PurchaseHandler) UpdateLineStatus(c *gin.Context) {
	var req updateLineStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeValidation), dto.ErrCodeValidation,
			"no_project, no_part and a known workflow status are required")
		return
	}

	upd := purchasingapp.LineStatusUpdate{
		NoProject: req.NoProject,
		NoPart:    req.NoPart,
		Status:    bom.LineStatus(req.Status),
		PO:        req.PO,
		Shopping:  req.Shopping,
	}
	if req.PurchaseID != "" {
		id, err := uuid.Parse(req.PurchaseID)
		if err != nil {
			h.BadRequest(c, "purchase_id must be a valid UUID")
			return
		}
		upd.PurchaseID = &id
	}

	if err := h.purchaseService.UpdateLineStatus(c.Request.Context(), upd); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
