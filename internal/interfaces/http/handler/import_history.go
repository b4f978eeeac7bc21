package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	importapp "github.com/purchase-system/backend/internal/application/import"
)

// ImportHistoryHandler serves past BOM import runs.
type ImportHistoryHandler struct {
	BaseHandler
	historyService *importapp.ImportHistoryService
}

func NewImportHistoryHandler(historyService *importapp.ImportHistoryService, logger *zap.Logger) *ImportHistoryHandler {
	return &ImportHistoryHandler{
		BaseHandler:    NewBaseHandler(logger),
		historyService: historyService,
	}
}

// RegisterRoutes registers import history routes on the given router group
func (h *ImportHistoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	history := rg.Group("/import/history")
	{
		history.GET("/:id", h.Get)
		history.GET("/project/:no_project", h.ListByProject)
	}
}

// Get returns one import run by its id
func (h *ImportHistoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid import history id")
		return
	}

	record, err := h.historyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// ListByProject returns a project's import runs, most recent first
func (h *ImportHistoryHandler) ListByProject(c *gin.Context) {
	records, err := h.historyService.ListByProject(c.Request.Context(), c.Param("no_project"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}
