package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/purchase-system/backend/internal/application/catalog"
)

// PartHandler serves the parts catalog.
type PartHandler struct {
	BaseHandler
	partService *catalogapp.PartService
}

func NewPartHandler(partService *catalogapp.PartService, logger *zap.Logger) *PartHandler {
	return &PartHandler{
		BaseHandler: NewBaseHandler(logger),
		partService: partService,
	}
}

// RegisterRoutes registers part routes on the given router group
func (h *PartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	parts := rg.Group("/parts")
	{
		parts.GET("", h.List)
		parts.GET("/search", h.Search)
		parts.GET("/types", h.Types)
		parts.GET("/types/:type", h.ListByType)
		parts.GET("/:no_part", h.Get)
	}
}

// List returns parts with pagination. The type, brand and unit query
// parameters narrow the result.
func (h *PartHandler) List(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		h.BadRequest(c, "invalid pagination parameters")
		return
	}

	filter := toFilter(req)
	for _, key := range []string{"type", "brand", "unit"} {
		if v := c.Query(key); v != "" {
			filter.Filters[key] = v
		}
	}

	page, err := h.partService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns a single part by its part number
func (h *PartHandler) Get(c *gin.Context) {
	part, err := h.partService.Get(c.Request.Context(), c.Param("no_part"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, part)
}

// Search matches the query against part numbers, brands and descriptions
func (h *PartHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		h.BadRequest(c, "query parameter 'q' is required")
		return
	}

	parts, err := h.partService.Search(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, parts)
}

// Types returns the distinct part types in the catalog
func (h *PartHandler) Types(c *gin.Context) {
	types, err := h.partService.Types(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, types)
}

// ListByType returns all parts of the given type
func (h *PartHandler) ListByType(c *gin.Context) {
	parts, err := h.partService.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, parts)
}
