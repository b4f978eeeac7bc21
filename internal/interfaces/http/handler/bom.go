package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bomapp "github.com/purchase-system/backend/internal/application/bom"
	importapp "github.com/purchase-system/backend/internal/application/import"
	"github.com/purchase-system/backend/internal/interfaces/http/dto"
)

// BOMHandler serves project BOMs and the workbook upload that
// reconciles them.
type BOMHandler struct {
	BaseHandler
	bomService    *bomapp.BOMService
	importService *importapp.BOMImportService
	maxUploadSize int64
}

func NewBOMHandler(
	bomService *bomapp.BOMService,
	importService *importapp.BOMImportService,
	maxUploadSize int64,
	logger *zap.Logger,
) *BOMHandler {
	return &BOMHandler{
		BaseHandler:   NewBaseHandler(logger),
		bomService:    bomService,
		importService: importService,
		maxUploadSize: maxUploadSize,
	}
}

// RegisterRoutes registers BOM routes on the given router group
func (h *BOMHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bom := rg.Group("/bom")
	{
		bom.POST("/import", h.Import)
		bom.GET("/:no_project", h.Lines)
		bom.DELETE("/:no_project", h.DeleteProjectBOM)
		bom.DELETE("/:no_project/lines/:no_part", h.DeleteLine)
	}
}

// Import accepts a multipart workbook upload and reconciles the
// project's BOM against it in one transaction.
func (h *BOMHandler) Import(c *gin.Context) {
	noProject := c.PostForm("no_project")
	if noProject == "" {
		h.BadRequest(c, "form field 'no_project' is required")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "form file 'file' is required")
		return
	}
	defer file.Close()

	if h.maxUploadSize > 0 && header.Size > h.maxUploadSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge,
			"uploaded file exceeds maximum allowed size")
		return
	}

	outcome, err := h.importService.Import(c.Request.Context(), noProject, header.Filename, header.Size, file)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, outcome)
}

// Lines returns the project's BOM joined with catalog data
func (h *BOMHandler) Lines(c *gin.Context) {
	lines, err := h.bomService.Lines(c.Request.Context(), c.Param("no_project"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lines)
}

// DeleteProjectBOM clears the project's entire BOM
func (h *BOMHandler) DeleteProjectBOM(c *gin.Context) {
	deleted, err := h.bomService.DeleteProjectBOM(c.Request.Context(), c.Param("no_project"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"lines_deleted": deleted})
}

// DeleteLine removes one line from a project's BOM
func (h *BOMHandler) DeleteLine(c *gin.Context) {
	err := h.bomService.DeleteLine(c.Request.Context(), c.Param("no_project"), c.Param("no_part"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
