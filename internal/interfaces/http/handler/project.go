package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	projectapp "github.com/purchase-system/backend/internal/application/project"
)

// ProjectHandler manages purchasing projects.
type ProjectHandler struct {
	BaseHandler
	projectService *projectapp.ProjectService
}

func NewProjectHandler(projectService *projectapp.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    NewBaseHandler(logger),
		projectService: projectService,
	}
}

// RegisterRoutes registers project routes on the given router group
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/active", h.ListActive)
		projects.GET("/with-purchases", h.ListWithPurchases)
		projects.GET("/search", h.Search)
		projects.GET("/:no_project", h.Get)
		projects.PUT("/:no_project/close", h.Close)
	}
}

type createProjectRequest struct {
	NoProject string `json:"no_project" binding:"required,max=50"`
	Name      string `json:"name" binding:"required,max=200"`
}

// Create registers a new project
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "no_project and name are required")
		return
	}

	proj, err := h.projectService.Create(c.Request.Context(), req.NoProject, req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, proj)
}

// List returns projects, optionally filtered by status
func (h *ProjectHandler) List(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		h.BadRequest(c, "invalid pagination parameters")
		return
	}

	filter := toFilter(req)
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	projects, err := h.projectService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, projects)
}

// ListActive returns projects that are still open
func (h *ProjectHandler) ListActive(c *gin.Context) {
	projects, err := h.projectService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, projects)
}

// ListWithPurchases returns the projects that already have purchases
func (h *ProjectHandler) ListWithPurchases(c *gin.Context) {
	projects, err := h.projectService.ListWithPurchases(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, projects)
}

// Search matches the query against project numbers and names
func (h *ProjectHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		h.BadRequest(c, "query parameter 'q' is required")
		return
	}

	projects, err := h.projectService.Search(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, projects)
}

// Get returns a single project
func (h *ProjectHandler) Get(c *gin.Context) {
	proj, err := h.projectService.Get(c.Request.Context(), c.Param("no_project"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, proj)
}

// Close marks a project as closed
func (h *ProjectHandler) Close(c *gin.Context) {
	proj, err := h.projectService.Close(c.Request.Context(), c.Param("no_project"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, proj)
}
