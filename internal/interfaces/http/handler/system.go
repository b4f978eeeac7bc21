package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SystemHandler serves liveness and build information endpoints.
type SystemHandler struct {
	BaseHandler
	appName   string
	version   string
	startTime time.Time
}

func NewSystemHandler(appName, version string, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		BaseHandler: NewBaseHandler(logger),
		appName:     appName,
		version:     version,
		startTime:   time.Now(),
	}
}

// RegisterRoutes registers system routes on the given router group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	{
		system.GET("/ping", h.Ping)
		system.GET("/info", h.Info)
	}
}

// Ping responds with a simple liveness payload
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, gin.H{"message": "pong"})
}

// Info returns application and runtime details
func (h *SystemHandler) Info(c *gin.Context) {
	h.Success(c, gin.H{
		"app":        h.appName,
		"version":    h.version,
		"go_version": runtime.Version(),
		"uptime":     time.Since(h.startTime).String(),
	})
}
