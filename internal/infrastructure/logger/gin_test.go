package logger

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedRouter(level zapcore.Level) (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(level)
	logger := zap.New(core)

	router := gin.New()
	router.Use(Recovery(logger))
	router.Use(GinMiddleware(logger))
	return router, recorded
}

func TestGinMiddlewareLogsRequest(t *testing.T) {
	router, recorded := newObservedRouter(zapcore.InfoLevel)
	router.GET("/api/v1/projects", func(c *gin.Context) {
		c.Set("request_id", "req-7")
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects?status=Open", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, 1, recorded.Len())
	entry := recorded.All()[0]
	assert.Equal(t, "request completed", entry.Message)
	assert.Equal(t, zapcore.InfoLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/v1/projects", fields["path"])
	assert.Equal(t, "/api/v1/projects", fields["route"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "status=Open", fields["query"])
}

func TestGinMiddlewareSkipsHealth(t *testing.T) {
	router, recorded := newObservedRouter(zapcore.InfoLevel)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, recorded.Len())
}

func TestGinMiddlewareWarnsOnClientError(t *testing.T) {
	router, recorded := newObservedRouter(zapcore.InfoLevel)
	router.GET("/api/v1/parts/:no_part", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/parts/UNKNOWN", nil))

	require.Equal(t, 1, recorded.Len())
	assert.Equal(t, zapcore.WarnLevel, recorded.All()[0].Level)
}

func TestRecoveryRespondsWithErrorEnvelope(t *testing.T) {
	router, recorded := newObservedRouter(zapcore.ErrorLevel)
	router.GET("/api/v1/stock", func(c *gin.Context) {
		c.Set("request_id", "req-9")
		panic("stock overview blew up")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stock", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	errInfo := body["error"].(map[string]any)
	assert.Equal(t, "ERR_INTERNAL", errInfo["code"])
	assert.Equal(t, "Internal server error", errInfo["message"])
	assert.Equal(t, "req-9", errInfo["request_id"])

	var panicLog *observer.LoggedEntry
	for _, entry := range recorded.All() {
		if entry.Message == "panic recovered" {
			e := entry
			panicLog = &e
			break
		}
	}
	require.NotNil(t, panicLog)
	assert.Equal(t, "stock overview blew up", panicLog.ContextMap()["error"])
}

func TestGetGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, GetGinLogger(c), "missing logger falls back to a no-op")

	logger := zap.NewNop().Named("request")
	c.Set("logger", logger)
	assert.Same(t, logger, GetGinLogger(c))
}
