package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/purchase-system/backend/internal/interfaces/http/middleware"
)

func newPurchaseRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	h := NewPurchaseHandler(nil, zap.NewNop())
	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestCreatePurchaseRejectsEmptyBody(t *testing.T) {
	router := newPurchaseRouter(t)

	req := httptest.NewRequest("POST", "/api/v1/purchases", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePurchaseRejectsBadPrice(t *testing.T) {
	router := newPurchaseRouter(t)

	payload := `{
		"no_project": "ABC-1",
		"vendor_name": "Acme",
		"network": "CAPEX-2026",
		"items": [{"no_part": "R-100", "quantity": 2, "price_unit": "not-a-number"}]
	}`
	req := httptest.NewRequest("POST", "/api/v1/purchases", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "price_unit")
}

func TestUpdateLineStatusRejectsUnknownStatus(t *testing.T) {
	router := newPurchaseRouter(t)

	payload := `{"no_project": "ABC-1", "no_part": "R-100", "status": "Teleported"}`
	req := httptest.NewRequest("PUT", "/api/v1/purchases/lines/status", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "workflow status")
}

func TestCreatePurchaseRejectsBadDeliveryDate(t *testing.T) {
	router := newPurchaseRouter(t)

	payload := `{
		"no_project": "ABC-1",
		"vendor_name": "Acme",
		"network": "CAPEX-2026",
		"time_delivered": "15/09/2026",
		"items": [{"no_part": "R-100", "quantity": 2, "price_unit": "10.00"}]
	}`
	req := httptest.NewRequest("POST", "/api/v1/purchases", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "time_delivered")
}

func TestUpdateLineStatusRejectsBadPurchaseID(t *testing.T) {
	router := newPurchaseRouter(t)

	payload := `{
		"no_project": "ABC-1",
		"no_part": "R-100",
		"status": "PO",
		"purchase_id": "not-a-uuid",
		"po": "PO-2024-001"
	}`
	req := httptest.NewRequest("PUT", "/api/v1/purchases/lines/status", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
