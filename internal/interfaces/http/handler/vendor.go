package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	purchasingapp "github.com/purchase-system/backend/internal/application/purchasing"
)

// VendorHandler serves the vendor registry.
type VendorHandler struct {
	BaseHandler
	vendorService *purchasingapp.VendorService
}

func NewVendorHandler(vendorService *purchasingapp.VendorService, logger *zap.Logger) *VendorHandler {
	return &VendorHandler{
		BaseHandler:   NewBaseHandler(logger),
		vendorService: vendorService,
	}
}

// RegisterRoutes registers vendor routes on the given router group
func (h *VendorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vendors := rg.Group("/vendors")
	{
		vendors.GET("", h.List)
		vendors.GET("/:id_vendor", h.Get)
	}
}

// List returns all vendors ordered by name
func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.vendorService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vendors)
}

// Get returns a single vendor
func (h *VendorHandler) Get(c *gin.Context) {
	vendor, err := h.vendorService.Get(c.Request.Context(), c.Param("id_vendor"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vendor)
}

// NetworkHandler serves budget networks.
type NetworkHandler struct {
	BaseHandler
	networkService *purchasingapp.NetworkService
}

func NewNetworkHandler(networkService *purchasingapp.NetworkService, logger *zap.Logger) *NetworkHandler {
	return &NetworkHandler{
		BaseHandler:    NewBaseHandler(logger),
		networkService: networkService,
	}
}

// RegisterRoutes registers network routes on the given router group
func (h *NetworkHandler) RegisterRoutes(rg *gin.RouterGroup) {
	networks := rg.Group("/networks")
	{
		networks.GET("", h.List)
		networks.GET("/:network", h.Get)
	}
}

// List returns all budget networks and their balances
func (h *NetworkHandler) List(c *gin.Context) {
	networks, err := h.networkService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, networks)
}

// Get returns a single network with its remaining balance
func (h *NetworkHandler) Get(c *gin.Context) {
	network, err := h.networkService.Get(c.Request.Context(), c.Param("network"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, network)
}
