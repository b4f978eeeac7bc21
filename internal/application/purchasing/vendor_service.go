package purchasing

import (
	"context"

	"github.com/purchase-system/backend/internal/domain/purchasing"
)

// VendorService exposes vendor lookups
type VendorService struct {
	vendorRepo purchasing.VendorRepository
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo purchasing.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// List returns all vendors
func (s *VendorService) List(ctx context.Context) ([]purchasing.Vendor, error) {
	return s.vendorRepo.FindAll(ctx)
}

// Get returns one vendor by id
func (s *VendorService) Get(ctx context.Context, idVendor string) (*purchasing.Vendor, error) {
	return s.vendorRepo.FindByID(ctx, idVendor)
}

// NetworkService exposes budget network lookups
type NetworkService struct {
	networkRepo purchasing.NetworkRepository
}

// NewNetworkService creates a new NetworkService
func NewNetworkService(networkRepo purchasing.NetworkRepository) *NetworkService {
	return &NetworkService{networkRepo: networkRepo}
}

// List returns all networks with their balances
func (s *NetworkService) List(ctx context.Context) ([]purchasing.Network, error) {
	return s.networkRepo.FindAll(ctx)
}

// Get returns one network with its balance
func (s *NetworkService) Get(ctx context.Context, network string) (*purchasing.Network, error) {
	return s.networkRepo.FindByName(ctx, network)
}
