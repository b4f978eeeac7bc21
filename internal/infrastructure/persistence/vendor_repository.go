package persistence

import (
	"context"
	"errors"

	"github.com/purchase-system/backend/internal/domain/purchasing"
	"github.com/purchase-system/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormVendorRepository implements VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// FindAll returns all vendors ordered by name
func (r *GormVendorRepository) FindAll(ctx context.Context) ([]purchasing.Vendor, error) {
	var vendors []purchasing.Vendor
	if err := r.db.WithContext(ctx).
		Order("name_vendor ASC").
		Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// FindByID finds a vendor by its identifier
func (r *GormVendorRepository) FindByID(ctx context.Context, idVendor string) (*purchasing.Vendor, error) {
	var vendor purchasing.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "id_vendor = ?", idVendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

// Ensure GormVendorRepository implements VendorRepository
var _ purchasing.VendorRepository = (*GormVendorRepository)(nil)
