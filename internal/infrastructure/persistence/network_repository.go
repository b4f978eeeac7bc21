package persistence

import (
	"context"
	"errors"

	"github.com/purchase-system/backend/internal/domain/purchasing"
	"github.com/purchase-system/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormNetworkRepository implements NetworkRepository using GORM
type GormNetworkRepository struct {
	db *gorm.DB
}

// NewGormNetworkRepository creates a new GormNetworkRepository
func NewGormNetworkRepository(db *gorm.DB) *GormNetworkRepository {
	return &GormNetworkRepository{db: db}
}

// FindAll returns all budget networks ordered by name
func (r *GormNetworkRepository) FindAll(ctx context.Context) ([]purchasing.Network, error) {
	var networks []purchasing.Network
	if err := r.db.WithContext(ctx).
		Order("network ASC").
		Find(&networks).Error; err != nil {
		return nil, err
	}
	return networks, nil
}

// FindByName finds a network by its name
func (r *GormNetworkRepository) FindByName(ctx context.Context, network string) (*purchasing.Network, error) {
	var n purchasing.Network
	if err := r.db.WithContext(ctx).First(&n, "network = ?", network).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// Ensure GormNetworkRepository implements NetworkRepository
var _ purchasing.NetworkRepository = (*GormNetworkRepository)(nil)
