package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/purchase-system/backend/internal/domain/bulk"
	"github.com/purchase-system/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormImportHistoryRepository implements ImportHistoryRepository using GORM
type GormImportHistoryRepository struct {
	db *gorm.DB
}

// NewGormImportHistoryRepository creates a new GormImportHistoryRepository
func NewGormImportHistoryRepository(db *gorm.DB) *GormImportHistoryRepository {
	return &GormImportHistoryRepository{db: db}
}

// Save creates or updates an import history record
func (r *GormImportHistoryRepository) Save(ctx context.Context, history *bulk.ImportHistory) error {
	return r.db.WithContext(ctx).Save(history).Error
}

// FindByID finds an import run by its identifier
func (r *GormImportHistoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*bulk.ImportHistory, error) {
	var history bulk.ImportHistory
	if err := r.db.WithContext(ctx).First(&history, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &history, nil
}

// FindByProject returns the project's import runs, newest first
func (r *GormImportHistoryRepository) FindByProject(ctx context.Context, noProject string) ([]bulk.ImportHistory, error) {
	var histories []bulk.ImportHistory
	if err := r.db.WithContext(ctx).
		Where("no_project = ?", noProject).
		Order("started_at DESC").
		Find(&histories).Error; err != nil {
		return nil, err
	}
	return histories, nil
}

// Ensure GormImportHistoryRepository implements ImportHistoryRepository
var _ bulk.ImportHistoryRepository = (*GormImportHistoryRepository)(nil)
