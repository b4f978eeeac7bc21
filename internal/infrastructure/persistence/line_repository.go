package persistence

import (
	"context"
	"errors"

	"github.com/purchase-system/backend/internal/domain/bom"
	"github.com/purchase-system/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormLineRepository implements LineRepository using GORM
type GormLineRepository struct {
	db *gorm.DB
}

// NewGormLineRepository creates a new GormLineRepository
func NewGormLineRepository(db *gorm.DB) *GormLineRepository {
	return &GormLineRepository{db: db}
}

// FindByProject returns the project's BOM joined with part attributes.
// quantity_calculated divides the requested quantity by the part's
// nominal quantity and is zero when the part carries none.
func (r *GormLineRepository) FindByProject(ctx context.Context, noProject string) ([]bom.LineView, error) {
	var views []bom.LineView
	if err := r.db.WithContext(ctx).
		Table("bom_projects AS b").
		Select(`b.no_project, b.no_part, p.brand, p.description, p.unit, p.type_p,
			b.quantity_project,
			CASE WHEN COALESCE(p.quantity, 0) > 0
				THEN b.quantity_project::float / p.quantity
				ELSE 0 END AS quantity_calculated,
			b.status`).
		Joins("JOIN products p ON p.no_part = b.no_part").
		Where("b.no_project = ?", noProject).
		Order("b.no_part ASC").
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// Find returns the line for (project, part)
func (r *GormLineRepository) Find(ctx context.Context, noProject, noPart string) (*bom.Line, error) {
	var line bom.Line
	if err := r.db.WithContext(ctx).
		Where("no_project = ? AND no_part = ?", noProject, noPart).
		First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// UpdateStatus flips the workflow status of one line
func (r *GormLineRepository) UpdateStatus(ctx context.Context, noProject, noPart string, status bom.LineStatus) error {
	result := r.db.WithContext(ctx).
		Model(&bom.Line{}).
		Where("no_project = ? AND no_part = ?", noProject, noPart).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes one line from the BOM
func (r *GormLineRepository) Delete(ctx context.Context, noProject, noPart string) error {
	result := r.db.WithContext(ctx).
		Delete(&bom.Line{}, "no_project = ? AND no_part = ?", noProject, noPart)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByProject clears the project's whole BOM and reports how many
// lines went away
func (r *GormLineRepository) DeleteByProject(ctx context.Context, noProject string) (int64, error) {
	result := r.db.WithContext(ctx).
		Delete(&bom.Line{}, "no_project = ?", noProject)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountByStatus counts the project's lines per workflow status
func (r *GormLineRepository) CountByStatus(ctx context.Context, noProject string) (map[bom.LineStatus]int64, error) {
	var rows []struct {
		Status bom.LineStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&bom.Line{}).
		Select("status, count(*) AS count").
		Where("no_project = ?", noProject).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[bom.LineStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Ensure GormLineRepository implements LineRepository
var _ bom.LineRepository = (*GormLineRepository)(nil)
