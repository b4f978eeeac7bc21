package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/purchase-system/backend/internal/domain/catalog"
	"github.com/purchase-system/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPartRepository implements PartRepository using GORM
type GormPartRepository struct {
	db *gorm.DB
}

// NewGormPartRepository creates a new GormPartRepository
func NewGormPartRepository(db *gorm.DB) *GormPartRepository {
	return &GormPartRepository{db: db}
}

// FindByNoPart finds a part by its part number
func (r *GormPartRepository) FindByNoPart(ctx context.Context, noPart string) (*catalog.Part, error) {
	var part catalog.Part
	if err := r.db.WithContext(ctx).First(&part, "no_part = ?", noPart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &part, nil
}

// Exists checks if a part with the given part number exists
func (r *GormPartRepository) Exists(ctx context.Context, noPart string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Part{}).
		Where("no_part = ?", noPart).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all parts matching the filter
func (r *GormPartRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Part, error) {
	var parts []catalog.Part
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Part{}), filter)

	if err := query.Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

// Search finds parts whose number, brand or description matches the query
func (r *GormPartRepository) Search(ctx context.Context, query string) ([]catalog.Part, error) {
	pattern := "%" + query + "%"
	var parts []catalog.Part
	if err := r.db.WithContext(ctx).
		Where("no_part ILIKE ? OR brand ILIKE ? OR description ILIKE ?", pattern, pattern, pattern).
		Order("no_part ASC").
		Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

// FindByType finds parts by their catalog type
func (r *GormPartRepository) FindByType(ctx context.Context, partType string) ([]catalog.Part, error) {
	var parts []catalog.Part
	if err := r.db.WithContext(ctx).
		Where("type_p = ?", partType).
		Order("no_part ASC").
		Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

// DistinctTypes returns the distinct non-null part types in the catalog
func (r *GormPartRepository) DistinctTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := r.db.WithContext(ctx).
		Model(&catalog.Part{}).
		Distinct("type_p").
		Where("type_p IS NOT NULL").
		Order("type_p ASC").
		Pluck("type_p", &types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// Save creates or updates a part
func (r *GormPartRepository) Save(ctx context.Context, part *catalog.Part) error {
	return r.db.WithContext(ctx).Save(part).Error
}

// Count counts parts matching the filter
func (r *GormPartRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&catalog.Part{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormPartRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("no_part ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPartRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("no_part ILIKE ? OR brand ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type_p = ?", value)
		case "brand":
			query = query.Where("brand = ?", value)
		case "unit":
			query = query.Where("unit = ?", value)
		}
	}

	return query
}

// Ensure GormPartRepository implements PartRepository
var _ catalog.PartRepository = (*GormPartRepository)(nil)
