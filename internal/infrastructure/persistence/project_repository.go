package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/purchase-system/backend/internal/domain/project"
	"github.com/purchase-system/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProjectRepository implements ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindByNoProject finds a project by its project number
func (r *GormProjectRepository) FindByNoProject(ctx context.Context, noProject string) (*project.Project, error) {
	var p project.Project
	if err := r.db.WithContext(ctx).First(&p, "no_project = ?", noProject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Exists checks if a project with the given project number exists
func (r *GormProjectRepository) Exists(ctx context.Context, noProject string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&project.Project{}).
		Where("no_project = ?", noProject).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all projects matching the filter
func (r *GormProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]project.Project, error) {
	var projects []project.Project
	query := r.db.WithContext(ctx).Model(&project.Project{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("no_project ILIKE ? OR name ILIKE ?", pattern, pattern)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

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
		query = query.Order("no_project ASC")
	}

	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindActive finds all active projects
func (r *GormProjectRepository) FindActive(ctx context.Context) ([]project.Project, error) {
	var projects []project.Project
	if err := r.db.WithContext(ctx).
		Where("status = ?", project.ProjectStatusActive).
		Order("no_project ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindWithPurchases finds the projects that already have at least one
// purchase recorded
func (r *GormProjectRepository) FindWithPurchases(ctx context.Context) ([]project.Project, error) {
	var projects []project.Project
	if err := r.db.WithContext(ctx).
		Model(&project.Project{}).
		Distinct("projects.*").
		Joins("JOIN purchases pu ON pu.no_project = projects.no_project").
		Order("projects.name ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Search finds projects whose number or name matches the query
func (r *GormProjectRepository) Search(ctx context.Context, query string) ([]project.Project, error) {
	pattern := "%" + query + "%"
	var projects []project.Project
	if err := r.db.WithContext(ctx).
		Where("no_project ILIKE ? OR name ILIKE ?", pattern, pattern).
		Order("no_project ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Save creates or updates a project
func (r *GormProjectRepository) Save(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Ensure GormProjectRepository implements ProjectRepository
var _ project.ProjectRepository = (*GormProjectRepository)(nil)
