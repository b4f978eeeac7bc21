package project

import (
	"context"
	"errors"
	"strings"

	"github.com/purchase-system/backend/internal/domain/project"
	"github.com/purchase-system/backend/internal/domain/shared"
)

// ProjectService handles project lifecycle operations
type ProjectService struct {
	projectRepo project.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo project.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// Create registers a new project
func (s *ProjectService) Create(ctx context.Context, noProject, name string) (*project.Project, error) {
	noProject = strings.TrimSpace(noProject)
	exists, err := s.projectRepo.Exists(ctx, noProject)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Project with this number already exists")
	}

	p, err := project.NewProject(noProject, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if err := s.projectRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns one project
func (s *ProjectService) Get(ctx context.Context, noProject string) (*project.Project, error) {
	return s.projectRepo.FindByNoProject(ctx, noProject)
}

// List returns projects matching the filter
func (s *ProjectService) List(ctx context.Context, filter shared.Filter) ([]project.Project, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 200 {
		filter.PageSize = 50
	}
	return s.projectRepo.FindAll(ctx, filter)
}

// ListActive returns projects that are still open
func (s *ProjectService) ListActive(ctx context.Context) ([]project.Project, error) {
	return s.projectRepo.FindActive(ctx)
}

// ListWithPurchases returns projects that already have at least one
// purchase recorded, for the tracking views.
func (s *ProjectService) ListWithPurchases(ctx context.Context) ([]project.Project, error) {
	return s.projectRepo.FindWithPurchases(ctx)
}

// Search finds projects by number or name
func (s *ProjectService) Search(ctx context.Context, query string) ([]project.Project, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, shared.NewDomainError("INVALID_QUERY", "Search query cannot be empty")
	}
	return s.projectRepo.Search(ctx, query)
}

// Close marks a project as closed
func (s *ProjectService) Close(ctx context.Context, noProject string) (*project.Project, error) {
	p, err := s.projectRepo.FindByNoProject(ctx, noProject)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := p.Close(); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
