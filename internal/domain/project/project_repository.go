package project

import (
	"context"

	"github.com/purchase-system/backend/internal/domain/shared"
)

// ProjectRepository defines the persistence interface for projects
type ProjectRepository interface {
	FindByNoProject(ctx context.Context, noProject string) (*Project, error)
	Exists(ctx context.Context, noProject string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Project, error)
	FindActive(ctx context.Context) ([]Project, error)
	FindWithPurchases(ctx context.Context) ([]Project, error)
	Search(ctx context.Context, query string) ([]Project, error)
	Save(ctx context.Context, project *Project) error
}
