package catalog

import (
	"context"

	"github.com/purchase-system/backend/internal/domain/shared"
)

// PartRepository defines the persistence interface for parts
type PartRepository interface {
	FindByNoPart(ctx context.Context, noPart string) (*Part, error)
	Exists(ctx context.Context, noPart string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Part, error)
	Search(ctx context.Context, query string) ([]Part, error)
	FindByType(ctx context.Context, partType string) ([]Part, error)
	DistinctTypes(ctx context.Context) ([]string, error)
	Save(ctx context.Context, part *Part) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
