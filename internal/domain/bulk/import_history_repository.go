package bulk

import (
	"context"

	"github.com/google/uuid"
)

// ImportHistoryRepository defines the persistence interface for import runs
type ImportHistoryRepository interface {
	Save(ctx context.Context, history *ImportHistory) error
	FindByID(ctx context.Context, id uuid.UUID) (*ImportHistory, error)
	FindByProject(ctx context.Context, noProject string) ([]ImportHistory, error)
}
