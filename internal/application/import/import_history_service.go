package importapp

import (
	"context"

	"github.com/google/uuid"
	"github.com/purchase-system/backend/internal/domain/bulk"
)

// ImportHistoryService exposes past import runs for review
type ImportHistoryService struct {
	repo bulk.ImportHistoryRepository
}

// NewImportHistoryService creates a new ImportHistoryService
func NewImportHistoryService(repo bulk.ImportHistoryRepository) *ImportHistoryService {
	return &ImportHistoryService{repo: repo}
}

// GetByID returns one import run
func (s *ImportHistoryService) GetByID(ctx context.Context, id uuid.UUID) (*bulk.ImportHistory, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByProject returns a project's import runs, newest first
func (s *ImportHistoryService) ListByProject(ctx context.Context, noProject string) ([]bulk.ImportHistory, error) {
	return s.repo.FindByProject(ctx, noProject)
}
