// Package bomapp exposes read and maintenance operations on stored BOM
// lines, outside the import transaction.
package bomapp

import (
	"context"

	"github.com/purchase-system/backend/internal/domain/bom"
	"github.com/purchase-system/backend/internal/domain/project"
	"github.com/purchase-system/backend/internal/domain/shared"
)

// BOMService serves a project's reconciled BOM.
type BOMService struct {
	lineRepo    bom.LineRepository
	projectRepo project.ProjectRepository
}

func NewBOMService(lineRepo bom.LineRepository, projectRepo project.ProjectRepository) *BOMService {
	return &BOMService{lineRepo: lineRepo, projectRepo: projectRepo}
}

// Lines returns the project's BOM joined with catalog data. An unknown
// project is an error rather than an empty list.
func (s *BOMService) Lines(ctx context.Context, noProject string) ([]bom.LineView, error) {
	exists, err := s.projectRepo.Exists(ctx, noProject)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.ErrNotFound
	}
	return s.lineRepo.FindByProject(ctx, noProject)
}

// GetLine returns a single BOM line.
func (s *BOMService) GetLine(ctx context.Context, noProject, noPart string) (*bom.Line, error) {
	return s.lineRepo.Find(ctx, noProject, noPart)
}

// DeleteLine removes one line from a project's BOM.
func (s *BOMService) DeleteLine(ctx context.Context, noProject, noPart string) error {
	return s.lineRepo.Delete(ctx, noProject, noPart)
}

// DeleteProjectBOM clears every line of the project's BOM and returns
// the number of deleted lines. The project must exist.
func (s *BOMService) DeleteProjectBOM(ctx context.Context, noProject string) (int64, error) {
	exists, err := s.projectRepo.Exists(ctx, noProject)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, shared.ErrNotFound
	}
	return s.lineRepo.DeleteByProject(ctx, noProject)
}
