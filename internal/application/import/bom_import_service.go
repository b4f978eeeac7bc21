// Package importapp implements the BOM import engine: it parses an
// uploaded workbook and reconciles a project's stored BOM against it in
// one transaction.
package importapp

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/purchase-system/backend/internal/domain/bom"
	"github.com/purchase-system/backend/internal/domain/bulk"
	"github.com/purchase-system/backend/internal/domain/catalog"
	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/purchase-system/backend/internal/infrastructure/lock"
	"github.com/purchase-system/backend/internal/infrastructure/xlsximport"
	"go.uber.org/zap"
)

// ImportOutcome summarizes one reconciliation run
type ImportOutcome struct {
	NoProject     string `json:"no_project"`
	FileName      string `json:"file_name"`
	TotalRows     int    `json:"total_rows"`
	PartsCreated  int    `json:"parts_created"`
	LinesInserted int    `json:"lines_inserted"`
	LinesUpdated  int    `json:"lines_updated"`
	LinesDeleted  int64  `json:"lines_deleted"`
	RowsSkipped   int    `json:"rows_skipped"`
	Message       string `json:"message"`
}

// BOMImportService reconciles project BOMs against uploaded workbooks.
// All BOM line mutation from the import flow goes through this service;
// nothing else writes lines during an import.
type BOMImportService struct {
	store       bom.ImportStore
	locker      lock.ProjectLocker
	historyRepo bulk.ImportHistoryRepository
	logger      *zap.Logger
}

// NewBOMImportService creates a new BOMImportService
func NewBOMImportService(
	store bom.ImportStore,
	locker lock.ProjectLocker,
	historyRepo bulk.ImportHistoryRepository,
	logger *zap.Logger,
) *BOMImportService {
	return &BOMImportService{
		store:       store,
		locker:      locker,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// Import parses the workbook and makes the project's stored BOM exactly
// match its rows: parts are registered on first sight, line quantities
// upserted with status preserved, and lines for parts absent from the
// sheet removed. A sheet with zero resolvable part numbers clears the
// project's BOM. The whole run executes in one transaction under the
// project's import lock; on any failure nothing is applied.
func (s *BOMImportService) Import(ctx context.Context, noProject, fileName string, fileSize int64, file io.Reader) (*ImportOutcome, error) {
	if noProject == "" {
		return nil, shared.NewDomainError("INVALID_PROJECT_NUMBER", "Project number is required")
	}
	if file == nil {
		return nil, shared.NewDomainError("INVALID_FILE", "A spreadsheet file is required")
	}

	sheet, err := xlsximport.ReadSheet(file)
	if err != nil {
		if errors.Is(err, xlsximport.ErrTooFewRows) || errors.Is(err, xlsximport.ErrNoWorksheet) {
			return nil, shared.NewDomainError("INVALID_FILE", err.Error())
		}
		return nil, fmt.Errorf("parse workbook %s: %w", fileName, err)
	}

	candidates, skipped := xlsximport.ParseCandidates(sheet)

	release, err := s.locker.Acquire(ctx, noProject)
	if err != nil {
		return nil, err
	}
	defer release()

	history, err := bulk.NewImportHistory(noProject, fileName, fileSize)
	if err != nil {
		return nil, err
	}

	outcome := &ImportOutcome{
		NoProject:   noProject,
		FileName:    fileName,
		TotalRows:   len(sheet.Rows),
		RowsSkipped: skipped,
	}

	err = s.store.WithinTransaction(ctx, func(tx bom.ImportTx) error {
		return s.reconcile(ctx, tx, noProject, candidates, outcome)
	})
	if err != nil {
		s.logger.Error("bom import failed",
			zap.String("no_project", noProject),
			zap.String("file", fileName),
			zap.Error(err))
		s.recordFailure(ctx, history, err)
		return nil, err
	}

	if err := history.Complete(outcome.TotalRows, outcome.PartsCreated,
		outcome.LinesInserted, outcome.LinesUpdated, outcome.LinesDeleted, outcome.RowsSkipped); err == nil {
		if saveErr := s.historyRepo.Save(ctx, history); saveErr != nil {
			// the BOM itself is committed; a lost history row is logged, not fatal
			s.logger.Warn("could not record import history",
				zap.String("no_project", noProject), zap.Error(saveErr))
		}
	}

	outcome.Message = fmt.Sprintf("BOM imported for project %s", noProject)
	s.logger.Info("bom import completed",
		zap.String("no_project", noProject),
		zap.String("file", fileName),
		zap.Int("total_rows", outcome.TotalRows),
		zap.Int("parts_created", outcome.PartsCreated),
		zap.Int("lines_inserted", outcome.LinesInserted),
		zap.Int("lines_updated", outcome.LinesUpdated),
		zap.Int64("lines_deleted", outcome.LinesDeleted),
		zap.Int("rows_skipped", outcome.RowsSkipped))
	return outcome, nil
}

// reconcile runs the row loop and the deletion sweep. Row processing is
// strictly sequential: the sweep depends on having observed every row's
// part number first.
func (s *BOMImportService) reconcile(ctx context.Context, tx bom.ImportTx, noProject string, candidates []xlsximport.Candidate, outcome *ImportOutcome) error {
	seenSet := make(map[string]struct{}, len(candidates))
	seen := make([]string, 0, len(candidates))

	for _, c := range candidates {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		part, err := catalog.NewPart(c.NoPart, c.Brand, c.Description, c.SaleQuantity, c.Unit, c.Type)
		if err != nil {
			return fmt.Errorf("row %d: %w", c.Line, err)
		}
		created, err := tx.InsertPartIfAbsent(ctx, part)
		if err != nil {
			return fmt.Errorf("row %d: register part %s: %w", c.Line, c.NoPart, err)
		}
		if created {
			outcome.PartsCreated++
		}

		if _, ok := seenSet[c.NoPart]; !ok {
			seenSet[c.NoPart] = struct{}{}
			seen = append(seen, c.NoPart)
		}

		// a row without a requested quantity registers the part but
		// contributes no BOM line of its own; an existing line survives
		// the sweep because the part is in the seen set
		if c.ProjectQuantity == nil {
			continue
		}

		existing, err := tx.FindLine(ctx, noProject, c.NoPart)
		switch {
		case errors.Is(err, shared.ErrNotFound):
			line, lineErr := bom.NewLine(noProject, c.NoPart, *c.ProjectQuantity)
			if lineErr != nil {
				return fmt.Errorf("row %d: %w", c.Line, lineErr)
			}
			if insErr := tx.InsertLine(ctx, line); insErr != nil {
				return fmt.Errorf("row %d: insert line %s: %w", c.Line, c.NoPart, insErr)
			}
			outcome.LinesInserted++
		case err != nil:
			return fmt.Errorf("row %d: look up line %s: %w", c.Line, c.NoPart, err)
		case existing.QuantityProject != *c.ProjectQuantity:
			if updErr := tx.UpdateLineQuantity(ctx, noProject, c.NoPart, *c.ProjectQuantity); updErr != nil {
				return fmt.Errorf("row %d: update line %s: %w", c.Line, c.NoPart, updErr)
			}
			outcome.LinesUpdated++
		}
	}

	var deleted int64
	var err error
	if len(seen) == 0 {
		deleted, err = tx.DeleteAllLines(ctx, noProject)
	} else {
		deleted, err = tx.DeleteLinesNotIn(ctx, noProject, seen)
	}
	if err != nil {
		return fmt.Errorf("sweep stale lines: %w", err)
	}
	outcome.LinesDeleted = deleted
	return nil
}

// recordFailure writes a failed history row. The request context may
// already be cancelled, so the write runs on a detached context.
func (s *BOMImportService) recordFailure(ctx context.Context, history *bulk.ImportHistory, cause error) {
	if err := history.Fail(cause.Error()); err != nil {
		return
	}
	detached := context.WithoutCancel(ctx)
	if err := s.historyRepo.Save(detached, history); err != nil {
		s.logger.Warn("could not record failed import",
			zap.String("no_project", history.NoProject), zap.Error(err))
	}
}
