package persistence

import (
	"context"
	"errors"

	"github.com/purchase-system/backend/internal/domain/bom"
	"github.com/purchase-system/backend/internal/domain/catalog"
	"github.com/purchase-system/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormImportStore implements bom.ImportStore on a single database
// transaction per reconciliation run.
type GormImportStore struct {
	db *gorm.DB
}

// NewGormImportStore creates a new GormImportStore
func NewGormImportStore(db *gorm.DB) *GormImportStore {
	return &GormImportStore{db: db}
}

// WithinTransaction runs fn inside one transaction. Any error from fn
// rolls the whole reconciliation back.
func (s *GormImportStore) WithinTransaction(ctx context.Context, fn func(tx bom.ImportTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormImportTx{tx: tx})
	})
}

// gormImportTx implements bom.ImportTx against an open transaction
type gormImportTx struct {
	tx *gorm.DB
}

// InsertPartIfAbsent inserts the part unless its number is already
// registered. Existing catalog attributes win over the incoming row.
func (t *gormImportTx) InsertPartIfAbsent(ctx context.Context, part *catalog.Part) (bool, error) {
	result := t.tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "no_part"}},
			DoNothing: true,
		}).
		Create(part)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindLine returns the existing line for (project, part)
func (t *gormImportTx) FindLine(ctx context.Context, noProject, noPart string) (*bom.Line, error) {
	var line bom.Line
	if err := t.tx.WithContext(ctx).
		Where("no_project = ? AND no_part = ?", noProject, noPart).
		First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// InsertLine inserts a new BOM line
func (t *gormImportTx) InsertLine(ctx context.Context, line *bom.Line) error {
	return t.tx.WithContext(ctx).Create(line).Error
}

// UpdateLineQuantity updates the requested quantity, leaving status alone
func (t *gormImportTx) UpdateLineQuantity(ctx context.Context, noProject, noPart string, quantity int) error {
	result := t.tx.WithContext(ctx).
		Model(&bom.Line{}).
		Where("no_project = ? AND no_part = ?", noProject, noPart).
		Update("quantity_project", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteLinesNotIn removes the project's lines whose part is not in keep
func (t *gormImportTx) DeleteLinesNotIn(ctx context.Context, noProject string, keep []string) (int64, error) {
	result := t.tx.WithContext(ctx).
		Where("no_project = ? AND no_part NOT IN ?", noProject, keep).
		Delete(&bom.Line{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteAllLines clears the project's entire BOM
func (t *gormImportTx) DeleteAllLines(ctx context.Context, noProject string) (int64, error) {
	result := t.tx.WithContext(ctx).
		Where("no_project = ?", noProject).
		Delete(&bom.Line{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Ensure interface compliance
var (
	_ bom.ImportStore = (*GormImportStore)(nil)
	_ bom.ImportTx    = (*gormImportTx)(nil)
)
