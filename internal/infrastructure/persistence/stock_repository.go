package persistence

import (
	"context"

	"github.com/purchase-system/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormStockRepository implements StockRepository using GORM
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// SaveEntry records an inbound stock movement
func (r *GormStockRepository) SaveEntry(ctx context.Context, entry *inventory.StockEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// SaveOutput records an outbound stock movement
func (r *GormStockRepository) SaveOutput(ctx context.Context, output *inventory.OutputMovement) error {
	return r.db.WithContext(ctx).Create(output).Error
}

// FindEntriesByPart returns inbound movements for a part, newest first
func (r *GormStockRepository) FindEntriesByPart(ctx context.Context, noPart string) ([]inventory.StockEntry, error) {
	var entries []inventory.StockEntry
	if err := r.db.WithContext(ctx).
		Where("no_part = ?", noPart).
		Order("date_entry DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindOutputsByPart returns outbound movements for a part, newest first
func (r *GormStockRepository) FindOutputsByPart(ctx context.Context, noPart string) ([]inventory.OutputMovement, error) {
	var outputs []inventory.OutputMovement
	if err := r.db.WithContext(ctx).
		Where("no_part = ?", noPart).
		Order("date_output DESC").
		Find(&outputs).Error; err != nil {
		return nil, err
	}
	return outputs, nil
}

// Overview aggregates the warehouse position per part. Parts with
// movements but no catalog entry still show up, without a description.
func (r *GormStockRepository) Overview(ctx context.Context) ([]inventory.StockOverview, error) {
	var overview []inventory.StockOverview
	if err := r.db.WithContext(ctx).
		Table("stock AS s").
		Select(`s.no_part, p.description,
			COALESCE(SUM(s.quantity), 0) AS entered,
			COALESCE(o.shipped, 0) AS shipped,
			COALESCE(SUM(s.quantity), 0) - COALESCE(o.shipped, 0) AS available`).
		Joins("LEFT JOIN products p ON p.no_part = s.no_part").
		Joins(`LEFT JOIN (
			SELECT no_part, SUM(quantity) AS shipped
			FROM output_inventory GROUP BY no_part
		) o ON o.no_part = s.no_part`).
		Group("s.no_part, p.description, o.shipped").
		Order("s.no_part ASC").
		Scan(&overview).Error; err != nil {
		return nil, err
	}
	return overview, nil
}

// AvailableQuantity returns entered minus shipped for one part
func (r *GormStockRepository) AvailableQuantity(ctx context.Context, noPart string) (int, error) {
	var available int
	if err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE((SELECT SUM(quantity) FROM stock WHERE no_part = ?), 0)
			- COALESCE((SELECT SUM(quantity) FROM output_inventory WHERE no_part = ?), 0)`,
			noPart, noPart).
		Scan(&available).Error; err != nil {
		return 0, err
	}
	return available, nil
}

// Ensure GormStockRepository implements StockRepository
var _ inventory.StockRepository = (*GormStockRepository)(nil)
