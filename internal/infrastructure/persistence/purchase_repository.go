package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/purchase-system/backend/internal/domain/purchasing"
	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPurchaseRepository implements PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// FindByID finds a purchase with its detail lines
func (r *GormPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.Purchase, error) {
	var purchase purchasing.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Details").
		First(&purchase, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

// FindByProject returns one row per purchased line of the project,
// joined with the purchase header and vendor.
func (r *GormPurchaseRepository) FindByProject(ctx context.Context, noProject string) ([]purchasing.PurchaseLineView, error) {
	var views []purchasing.PurchaseLineView
	if err := r.db.WithContext(ctx).
		Table("purchase_details AS d").
		Select(`d.purchase_id, p.no_project, d.no_part, v.name_vendor, p.network,
			p.currency, p.po, p.shopping,
			d.quantity, d.price_unit, d.subtotal,
			to_char(p.order_date, 'YYYY-MM-DD') AS order_date`).
		Joins("JOIN purchases p ON p.id = d.purchase_id").
		Joins("JOIN vendors v ON v.id_vendor = p.id_vendor").
		Where("p.no_project = ?", noProject).
		Order("p.order_date DESC, d.no_part ASC").
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// TotalSpentByProject sums the totals of the project's purchases
func (r *GormPurchaseRepository) TotalSpentByProject(ctx context.Context, noProject string) (decimal.Decimal, error) {
	var total sql.NullString
	if err := r.db.WithContext(ctx).
		Model(&purchasing.Purchase{}).
		Select("SUM(total)").
		Where("no_project = ?", noProject).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(total.String)
}

// UpdateOrderRefs sets the po and shopping references on a purchase.
// Nil values leave the column as it is.
func (r *GormPurchaseRepository) UpdateOrderRefs(ctx context.Context, id uuid.UUID, po, shopping *string) error {
	updates := map[string]interface{}{}
	if po != nil {
		updates["po"] = *po
	}
	if shopping != nil {
		updates["shopping"] = *shopping
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&purchasing.Purchase{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPurchaseRepository implements PurchaseRepository
var _ purchasing.PurchaseRepository = (*GormPurchaseRepository)(nil)
