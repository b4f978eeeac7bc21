package persistence

import (
	"context"
	"errors"

	"github.com/purchase-system/backend/internal/domain/bom"
	"github.com/purchase-system/backend/internal/domain/purchasing"
	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPurchaseStore implements purchasing.Store on a single database
// transaction per purchase creation.
type GormPurchaseStore struct {
	db *gorm.DB
}

// NewGormPurchaseStore creates a new GormPurchaseStore
func NewGormPurchaseStore(db *gorm.DB) *GormPurchaseStore {
	return &GormPurchaseStore{db: db}
}

// WithinTransaction runs fn inside one transaction
func (s *GormPurchaseStore) WithinTransaction(ctx context.Context, fn func(tx purchasing.PurchaseTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPurchaseTx{tx: tx})
	})
}

// gormPurchaseTx implements purchasing.PurchaseTx against an open transaction
type gormPurchaseTx struct {
	tx *gorm.DB
}

// FindNetwork returns the budget line, locked for the rest of the
// transaction so concurrent purchases cannot overdraw it.
func (t *gormPurchaseTx) FindNetwork(ctx context.Context, network string) (*purchasing.Network, error) {
	var n purchasing.Network
	if err := t.tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("network = ?", network).
		First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// DeductNetworkBalance subtracts amount from the network's balance
func (t *gormPurchaseTx) DeductNetworkBalance(ctx context.Context, network string, amount decimal.Decimal) error {
	result := t.tx.WithContext(ctx).
		Model(&purchasing.Network{}).
		Where("network = ?", network).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindVendorByName returns the vendor with the given display name
func (t *gormPurchaseTx) FindVendorByName(ctx context.Context, name string) (*purchasing.Vendor, error) {
	var vendor purchasing.Vendor
	if err := t.tx.WithContext(ctx).
		Where("name_vendor = ?", name).
		First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

// InsertVendor inserts a new vendor
func (t *gormPurchaseTx) InsertVendor(ctx context.Context, vendor *purchasing.Vendor) error {
	return t.tx.WithContext(ctx).Create(vendor).Error
}

// InsertPurchase inserts the purchase header and its details
func (t *gormPurchaseTx) InsertPurchase(ctx context.Context, purchase *purchasing.Purchase) error {
	return t.tx.WithContext(ctx).Create(purchase).Error
}

// UpdateLineStatus flips the BOM line for (project, part) to status.
// Lines dropped from the BOM since quoting are silently skipped.
func (t *gormPurchaseTx) UpdateLineStatus(ctx context.Context, noProject, noPart string, status bom.LineStatus) error {
	return t.tx.WithContext(ctx).
		Model(&bom.Line{}).
		Where("no_project = ? AND no_part = ?", noProject, noPart).
		Update("status", status).Error
}

// Ensure interface compliance
var (
	_ purchasing.Store      = (*GormPurchaseStore)(nil)
	_ purchasing.PurchaseTx = (*gormPurchaseTx)(nil)
)
