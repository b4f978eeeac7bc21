package purchasing

import (
	"context"

	"github.com/purchase-system/backend/internal/domain/bom"
	"github.com/shopspring/decimal"
)

// PurchaseTx is the set of persistence operations available to one
// purchase creation run. Every call belongs to the same database
// transaction; commit and rollback are handled by the Store.
type PurchaseTx interface {
	// FindNetwork returns the budget line, or shared.ErrNotFound.
	FindNetwork(ctx context.Context, network string) (*Network, error)

	// DeductNetworkBalance subtracts amount from the network's balance.
	DeductNetworkBalance(ctx context.Context, network string, amount decimal.Decimal) error

	// FindVendorByName returns the vendor, or shared.ErrNotFound.
	FindVendorByName(ctx context.Context, name string) (*Vendor, error)

	// InsertVendor inserts a new vendor.
	InsertVendor(ctx context.Context, vendor *Vendor) error

	// InsertPurchase inserts the purchase header and its details.
	InsertPurchase(ctx context.Context, purchase *Purchase) error

	// UpdateLineStatus flips the BOM line for (project, part) to status.
	// A missing line is not an error; purchases may cover parts that were
	// dropped from the BOM since quoting.
	UpdateLineStatus(ctx context.Context, noProject, noPart string, status bom.LineStatus) error
}

// Store opens the transaction a purchase creation runs in
type Store interface {
	WithinTransaction(ctx context.Context, fn func(tx PurchaseTx) error) error
}
