package purchasing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorRepository defines read operations on vendors
type VendorRepository interface {
	FindAll(ctx context.Context) ([]Vendor, error)
	FindByID(ctx context.Context, idVendor string) (*Vendor, error)
}

// NetworkRepository defines read operations on budget networks
type NetworkRepository interface {
	FindAll(ctx context.Context) ([]Network, error)
	FindByName(ctx context.Context, network string) (*Network, error)
}

// PurchaseLineView joins a purchase detail with its header and vendor,
// one row per purchased BOM line.
type PurchaseLineView struct {
	PurchaseID uuid.UUID       `json:"purchase_id"`
	NoProject  string          `json:"no_project"`
	NoPart     string          `json:"no_part"`
	NameVendor string          `json:"name_vendor"`
	Network    string          `json:"network"`
	Currency   string          `json:"currency"`
	PO         *string         `json:"po"`
	Shopping   *string         `json:"shopping"`
	Quantity   int             `json:"quantity"`
	PriceUnit  decimal.Decimal `json:"price_unit"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	OrderDate  string          `json:"order_date"`
}

// PurchaseRepository defines read and maintenance operations on
// purchase headers
type PurchaseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)
	FindByProject(ctx context.Context, noProject string) ([]PurchaseLineView, error)
	TotalSpentByProject(ctx context.Context, noProject string) (decimal.Decimal, error)

	// UpdateOrderRefs sets the purchase's external order references.
	// A nil po or shopping leaves that column untouched.
	UpdateOrderRefs(ctx context.Context, id uuid.UUID, po, shopping *string) error
}
