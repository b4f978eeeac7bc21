package purchasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is assumed when a purchase does not name one
const DefaultCurrency = "USD"

// Purchase is one purchase order header charged against a network
// budget. PO and Shopping hold the external order references assigned
// after the fact; they start empty.
type Purchase struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	NoProject     string          `gorm:"column:no_project;type:varchar(50);index" json:"no_project"`
	IDVendor      string          `gorm:"column:id_vendor;type:varchar(20)" json:"id_vendor"`
	Network       string          `gorm:"column:network;type:varchar(100)" json:"network"`
	Currency      string          `gorm:"column:currency;type:varchar(10);not null" json:"currency"`
	Total         decimal.Decimal `gorm:"column:total;type:decimal(18,2);not null" json:"total"`
	PO            *string         `gorm:"column:po;type:varchar(100)" json:"po"`
	Shopping      *string         `gorm:"column:shopping;type:varchar(100)" json:"shopping"`
	OrderDate     time.Time       `gorm:"column:order_date" json:"order_date"`
	TimeDelivered *time.Time      `gorm:"column:time_delivered" json:"time_delivered"`
	CreatedAt     time.Time       `json:"created_at"`

	Details []PurchaseDetail `gorm:"foreignKey:PurchaseID" json:"details,omitempty"`
}

// TableName returns the table name for GORM
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseDetail is one line of a purchase order
type PurchaseDetail struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PurchaseID uuid.UUID       `gorm:"column:purchase_id;type:uuid;index" json:"purchase_id"`
	NoPart     string          `gorm:"column:no_part;type:varchar(100)" json:"no_part"`
	Quantity   int             `gorm:"column:quantity;not null" json:"quantity"`
	PriceUnit  decimal.Decimal `gorm:"column:price_unit;type:decimal(18,2);not null" json:"price_unit"`
	Subtotal   decimal.Decimal `gorm:"column:subtotal;type:decimal(18,2);not null" json:"subtotal"`
}

// TableName returns the table name for GORM
func (PurchaseDetail) TableName() string {
	return "purchase_details"
}

// PurchaseItem is the input for one purchase order line
type PurchaseItem struct {
	NoPart    string          `json:"no_part"`
	Quantity  int             `json:"quantity"`
	PriceUnit decimal.Decimal `json:"price_unit"`
}

// Subtotal returns quantity times unit price
func (i PurchaseItem) Subtotal() decimal.Decimal {
	return i.PriceUnit.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewPurchase builds a purchase with its detail lines. The total is
// computed from the items, never taken from the caller. An empty
// currency falls back to DefaultCurrency.
func NewPurchase(noProject, idVendor, network, currency string, items []PurchaseItem) (*Purchase, error) {
	if noProject == "" {
		return nil, shared.NewDomainError("INVALID_PROJECT_NUMBER", "Project number cannot be empty")
	}
	if network == "" {
		return nil, shared.NewDomainError("INVALID_NETWORK", "Network cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_PURCHASE", "A purchase needs at least one item")
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	purchase := &Purchase{
		ID:        uuid.New(),
		NoProject: noProject,
		IDVendor:  idVendor,
		Network:   network,
		Currency:  currency,
		Total:     decimal.Zero,
		OrderDate: time.Now(),
		CreatedAt: time.Now(),
	}

	for _, item := range items {
		if item.NoPart == "" {
			return nil, shared.NewDomainError("INVALID_PART_NUMBER", "Purchase item part number cannot be empty")
		}
		if item.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Purchase item quantity must be positive")
		}
		if item.PriceUnit.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
		}
		subtotal := item.Subtotal()
		purchase.Details = append(purchase.Details, PurchaseDetail{
			ID:         uuid.New(),
			PurchaseID: purchase.ID,
			NoPart:     item.NoPart,
			Quantity:   item.Quantity,
			PriceUnit:  item.PriceUnit,
			Subtotal:   subtotal,
		})
		purchase.Total = purchase.Total.Add(subtotal)
	}

	return purchase, nil
}

// PartNumbers returns the distinct part numbers covered by this purchase
func (p *Purchase) PartNumbers() []string {
	seen := make(map[string]struct{}, len(p.Details))
	parts := make([]string, 0, len(p.Details))
	for _, d := range p.Details {
		if _, ok := seen[d.NoPart]; ok {
			continue
		}
		seen[d.NoPart] = struct{}{}
		parts = append(parts, d.NoPart)
	}
	return parts
}
