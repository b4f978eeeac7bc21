package catalog

import (
	"time"

	"github.com/purchase-system/backend/internal/domain/shared"
)

// Part represents a catalog item identified by its part number.
// Parts are owned globally and shared across all project BOMs; they are
// created on first sight during an import and never deleted by one.
type Part struct {
	NoPart      string  `gorm:"column:no_part;type:varchar(100);primaryKey" json:"no_part"`
	Brand       *string `gorm:"column:brand;type:varchar(100)" json:"brand"`
	Description *string `gorm:"column:description;type:text" json:"description"`
	Quantity    *int    `gorm:"column:quantity" json:"quantity"`
	Unit        *string `gorm:"column:unit;type:varchar(50)" json:"unit"`
	Type        *string `gorm:"column:type_p;type:varchar(100)" json:"type_p"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (Part) TableName() string {
	return "products"
}

// NewPart creates a new part. The part number is expected to already be
// in canonical form (uppercase, trimmed, diacritics stripped).
func NewPart(noPart string, brand, description *string, quantity *int, unit, partType *string) (*Part, error) {
	if err := validateNoPart(noPart); err != nil {
		return nil, err
	}
	if quantity != nil && *quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Part quantity cannot be negative")
	}

	now := time.Now()
	return &Part{
		NoPart:      noPart,
		Brand:       brand,
		Description: description,
		Quantity:    quantity,
		Unit:        unit,
		Type:        partType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UnitsPerPackage returns the nominal quantity one catalog entry covers.
// Returns 0 when the part carries no nominal quantity.
func (p *Part) UnitsPerPackage() int {
	if p.Quantity == nil {
		return 0
	}
	return *p.Quantity
}

func validateNoPart(noPart string) error {
	if noPart == "" {
		return shared.NewDomainError("INVALID_PART_NUMBER", "Part number cannot be empty")
	}
	if len(noPart) > 100 {
		return shared.NewDomainError("INVALID_PART_NUMBER", "Part number cannot exceed 100 characters")
	}
	return nil
}
