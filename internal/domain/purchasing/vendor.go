package purchasing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/purchase-system/backend/internal/domain/shared"
)

// Vendor represents a supplier purchases are placed with
type Vendor struct {
	IDVendor   string    `gorm:"column:id_vendor;type:varchar(20);primaryKey" json:"id_vendor"`
	NameVendor string    `gorm:"column:name_vendor;type:varchar(200)" json:"name_vendor"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// NewVendor creates a vendor with a generated identifier
func NewVendor(name string) (*Vendor, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot exceed 200 characters")
	}

	return &Vendor{
		IDVendor:   GenerateVendorID(),
		NameVendor: name,
		CreatedAt:  time.Now(),
	}, nil
}

// GenerateVendorID builds a vendor id from the last six digits of the
// current unix timestamp plus a three digit random suffix, e.g. "V123456789".
func GenerateVendorID() string {
	ts := time.Now().Unix() % 1000000
	return fmt.Sprintf("V%06d%03d", ts, rand.Intn(1000))
}
