package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/purchase-system/backend/internal/domain/shared"
)

// StockEntry records parts received into the warehouse
type StockEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	NoPart    string    `gorm:"column:no_part;type:varchar(100);index" json:"no_part"`
	Quantity  int       `gorm:"column:quantity;not null" json:"quantity"`
	Rack      string    `gorm:"column:rack;type:varchar(50)" json:"rack"`
	DateEntry time.Time `gorm:"column:date_entry" json:"date_entry"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for GORM
func (StockEntry) TableName() string {
	return "stock"
}

// NewStockEntry creates an inbound stock record
func NewStockEntry(noPart string, quantity int, rack string, dateEntry time.Time) (*StockEntry, error) {
	if noPart == "" {
		return nil, shared.NewDomainError("INVALID_PART_NUMBER", "Part number cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Stock entry quantity must be positive")
	}
	if dateEntry.IsZero() {
		dateEntry = time.Now()
	}

	return &StockEntry{
		ID:        uuid.New(),
		NoPart:    noPart,
		Quantity:  quantity,
		Rack:      rack,
		DateEntry: dateEntry,
		CreatedAt: time.Now(),
	}, nil
}

// OutputMovement records parts leaving the warehouse
type OutputMovement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	NoPart      string    `gorm:"column:no_part;type:varchar(100);index" json:"no_part"`
	Quantity    int       `gorm:"column:quantity;not null" json:"quantity"`
	Destination string    `gorm:"column:destination;type:varchar(200)" json:"destination"`
	DateOutput  time.Time `gorm:"column:date_output" json:"date_output"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name for GORM
func (OutputMovement) TableName() string {
	return "output_inventory"
}

// NewOutputMovement creates an outbound movement record
func NewOutputMovement(noPart string, quantity int, destination string, dateOutput time.Time) (*OutputMovement, error) {
	if noPart == "" {
		return nil, shared.NewDomainError("INVALID_PART_NUMBER", "Part number cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Output quantity must be positive")
	}
	if dateOutput.IsZero() {
		dateOutput = time.Now()
	}

	return &OutputMovement{
		ID:          uuid.New(),
		NoPart:      noPart,
		Quantity:    quantity,
		Destination: destination,
		DateOutput:  dateOutput,
		CreatedAt:   time.Now(),
	}, nil
}
