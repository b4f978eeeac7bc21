package bom

import (
	"time"

	"github.com/purchase-system/backend/internal/domain/shared"
)

// LineStatus represents the purchasing workflow status of a BOM line.
// The importer only ever sets the default; the other statuses are applied
// by the purchase tracking flows and must survive re-imports.
type LineStatus string

const (
	LineStatusQuoted       LineStatus = "Quoted"
	LineStatusPR           LineStatus = "PR"
	LineStatusShoppingCart LineStatus = "Shopping cart"
	LineStatusPO           LineStatus = "PO"
	LineStatusDelivered    LineStatus = "Delivered to BRK"
)

// IsValid checks if the status is a known workflow status
func (s LineStatus) IsValid() bool {
	switch s {
	case LineStatusQuoted, LineStatusPR, LineStatusShoppingCart,
		LineStatusPO, LineStatusDelivered:
		return true
	}
	return false
}

// Line relates one project to one part with its requested quantity.
// Unique per (project, part); created, updated and deleted only by the
// import reconciliation pass.
type Line struct {
	NoProject       string     `gorm:"column:no_project;type:varchar(50);primaryKey" json:"no_project"`
	NoPart          string     `gorm:"column:no_part;type:varchar(100);primaryKey" json:"no_part"`
	QuantityProject int        `gorm:"column:quantity_project" json:"quantity_project"`
	Status          LineStatus `gorm:"column:status;type:varchar(30);default:'Quoted'" json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName returns the table name for GORM
func (Line) TableName() string {
	return "bom_projects"
}

// NewLine creates a new BOM line with the default status
func NewLine(noProject, noPart string, quantityProject int) (*Line, error) {
	if noProject == "" {
		return nil, shared.NewDomainError("INVALID_PROJECT_NUMBER", "Project number cannot be empty")
	}
	if noPart == "" {
		return nil, shared.NewDomainError("INVALID_PART_NUMBER", "Part number cannot be empty")
	}
	if quantityProject < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Requested quantity cannot be negative")
	}

	now := time.Now()
	return &Line{
		NoProject:       noProject,
		NoPart:          noPart,
		QuantityProject: quantityProject,
		Status:          LineStatusQuoted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// ChangeStatus moves the line to another workflow status
func (l *Line) ChangeStatus(status LineStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown BOM line status: "+string(status))
	}
	l.Status = status
	l.UpdatedAt = time.Now()
	return nil
}
