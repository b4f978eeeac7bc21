package bulk

import (
	"time"

	"github.com/purchase-system/backend/internal/domain/shared"
)

// ImportStatus represents the status of an import run
type ImportStatus string

const (
	ImportStatusProcessing ImportStatus = "processing"
	ImportStatusCompleted  ImportStatus = "completed"
	ImportStatusFailed     ImportStatus = "failed"
)

// IsValid checks if the status is valid
func (s ImportStatus) IsValid() bool {
	switch s {
	case ImportStatusProcessing, ImportStatusCompleted, ImportStatusFailed:
		return true
	}
	return false
}

// IsTerminal returns true if this is a terminal state
func (s ImportStatus) IsTerminal() bool {
	return s == ImportStatusCompleted || s == ImportStatusFailed
}

// ImportHistory tracks one BOM import run and its reconciliation outcome
type ImportHistory struct {
	shared.BaseEntity
	NoProject     string       `gorm:"column:no_project;type:varchar(50);index" json:"no_project"`
	FileName      string       `gorm:"column:file_name;type:varchar(255)" json:"file_name"`
	FileSize      int64        `gorm:"column:file_size" json:"file_size"`
	TotalRows     int          `gorm:"column:total_rows" json:"total_rows"`
	PartsCreated  int          `gorm:"column:parts_created" json:"parts_created"`
	LinesInserted int          `gorm:"column:lines_inserted" json:"lines_inserted"`
	LinesUpdated  int          `gorm:"column:lines_updated" json:"lines_updated"`
	LinesDeleted  int64        `gorm:"column:lines_deleted" json:"lines_deleted"`
	RowsSkipped   int          `gorm:"column:rows_skipped" json:"rows_skipped"`
	Status        ImportStatus `gorm:"column:status;type:varchar(20)" json:"status"`
	ErrorMessage  string       `gorm:"column:error_message;type:text" json:"error_message,omitempty"`
	StartedAt     time.Time    `gorm:"column:started_at" json:"started_at"`
	CompletedAt   *time.Time   `gorm:"column:completed_at" json:"completed_at,omitempty"`
}

// TableName returns the table name for GORM
func (ImportHistory) TableName() string {
	return "import_history"
}

// NewImportHistory creates a history record for an import that is starting
func NewImportHistory(noProject, fileName string, fileSize int64) (*ImportHistory, error) {
	if noProject == "" {
		return nil, shared.NewDomainError("INVALID_PROJECT_NUMBER", "Project number cannot be empty")
	}
	if fileName == "" {
		return nil, shared.NewDomainError("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if fileSize < 0 {
		return nil, shared.NewDomainError("INVALID_FILE_SIZE", "File size cannot be negative")
	}

	return &ImportHistory{
		BaseEntity: shared.NewBaseEntity(),
		NoProject:  noProject,
		FileName:   fileName,
		FileSize:   fileSize,
		Status:     ImportStatusProcessing,
		StartedAt:  time.Now(),
	}, nil
}

// Complete records the reconciliation counts and marks the run finished
func (h *ImportHistory) Complete(totalRows, partsCreated, linesInserted, linesUpdated int, linesDeleted int64, rowsSkipped int) error {
	if h.Status != ImportStatusProcessing {
		return shared.NewDomainError("INVALID_STATE", "Cannot complete an import that is not processing")
	}

	h.TotalRows = totalRows
	h.PartsCreated = partsCreated
	h.LinesInserted = linesInserted
	h.LinesUpdated = linesUpdated
	h.LinesDeleted = linesDeleted
	h.RowsSkipped = rowsSkipped
	h.Status = ImportStatusCompleted
	now := time.Now()
	h.CompletedAt = &now
	h.UpdatedAt = now
	return nil
}

// Fail marks the run as failed with the underlying cause
func (h *ImportHistory) Fail(cause string) error {
	if h.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Cannot fail an import in a terminal state")
	}

	h.Status = ImportStatusFailed
	h.ErrorMessage = cause
	now := time.Now()
	h.CompletedAt = &now
	h.UpdatedAt = now
	return nil
}

// Duration returns how long the run took, up to now while still running
func (h *ImportHistory) Duration() time.Duration {
	end := time.Now()
	if h.CompletedAt != nil {
		end = *h.CompletedAt
	}
	return end.Sub(h.StartedAt)
}
