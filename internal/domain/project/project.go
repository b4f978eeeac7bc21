package project

import (
	"time"

	"github.com/purchase-system/backend/internal/domain/shared"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusActive ProjectStatus = "Active"
	ProjectStatusClosed ProjectStatus = "Closed"
)

// Project represents a customer project that owns a BOM
type Project struct {
	NoProject string        `gorm:"column:no_project;type:varchar(50);primaryKey" json:"no_project"`
	Name      string        `gorm:"column:name;type:varchar(200)" json:"name"`
	Status    ProjectStatus `gorm:"column:status;type:varchar(20);default:'Active'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// NewProject creates a new active project
func NewProject(noProject, name string) (*Project, error) {
	if noProject == "" {
		return nil, shared.NewDomainError("INVALID_PROJECT_NUMBER", "Project number cannot be empty")
	}
	if len(noProject) > 50 {
		return nil, shared.NewDomainError("INVALID_PROJECT_NUMBER", "Project number cannot exceed 50 characters")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Project name cannot exceed 200 characters")
	}

	now := time.Now()
	return &Project{
		NoProject: noProject,
		Name:      name,
		Status:    ProjectStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Close marks the project as closed
func (p *Project) Close() error {
	if p.Status == ProjectStatusClosed {
		return shared.NewDomainError("ALREADY_CLOSED", "Project is already closed")
	}
	p.Status = ProjectStatusClosed
	p.UpdatedAt = time.Now()
	return nil
}

// IsActive returns true if the project is active
func (p *Project) IsActive() bool {
	return p.Status == ProjectStatusActive
}
