package bom

import "context"

// LineView is a read model joining a BOM line with its part attributes.
// QuantityCalculated is the requested quantity divided by the part's
// nominal quantity, zero when the part carries none.
type LineView struct {
	NoProject          string     `json:"no_project"`
	NoPart             string     `json:"no_part"`
	Brand              *string    `json:"brand"`
	Description        *string    `json:"description"`
	Unit               *string    `json:"unit"`
	Type               *string    `json:"type_p"`
	QuantityProject    int        `json:"quantity_project"`
	QuantityCalculated float64    `json:"quantity_calculated"`
	Status             LineStatus `json:"status"`
}

// LineRepository defines read and maintenance operations on BOM lines
// outside the import transaction.
type LineRepository interface {
	FindByProject(ctx context.Context, noProject string) ([]LineView, error)
	Find(ctx context.Context, noProject, noPart string) (*Line, error)
	UpdateStatus(ctx context.Context, noProject, noPart string, status LineStatus) error
	Delete(ctx context.Context, noProject, noPart string) error
	DeleteByProject(ctx context.Context, noProject string) (int64, error)
	CountByStatus(ctx context.Context, noProject string) (map[LineStatus]int64, error)
}
