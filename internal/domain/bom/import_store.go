package bom

import (
	"context"

	"github.com/purchase-system/backend/internal/domain/catalog"
)

// ImportTx is the set of persistence operations available to one import
// reconciliation run. Every call belongs to the same database transaction;
// the store commits or rolls back the whole set atomically.
type ImportTx interface {
	// InsertPartIfAbsent registers a part on first sight. Existing
	// attributes are authoritative and are never overwritten. Returns
	// true when a new part row was created.
	InsertPartIfAbsent(ctx context.Context, part *catalog.Part) (bool, error)

	// FindLine returns the existing line for (project, part), or
	// shared.ErrNotFound when no such line exists.
	FindLine(ctx context.Context, noProject, noPart string) (*Line, error)

	// InsertLine inserts a new BOM line.
	InsertLine(ctx context.Context, line *Line) error

	// UpdateLineQuantity updates only the requested quantity of an
	// existing line, leaving its status untouched.
	UpdateLineQuantity(ctx context.Context, noProject, noPart string, quantity int) error

	// DeleteLinesNotIn removes every line of the project whose part
	// number is not in keep. Returns the number of lines removed.
	DeleteLinesNotIn(ctx context.Context, noProject string, keep []string) (int64, error)

	// DeleteAllLines clears the project's entire BOM. Returns the number
	// of lines removed.
	DeleteAllLines(ctx context.Context, noProject string) (int64, error)
}

// ImportStore opens the transaction an import reconciliation runs in.
// If fn returns an error the transaction is rolled back and the error is
// returned; otherwise the transaction is committed.
type ImportStore interface {
	WithinTransaction(ctx context.Context, fn func(tx ImportTx) error) error
}
