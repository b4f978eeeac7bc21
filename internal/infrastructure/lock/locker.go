// Package lock serializes BOM imports per project. Two concurrent
// reconciliations for one project would race on the deletion sweep, so
// an import holds the project's lock for the whole transaction.
package lock

import "context"

// ProjectLocker hands out per-project import locks. Acquire is a
// try-lock: it returns shared.ErrImportInProgress when another import
// already holds the project, rather than queueing uploads. The returned
// release func is safe to call more than once.
type ProjectLocker interface {
	Acquire(ctx context.Context, noProject string) (release func(), err error)
}
