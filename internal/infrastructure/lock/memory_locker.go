package lock

import (
	"context"
	"sync"

	"github.com/purchase-system/backend/internal/domain/shared"
)

// MemoryLocker is the single-node ProjectLocker: a mutex-guarded set of
// held project numbers.
type MemoryLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemoryLocker creates an in-memory project locker
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{held: make(map[string]struct{})}
}

// Acquire takes the project's lock or fails with ErrImportInProgress
func (l *MemoryLocker) Acquire(ctx context.Context, noProject string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, taken := l.held[noProject]; taken {
		return nil, shared.ErrImportInProgress
	}
	l.held[noProject] = struct{}{}

	var once sync.Once
	release := func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, noProject)
			l.mu.Unlock()
		})
	}
	return release, nil
}

var _ ProjectLocker = (*MemoryLocker)(nil)
