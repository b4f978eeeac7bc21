package lock

import (
	"context"
	"sync"
	"testing"

	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLockerMutualExclusion(t *testing.T) {
	locker := NewMemoryLocker()
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "P100")
	require.NoError(t, err)

	_, err = locker.Acquire(ctx, "P100")
	assert.ErrorIs(t, err, shared.ErrImportInProgress)

	// a different project is unaffected
	otherRelease, err := locker.Acquire(ctx, "P200")
	require.NoError(t, err)
	otherRelease()

	release()

	release2, err := locker.Acquire(ctx, "P100")
	require.NoError(t, err)
	release2()
}

func TestMemoryLockerReleaseIdempotent(t *testing.T) {
	locker := NewMemoryLocker()

	release, err := locker.Acquire(context.Background(), "P100")
	require.NoError(t, err)

	release()
	release()

	again, err := locker.Acquire(context.Background(), "P100")
	require.NoError(t, err)
	again()
}

func TestMemoryLockerCancelledContext(t *testing.T) {
	locker := NewMemoryLocker()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := locker.Acquire(ctx, "P100")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryLockerConcurrentAcquire(t *testing.T) {
	locker := NewMemoryLocker()

	const workers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Acquire(context.Background(), "P100")
			if err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
				defer release()
			}
		}()
	}
	wg.Wait()

	// at least one goroutine won, and the lock is free afterwards
	assert.GreaterOrEqual(t, winners, 1)
	release, err := locker.Acquire(context.Background(), "P100")
	require.NoError(t, err)
	release()
}
