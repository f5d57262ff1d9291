package eventuals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticThreadPool_scheduleRunsOnPinnedCPU(t *testing.T) {
	t.Parallel()

	pool := NewStaticThreadPool()
	defer func() {
		pool.Shutdown()
		pool.Wait()
	}()

	ctx, err := pool.Schedule(Requirements{Name: "work", Pinned: Pinned{CPU: 0, Set: true}})
	require.NoError(t, err)

	done := make(chan struct{})
	onPinnedWorker := false
	ctx.Continue(func() {
		onPinnedWorker = pool.Continuable(ctx)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled work never ran")
	}
	assert.True(t, onPinnedWorker, "work must run on the worker for CPU 0")
}

func TestStaticThreadPool_scheduleRejectsOutOfRangeCPU(t *testing.T) {
	t.Parallel()

	pool := NewStaticThreadPool()
	defer func() {
		pool.Shutdown()
		pool.Wait()
	}()

	_, err := pool.Schedule(Requirements{Name: "bad", Pinned: Pinned{CPU: pool.Concurrency() + 1000, Set: true}})
	assert.Error(t, err)
}

func TestStaticThreadPool_submitAndShutdown(t *testing.T) {
	t.Parallel()

	pool := NewStaticThreadPool()

	ctx, err := pool.Schedule(Requirements{Name: "submit-shutdown"})
	require.NoError(t, err)

	sideEffect := false
	done := make(chan struct{})
	pool.Submit(ctx, "submit-shutdown", func() {
		sideEffect = true
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("submitted task never ran")
	}
	assert.True(t, sideEffect)

	pool.Shutdown()
	pool.Wait()
}

func TestStaticThreadPool_leastLoadedPicksEmptiestQueue(t *testing.T) {
	t.Parallel()

	pool := NewStaticThreadPool()
	defer func() {
		pool.Shutdown()
		pool.Wait()
	}()

	if pool.Concurrency() < 2 {
		t.Skip("requires at least 2 logical CPUs")
	}

	// Make CPU 0's queue look busier than every other (all still empty), so
	// the emptiest queue is CPU 1, the lowest index among the ties.
	pool.depth[0].Add(1)
	defer pool.depth[0].Add(-1)

	ctx, err := pool.Schedule(Requirements{Name: "auto"})
	require.NoError(t, err)
	cpu, ok := ctx.Pinned()
	assert.True(t, ok)
	assert.GreaterOrEqual(t, cpu, 0)
	assert.Less(t, cpu, pool.Concurrency())
	assert.Equal(t, 1, cpu)
}
