package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsTasks(t *testing.T) {
	pool, err := NewPool(4)
	require.NoError(t, err)

	var counter atomic.Int64
	for i := 0; i < 20; i++ {
		err := pool.Submit(context.Background(), func(context.Context) {
			counter.Add(1)
		})
		require.NoError(t, err)
	}
	pool.Wait()
	assert.Equal(t, int64(20), counter.Load())
}

func TestPoolBoundsConcurrency(t *testing.T) {
	pool, err := NewPool(2)
	require.NoError(t, err)

	var mu sync.Mutex
	current, peak := 0, 0

	for i := 0; i < 10; i++ {
		err := pool.Submit(context.Background(), func(context.Context) {
			mu.Lock()
			current++
			if current > peak {
				peak = current
			}
			mu.Unlock()

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			current--
			mu.Unlock()
		})
		require.NoError(t, err)
	}
	pool.Wait()

	assert.LessOrEqual(t, peak, 2)
}

func TestPoolRejectsCancelledContext(t *testing.T) {
	pool, err := NewPool(1)
	require.NoError(t, err)

	// Занимаем единственный слот.
	release := make(chan struct{})
	err = pool.Submit(context.Background(), func(context.Context) {
		<-release
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = pool.Submit(ctx, func(context.Context) {})
	assert.Error(t, err)

	close(release)
	pool.Wait()
}

func TestPoolRecoversPanic(t *testing.T) {
	pool, err := NewPool(1)
	require.NoError(t, err)

	err = pool.Submit(context.Background(), func(context.Context) {
		panic("boom")
	})
	require.NoError(t, err)
	pool.Wait()

	// Слот освобожден, пул работоспособен.
	err = pool.Submit(context.Background(), func(context.Context) {})
	require.NoError(t, err)
	pool.Wait()
}

func TestPoolInvalidSize(t *testing.T) {
	_, err := NewPool(0)
	assert.Error(t, err)
}
