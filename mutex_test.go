package amp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMutexBasicExclusion(t *testing.T) {
	mu, rc := NewMutex()
	require.Equal(t, Success, rc)
	defer mu.Destroy()

	const goroutines = 20
	const increments = 500
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				mu.Lock()
				counter++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, goroutines*increments, counter)
}

func TestMutexTryLock(t *testing.T) {
	mu, rc := NewMutex()
	require.Equal(t, Success, rc)
	defer mu.Destroy()

	require.Equal(t, Success, mu.TryLock())
	require.Equal(t, Busy, mu.TryLock())
	mu.Unlock()
	require.Equal(t, Success, mu.TryLock())
	mu.Unlock()
}

func TestMutexDebugRecursiveLockPanics(t *testing.T) {
	mu, rc := NewMutex(WithDebugChecks(true))
	require.Equal(t, Success, rc)
	defer mu.Destroy()

	mu.Lock()
	defer mu.Unlock()

	require.Panics(t, func() {
		mu.Lock()
	})
}

func TestMutexDebugUnlockByNonOwnerPanics(t *testing.T) {
	mu, rc := NewMutex(WithDebugChecks(true))
	require.Equal(t, Success, rc)
	defer mu.Destroy()

	mu.Lock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		require.Panics(t, func() {
			mu.Unlock()
		})
	}()
	<-done

	mu.Unlock()
}

func TestMutexDestroyBusyWhileLocked(t *testing.T) {
	mu, rc := NewMutex()
	require.Equal(t, Success, rc)

	mu.Lock()
	require.Equal(t, Busy, mu.Destroy())
	mu.Unlock()

	require.Equal(t, Success, mu.Destroy())
}

func TestMutexAssertHeld(t *testing.T) {
	mu, rc := NewMutex(WithDebugChecks(true))
	require.Equal(t, Success, rc)
	defer mu.Destroy()

	mu.Lock()
	require.NotPanics(t, mu.AssertHeld)
	mu.Unlock()

	require.Panics(t, mu.AssertHeld)
}
