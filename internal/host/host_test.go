package host

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMutexMutualExclusion(t *testing.T) {
	mu := NewMutex()
	counter := 0
	var wg sync.WaitGroup
	const goroutines = 16
	const increments = 200
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
	mu := NewMutex()
	require.True(t, mu.TryLock())
	require.False(t, mu.TryLock())
	mu.Unlock()
	require.True(t, mu.TryLock())
	mu.Unlock()
}

func TestSemWaitPost(t *testing.T) {
	sem := NewSem(0)
	require.False(t, sem.TryWait())
	sem.Post()
	require.True(t, sem.TryWait())
}

func TestEventSetWait(t *testing.T) {
	ev := NewEvent()
	done := make(chan struct{})
	go func() {
		ev.Wait()
		close(done)
	}()
	ev.Set()
	<-done
}

func TestTLSKeyPerGoroutine(t *testing.T) {
	k := NewTLSKey()
	k.Set(1, "a")
	k.Set(2, "b")
	require.Equal(t, "a", k.Get(1))
	require.Equal(t, "b", k.Get(2))
	k.Delete(1)
	require.Nil(t, k.Get(1))
}
