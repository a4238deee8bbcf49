package amp

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSemaphoreWaitSignal(t *testing.T) {
	sem, rc := NewSemaphore(0)
	require.Equal(t, Success, rc)
	defer sem.Destroy()

	require.Equal(t, Busy, sem.TryWait())

	require.Equal(t, Success, sem.Signal())
	require.Equal(t, Success, sem.TryWait())
}

func TestSemaphoreAsBinaryLock(t *testing.T) {
	// Scenario: a semaphore initialized to 1 used as a mutual-exclusion
	// lock across 20,000 increments from many goroutines.
	sem, rc := NewSemaphore(1)
	require.Equal(t, Success, rc)
	defer sem.Destroy()

	const goroutines = 20
	const perGoroutine = 1000
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				sem.Wait()
				counter++
				sem.Signal()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, goroutines*perGoroutine, counter)
}

func TestSemaphoreDestroyBusyWhileWaiterBlocked(t *testing.T) {
	sem, rc := NewSemaphore(0)
	require.Equal(t, Success, rc)

	waiting := make(chan struct{})
	go func() {
		close(waiting)
		sem.Wait()
	}()
	<-waiting
	time.Sleep(20 * time.Millisecond) // let the waiter actually park

	require.Equal(t, Busy, sem.Destroy())

	require.Equal(t, Success, sem.Signal())
	time.Sleep(20 * time.Millisecond) // let the waiter return from Wait
	require.Equal(t, Success, sem.Destroy())
}

func TestNewSemaphoreRejectsOutOfRangeInitial(t *testing.T) {
	_, rc := NewSemaphore(-1)
	require.Equal(t, Error, rc)

	_, rc = NewSemaphore(SemaphoreCountMax + 1)
	require.Equal(t, Error, rc)
}
