package amp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThreadLocalSlotIsolatesGoroutines(t *testing.T) {
	slot, rc := NewThreadLocalSlot()
	require.Equal(t, Success, rc)
	defer slot.Destroy()

	require.Nil(t, slot.Get())

	const n = 10
	var wg sync.WaitGroup
	wg.Add(n)
	results := make([]any, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			slot.Set(i)
			results[i] = slot.Get()
		}(i)
	}
	wg.Wait()

	for i, v := range results {
		require.Equal(t, i, v)
	}
}

func TestThreadLocalSlotClear(t *testing.T) {
	slot, rc := NewThreadLocalSlot()
	require.Equal(t, Success, rc)
	defer slot.Destroy()

	slot.Set(42)
	require.Equal(t, 42, slot.Get())
	slot.Clear()
	require.Nil(t, slot.Get())
}
