package amp

import "github.com/bjoernknafla/amp-go/internal/host"

// emulatedCondVar implements the portable condition-variable algorithm
// described by spec §4.4, for hosts without a native condition variable
// (every host in this package except Linux). It is the classic
// "win32 condition variables" construction: a waiter count guarded by a
// small critical section (countCS), a counting semaphore used to release
// waiters one or many at a time (wakeSem), and a one-shot event the last
// released waiter signals so Signal/Broadcast know when it's safe to
// return (doneEvent). A second critical section (wakeCS) is held by
// Signal/Broadcast across the *entire* release-then-await-ack sequence,
// and by Wait only across its registration step. That is what stops a
// late arriver from registering itself and stealing a wake-sem permit
// meant for the cohort a concurrent Signal/Broadcast is releasing: a new
// Wait call blocks trying to acquire wakeCS until the in-flight
// release finishes. Dropping wakeCS (i.e. only ever holding countCS
// briefly) is the well-known broken variant of this algorithm; spec §4.4
// calls it out explicitly and this implementation preserves the two
// critical sections accordingly.
type emulatedCondVar struct {
	wakeCS  host.Mutex // held by Signal/Broadcast for the whole release+ack sequence, and by Wait's registration step
	countCS host.Mutex // protects waitersCount, releasing, releaseRemaining, doneEvent
	wakeSem host.Sem

	waitersCount int

	releasing        bool // true while a Signal or Broadcast has released permits and is awaiting ack
	releaseRemaining int  // wake-sem permits released by the in-flight release that haven't been acked yet
	doneEvent        host.Event
}

func newEmulatedCondVar() *emulatedCondVar {
	return &emulatedCondVar{
		wakeCS:  host.NewMutex(),
		countCS: host.NewMutex(),
		wakeSem: host.NewSem(0),
	}
}

// wait releases mu, blocks until woken by signal or broadcast, then
// reacquires mu before returning.
func (c *emulatedCondVar) wait(mu host.Mutex) {
	c.wakeCS.Lock()
	c.countCS.Lock()
	c.waitersCount++
	c.countCS.Unlock()
	mu.Unlock()
	c.wakeCS.Unlock()

	c.wakeSem.Wait()

	c.countCS.Lock()
	c.waitersCount--
	var lastOfRelease bool
	var done host.Event
	if c.releasing {
		c.releaseRemaining--
		if c.releaseRemaining == 0 {
			lastOfRelease = true
			c.releasing = false
			done = c.doneEvent
		}
	}
	c.countCS.Unlock()

	if lastOfRelease {
		done.Set()
	}

	mu.Lock()
}

func (c *emulatedCondVar) signal() {
	c.wakeCS.Lock()
	defer c.wakeCS.Unlock()

	c.countCS.Lock()
	haveWaiters := c.waitersCount > 0
	var done host.Event
	if haveWaiters {
		c.releasing = true
		c.releaseRemaining = 1
		done = host.NewEvent()
		c.doneEvent = done
	}
	c.countCS.Unlock()

	if haveWaiters {
		c.wakeSem.Post()
		done.Wait()
	}
}

func (c *emulatedCondVar) broadcast() {
	c.wakeCS.Lock()
	defer c.wakeCS.Unlock()

	c.countCS.Lock()
	n := c.waitersCount
	var done host.Event
	if n > 0 {
		c.releasing = true
		c.releaseRemaining = n
		done = host.NewEvent()
		c.doneEvent = done
	}
	c.countCS.Unlock()

	if n > 0 {
		for i := 0; i < n; i++ {
			c.wakeSem.Post()
		}
		done.Wait()
	}
}
