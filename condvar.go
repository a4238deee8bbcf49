package amp

import (
	"sync/atomic"

	"github.com/bjoernknafla/amp-go/internal/host"
)

// CondVar is a condition variable (spec §4.4): Wait atomically releases an
// associated [Mutex] and blocks, Signal wakes at most one waiter, Broadcast
// wakes all current waiters. On Linux it's backed by a genuinely native
// condition variable; everywhere else it runs the emulated algorithm in
// condvar_emulated.go.
type CondVar struct {
	alloc *Allocator
	buf   []byte

	native   host.NativeCondVar // non-nil iff host.HasNativeCondVar()
	emulated *emulatedCondVar   // non-nil iff native == nil
	debug    bool

	waiters atomic.Int64 // goroutines currently blocked in Wait, tracked uniformly across native/emulated backings
}

// NewCondVar constructs a [CondVar].
func NewCondVar(opts ...Option) (*CondVar, ReturnCode) {
	cfg := resolveOptions(opts)
	buf, rc := cfg.allocator.Alloc(1)
	if rc != Success {
		logAllocatorFailure("NewCondVar", rc.Err())
		return nil, rc
	}
	cv := &CondVar{alloc: cfg.allocator, buf: buf, debug: cfg.debug}
	if host.HasNativeCondVar() {
		cv.native = host.NewNativeCondVar()
	} else {
		cv.emulated = newEmulatedCondVar()
	}
	return cv, Success
}

// Destroy releases the condition variable's resources. Returns [Busy]
// without freeing anything if a goroutine is currently blocked in Wait
// (spec §7).
func (c *CondVar) Destroy() ReturnCode {
	if c.waiters.Load() != 0 {
		return Busy
	}
	c.alloc.Dealloc(c.buf)
	c.buf = nil
	return Success
}

// Wait atomically releases mu and blocks the calling goroutine until woken
// by Signal or Broadcast, then reacquires mu before returning. mu must be
// held by the caller on entry. If debug checks are enabled on mu and mu is
// not held by the calling goroutine, Wait panics rather than corrupting
// mu's ownership bookkeeping. If debug checks are enabled only on the
// condition variable, mu records no owner, so Wait panics only when mu is
// not locked at all.
func (c *CondVar) Wait(mu *Mutex) {
	if mu.debug && mu.owner.Load() != goroutineID() {
		panic("amp: CondVar.Wait called without holding the associated Mutex")
	}
	if c.debug && !mu.debug && !mu.locked.Load() {
		panic("amp: CondVar.Wait called without holding the associated Mutex")
	}

	// Clear mu's debug ownership for the duration of the wait: another
	// goroutine will legitimately acquire mu while this one sleeps.
	if mu.debug {
		mu.owner.Store(-1)
	}

	mu.locked.Store(false)
	c.waiters.Add(1)
	if c.native != nil {
		c.native.Wait(mu.host)
	} else {
		c.emulated.wait(mu.host)
	}
	c.waiters.Add(-1)
	mu.locked.Store(true)

	if mu.debug {
		mu.owner.Store(goroutineID())
	}

	if c.debug {
		logCondVarWaitReturned()
	}
}

// Signal wakes at most one goroutine blocked in Wait, if any are waiting.
func (c *CondVar) Signal() {
	if c.native != nil {
		c.native.Signal()
	} else {
		c.emulated.signal()
	}
}

// Broadcast wakes every goroutine currently blocked in Wait.
func (c *CondVar) Broadcast() {
	if c.native != nil {
		c.native.Broadcast()
	} else {
		c.emulated.broadcast()
	}
}
