package amp

import (
	"sync/atomic"

	"github.com/bjoernknafla/amp-go/internal/host"
)

// Mutex is a non-recursive mutual-exclusion lock (spec §4.3). The zero
// value is not usable; construct with [NewMutex].
type Mutex struct {
	alloc *Allocator
	buf   []byte
	host  host.Mutex

	locked atomic.Bool // true while held, tracked regardless of debug mode (spec §7 Destroy precondition)
	debug  bool
	owner  atomic.Int64 // goroutine ID of the current holder, or -1
}

// NewMutex constructs a [Mutex]. Returns (nil, [NoMem]) if the allocator
// can't satisfy the request.
func NewMutex(opts ...Option) (*Mutex, ReturnCode) {
	cfg := resolveOptions(opts)
	buf, rc := cfg.allocator.Alloc(1)
	if rc != Success {
		logAllocatorFailure("NewMutex", rc.Err())
		return nil, rc
	}
	m := &Mutex{
		alloc: cfg.allocator,
		buf:   buf,
		host:  host.NewMutex(),
		debug: cfg.debug,
	}
	m.owner.Store(-1)
	return m, Success
}

// Destroy releases the mutex's resources. Returns [Busy] without freeing
// anything if the mutex is currently locked (spec §7: every destroy either
// returns [Success] or a failure code, never frees a live resource).
func (m *Mutex) Destroy() ReturnCode {
	if m.locked.Load() {
		return Busy
	}
	m.alloc.Dealloc(m.buf)
	m.buf = nil
	return Success
}

// Lock blocks until the mutex is acquired.
func (m *Mutex) Lock() {
	if m.debug {
		if gid := goroutineID(); m.owner.Load() == gid {
			logMutexViolation("recursive_lock", m.owner.Load(), gid)
			panic("amp: recursive lock of non-recursive Mutex")
		}
	}
	m.host.Lock()
	m.locked.Store(true)
	if m.debug {
		m.owner.Store(goroutineID())
	}
}

// TryLock attempts to acquire the mutex without blocking, returning
// [Success] if acquired or [Busy] if already held.
func (m *Mutex) TryLock() ReturnCode {
	if m.debug {
		if gid := goroutineID(); m.owner.Load() == gid {
			logMutexViolation("recursive_lock", m.owner.Load(), gid)
			panic("amp: recursive lock of non-recursive Mutex")
		}
	}
	if !m.host.TryLock() {
		return Busy
	}
	m.locked.Store(true)
	if m.debug {
		m.owner.Store(goroutineID())
	}
	return Success
}

// Unlock releases the mutex. The caller must currently hold it.
func (m *Mutex) Unlock() {
	if m.debug {
		gid := goroutineID()
		if owner := m.owner.Load(); owner != gid {
			logMutexViolation("unlock_by_non_owner", owner, gid)
			panic("amp: unlock of Mutex by a goroutine that doesn't hold it")
		}
		m.owner.Store(-1)
	}
	m.locked.Store(false)
	m.host.Unlock()
}

// AssertHeld panics if the calling goroutine does not currently hold the
// mutex. It's a no-op unless [WithDebugChecks] was enabled at construction,
// mirroring nsync's Mu.AssertHeld.
func (m *Mutex) AssertHeld() {
	if !m.debug {
		return
	}
	if gid := goroutineID(); m.owner.Load() != gid {
		panic("amp: Mutex not held by calling goroutine")
	}
}
