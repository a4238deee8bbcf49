package amp

import "github.com/bjoernknafla/amp-go/internal/host"

// ThreadLocalSlotMinAvailable is the minimum number of distinct
// thread-local slots guaranteed to be usable concurrently (spec §4.8).
const ThreadLocalSlotMinAvailable = host.ThreadLocalSlotMinAvailable

// ThreadLocalSlot is a thread-local storage slot (spec §4.8): each
// goroutine that calls Set/Get sees its own independent value, keyed by
// the calling goroutine's identity (see goroutineID).
type ThreadLocalSlot struct {
	alloc *Allocator
	buf   []byte
	key   *host.TLSKey
}

// NewThreadLocalSlot constructs a [ThreadLocalSlot].
func NewThreadLocalSlot(opts ...Option) (*ThreadLocalSlot, ReturnCode) {
	cfg := resolveOptions(opts)
	buf, rc := cfg.allocator.Alloc(1)
	if rc != Success {
		logAllocatorFailure("NewThreadLocalSlot", rc.Err())
		return nil, rc
	}
	return &ThreadLocalSlot{alloc: cfg.allocator, buf: buf, key: host.NewTLSKey()}, Success
}

// Destroy releases the slot's resources.
func (s *ThreadLocalSlot) Destroy() {
	s.alloc.Dealloc(s.buf)
	s.buf = nil
}

// Get returns the value stored for the calling goroutine, or nil if none
// has been set.
func (s *ThreadLocalSlot) Get() any {
	return s.key.Get(goroutineID())
}

// Set stores val for the calling goroutine.
func (s *ThreadLocalSlot) Set(val any) {
	s.key.Set(goroutineID(), val)
}

// Clear removes the calling goroutine's value, if any.
func (s *ThreadLocalSlot) Clear() {
	s.key.Delete(goroutineID())
}
