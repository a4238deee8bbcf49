package amp

import (
	"sync/atomic"

	"github.com/bjoernknafla/amp-go/internal/host"
)

// SemaphoreCountMax is the largest value a [Semaphore] may reach (spec
// §4.5).
const SemaphoreCountMax = host.SemaphoreCountMax

// Semaphore is a counting semaphore bounded by [SemaphoreCountMax] (spec
// §4.5).
type Semaphore struct {
	alloc *Allocator
	buf   []byte
	host  host.Sem

	waiters atomic.Int64 // goroutines currently blocked in Wait
}

// NewSemaphore constructs a [Semaphore] with the given initial count.
// Returns (nil, [Error]) if initial is negative or exceeds
// [SemaphoreCountMax].
func NewSemaphore(initial int, opts ...Option) (*Semaphore, ReturnCode) {
	if initial < 0 || initial > SemaphoreCountMax {
		return nil, Error
	}
	cfg := resolveOptions(opts)
	buf, rc := cfg.allocator.Alloc(1)
	if rc != Success {
		logAllocatorFailure("NewSemaphore", rc.Err())
		return nil, rc
	}
	return &Semaphore{alloc: cfg.allocator, buf: buf, host: host.NewSem(initial)}, Success
}

// Destroy releases the semaphore's resources. Returns [Busy] without
// freeing anything if a goroutine is currently blocked in Wait (spec §7).
func (s *Semaphore) Destroy() ReturnCode {
	if s.waiters.Load() != 0 {
		return Busy
	}
	s.alloc.Dealloc(s.buf)
	s.buf = nil
	return Success
}

// Wait blocks until the semaphore's count is positive, then decrements it.
func (s *Semaphore) Wait() {
	s.waiters.Add(1)
	s.host.Wait()
	s.waiters.Add(-1)
}

// TryWait attempts to decrement the semaphore without blocking, returning
// [Success] if it decremented or [Busy] if the count was zero.
func (s *Semaphore) TryWait() ReturnCode {
	if s.host.TryWait() {
		return Success
	}
	return Busy
}

// Signal increments the semaphore's count, waking one waiter if any are
// blocked in Wait. Returns [Error] if incrementing would exceed
// [SemaphoreCountMax] — callers that never exceed the bound in practice
// may ignore the return value.
func (s *Semaphore) Signal() ReturnCode {
	if !s.host.Post() {
		return Error
	}
	return Success
}
