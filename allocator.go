package amp

import (
	"sync"
	"sync/atomic"
)

// Allocator bundles the allocation capability threaded through every
// primitive's constructor and destructor, mirroring the original library's
// allocator contract (spec §4.2): plain allocation, zeroed allocation, and
// deallocation, plus an opaque context value passed to each call so a
// caller can plug in an arena, a pool, or accounting of their own.
//
// Unlike the C original, which passes raw pointers and byte sizes, this
// realization works in terms of byte slices: AllocFunc/ZeroAllocFunc return
// a []byte of the requested length, and DeallocFunc is given the same
// slice back. This keeps the abstraction idiomatic (no unsafe.Pointer
// arithmetic) while preserving the allocate/zero-allocate/deallocate shape
// and the ability to observe allocation counts.
type Allocator struct {
	Context       any
	AllocFunc     func(ctx any, size int) ([]byte, ReturnCode)
	ZeroAllocFunc func(ctx any, size int) ([]byte, ReturnCode)
	DeallocFunc   func(ctx any, buf []byte)
}

// Alloc requests size bytes, uninitialized.
func (a *Allocator) Alloc(size int) ([]byte, ReturnCode) {
	return a.AllocFunc(a.Context, size)
}

// ZeroAlloc requests size bytes, zero-initialized.
func (a *Allocator) ZeroAlloc(size int) ([]byte, ReturnCode) {
	return a.ZeroAllocFunc(a.Context, size)
}

// Dealloc releases a buffer previously returned by Alloc or ZeroAlloc.
func (a *Allocator) Dealloc(buf []byte) {
	a.DeallocFunc(a.Context, buf)
}

// defaultAllocatorContext tracks outstanding allocations so the round-trip
// testable property from spec §8 ("create; destroy leaves the allocator's
// net outstanding allocation count unchanged") is directly observable.
type defaultAllocatorContext struct {
	outstanding atomic.Int64
}

// Outstanding returns the net number of allocations made through this
// allocator that have not yet been deallocated.
func (c *defaultAllocatorContext) Outstanding() int64 {
	return c.outstanding.Load()
}

// defaultAllocator is the process-wide default instance (spec §3's data
// model: "Either the process-wide default (static) or created from a
// source allocator"). It is built once, lazily, and never torn down.
var defaultAllocator = sync.OnceValue(newDefaultAllocator)

// DefaultAllocator returns the process-wide [Allocator] backed by the Go
// runtime's own allocator (make([]byte, ...)), with allocation-count
// bookkeeping attached via its Context. Every call to NewXxx in this
// package uses DefaultAllocator when no [WithAllocator] option is
// supplied. Every call returns the same instance.
func DefaultAllocator() *Allocator {
	return defaultAllocator()
}

func newDefaultAllocator() *Allocator {
	ctx := &defaultAllocatorContext{}
	return &Allocator{
		Context: ctx,
		AllocFunc: func(ctx any, size int) ([]byte, ReturnCode) {
			c := ctx.(*defaultAllocatorContext)
			c.outstanding.Add(1)
			return make([]byte, size), Success
		},
		ZeroAllocFunc: func(ctx any, size int) ([]byte, ReturnCode) {
			c := ctx.(*defaultAllocatorContext)
			c.outstanding.Add(1)
			return make([]byte, size), Success
		},
		DeallocFunc: func(ctx any, buf []byte) {
			c := ctx.(*defaultAllocatorContext)
			if buf != nil {
				c.outstanding.Add(-1)
			}
		},
	}
}
