package amp

import (
	"sync/atomic"

	"github.com/bjoernknafla/amp-go/byterange"
)

// ThreadArray is a fixed-size batch of [Thread] values, configured and
// launched together (spec §4.9). A failed [ThreadArray.LaunchAll] stops at
// the first failure without unwinding anything already launched; join
// always proceeds right-to-left, the reverse of launch order, so the most
// recently started thread is waited on first.
type ThreadArray struct {
	alloc   *Allocator
	buf     []byte
	threads []*Thread

	joinableCount atomic.Int64
}

// NewThreadArray constructs a [ThreadArray] of size n, each slot
// pre-launch. Returns (nil, [Error]) if n is not positive.
func NewThreadArray(n int, opts ...Option) (*ThreadArray, ReturnCode) {
	if n <= 0 {
		return nil, Error
	}
	cfg := resolveOptions(opts)
	buf, rc := cfg.allocator.Alloc(n)
	if rc != Success {
		logAllocatorFailure("NewThreadArray", rc.Err())
		return nil, rc
	}
	ta := &ThreadArray{alloc: cfg.allocator, buf: buf, threads: make([]*Thread, n)}
	for i := range ta.threads {
		t, rc := NewThread(WithAllocator(cfg.allocator))
		if rc != Success {
			ta.unwindConstruction(i)
			cfg.allocator.Dealloc(buf)
			return nil, rc
		}
		ta.threads[i] = t
	}
	return ta, Success
}

func (ta *ThreadArray) unwindConstruction(upTo int) {
	for i := 0; i < upTo; i++ {
		ta.threads[i].Destroy()
	}
}

// Len returns the number of slots in the array.
func (ta *ThreadArray) Len() int { return len(ta.threads) }

// ConfigureFunctions sets the slots covered by r to the single shared
// function fn, in index order (spec §4.9's configure_functions(range_begin,
// range_length, shared_function)). Returns [Error] if r is invalid,
// zero-length, or out of bounds, or [Busy] if any slot is currently
// joinable (configuring a live thread is a contract violation).
func (ta *ThreadArray) ConfigureFunctions(r byterange.Range, fn func(ctx any)) ReturnCode {
	if ta.JoinableCount() != 0 {
		return Busy
	}
	if !r.Valid() || r.Length == 0 || r.End() > len(ta.threads) {
		return Error
	}
	r.Iterate(func(index int) bool {
		ta.threads[index].SetFunction(fn)
		return true
	})
	return Success
}

// ConfigureContexts sets the slots covered by r to the single shared
// context value ctx, in index order (spec §4.9's
// configure_contexts(range_begin, range_length, shared_context)). Returns
// [Error] if r is invalid, zero-length, or out of bounds, or [Busy] if any
// slot is currently joinable.
func (ta *ThreadArray) ConfigureContexts(r byterange.Range, ctx any) ReturnCode {
	if ta.JoinableCount() != 0 {
		return Busy
	}
	if !r.Valid() || r.Length == 0 || r.End() > len(ta.threads) {
		return Error
	}
	r.Iterate(func(index int) bool {
		ta.threads[index].SetContext(ctx)
		return true
	})
	return Success
}

// Configure is an additive convenience beyond spec §4.9's own
// ConfigureFunctions/ConfigureContexts: it sets the function and a
// per-index context for the slots covered by r in one call, so a caller
// partitioning distinct context values across a range (e.g. via
// [byterange.Split]) doesn't need a separate ConfigureContexts pass. Every
// covered slot receives the same fn, with ctxs[i-r.Begin] as its context.
// A zero-length range is rejected with [Error] (spec §8's boundary
// behaviour), even though [byterange.Range] itself treats a zero-length
// range as structurally valid for its own, range-agnostic iteration use.
// Returns [Busy] if any slot is currently joinable.
func (ta *ThreadArray) Configure(r byterange.Range, fn func(ctx any), ctxs []any) ReturnCode {
	if ta.JoinableCount() != 0 {
		return Busy
	}
	if !r.Valid() || r.Length == 0 || r.End() > len(ta.threads) || len(ctxs) != r.Length {
		return Error
	}
	r.Iterate(func(index int) bool {
		ta.threads[index].SetFunction(fn)
		ta.threads[index].SetContext(ctxs[index-r.Begin])
		return true
	})
	return Success
}

// LaunchAll launches every slot in index order. On the first failure it
// stops without joining or unwinding anything already launched: the
// successfully launched slots are a prefix [0, i) of the array, reflected
// in JoinableCount. The caller decides what to do next — treat the
// failure as fatal, or coordinate with its already-running thread
// functions (e.g. via a shared readiness [CondVar]) so they wind down
// cleanly — and either way drains the launched prefix with [JoinAll].
func (ta *ThreadArray) LaunchAll() ReturnCode {
	for i, t := range ta.threads {
		if rc := t.Launch(); rc != Success {
			logThreadArrayPartialLaunch(i, len(ta.threads), rc.Err())
			return rc
		}
		ta.joinableCount.Add(1)
	}
	return Success
}

// JoinAll joins every joinable slot, right-to-left (reverse launch order),
// stopping at the first join failure. Slots that are not joinable (never
// launched, or already joined) are skipped without counting as a failure —
// per spec §4.9 this is what lets JoinAll drain an array left
// joinable_count == k by a [ThreadArray.LaunchAll] that stopped partway
// through. A real join failure, if one occurs, leaves every slot launched
// earlier than it un-joined, matching spec §4.9's "stopping on the first
// failure".
func (ta *ThreadArray) JoinAll() ReturnCode {
	for i := len(ta.threads) - 1; i >= 0; i-- {
		if ta.threads[i].state.load() != stateJoinable {
			continue
		}
		if rc := ta.threads[i].Join(); rc != Success {
			logThreadArrayJoinError(i, rc.Err())
			return rc
		}
		ta.joinableCount.Add(-1)
	}
	return Success
}

// JoinableCount returns the number of slots currently launched but not yet
// joined.
func (ta *ThreadArray) JoinableCount() int {
	return int(ta.joinableCount.Load())
}

// Destroy releases every slot and the array's own resources. Returns
// [Busy] without freeing anything if any slot is still joinable (spec
// §4.9/§7: destroy requires joinable_count == 0).
func (ta *ThreadArray) Destroy() ReturnCode {
	if ta.JoinableCount() != 0 {
		return Busy
	}
	for _, t := range ta.threads {
		t.Destroy()
	}
	ta.alloc.Dealloc(ta.buf)
	ta.buf = nil
	return Success
}
