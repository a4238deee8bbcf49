// logging.go - Structured Logging Interface for amp
//
// Package-level configuration for structured logging, backed by
// github.com/joeycumines/logiface and its stumpy JSON writer. This mirrors
// the teacher event loop's "package-level global, swappable logger" design:
// logging is an infrastructure cross-cutting concern shared by every
// primitive constructed in a process, so a per-instance logging surface
// would only add configuration noise for no benefit.
//
// Usage:
//
//	amp.SetLogger(logiface.L.New(
//	    stumpy.L.WithStumpy(),
//	    logiface.L.WithLevel(logiface.LevelInformational),
//	))

package amp

import (
	"sync"

	"github.com/joeycumines/go-utilpkg/logiface/stumpy"
	"github.com/joeycumines/logiface"
)

// Event is the logiface event type used by this package's logger, an alias
// for stumpy's event implementation so callers configuring [SetLogger] need
// not import stumpy directly.
type Event = stumpy.Event

var globalLogger struct {
	sync.RWMutex
	logger *logiface.Logger[*Event]
}

// SetLogger installs the package-level structured logger. Passing nil
// disables logging (the default). Construct a logger with
// logiface.L.New(stumpy.L.WithStumpy(), logiface.L.WithLevel(...)).
func SetLogger(l *logiface.Logger[*Event]) {
	globalLogger.Lock()
	defer globalLogger.Unlock()
	globalLogger.logger = l
}

func logger() *logiface.Logger[*Event] {
	globalLogger.RLock()
	defer globalLogger.RUnlock()
	return globalLogger.logger
}

// logMutexViolation logs a debug-mode mutex contract violation (recursive
// lock, or unlock by a goroutine that doesn't hold it).
func logMutexViolation(kind string, ownerGoroutine, callerGoroutine int64) {
	l := logger()
	if l == nil {
		return
	}
	l.Err().Str("component", "mutex").Str("violation", kind).
		Int64("owner_goroutine", ownerGoroutine).
		Int64("caller_goroutine", callerGoroutine).
		Log("mutex contract violation")
}

// logCondVarWaitReturned logs, at trace level, every return from
// [CondVar.Wait] when debug checks are enabled on that condition variable.
// A wait can legally return without the caller's predicate holding
// (spec §4.4's spurious wakeup); this is a breadcrumb for diagnosing a
// waiter that spins without making progress, not an error report.
func logCondVarWaitReturned() {
	l := logger()
	if l == nil {
		return
	}
	l.Trace().Str("component", "condvar").Log("wait returned")
}

// logThreadArrayPartialLaunch logs a thread array launch that failed partway
// through, reporting how many threads were successfully launched before the
// failure. Those threads are left joinable for the caller to drain with
// JoinAll; LaunchAll does not unwind them itself.
func logThreadArrayPartialLaunch(launched, total int, cause error) {
	l := logger()
	if l == nil {
		return
	}
	l.Warning().Str("component", "thread_array").
		Int("launched", launched).Int("total", total).
		Err(cause).
		Log("partial launch, already-launched threads left joinable")
}

// logThreadArrayJoinError logs a join failure for one slot of a thread
// array; JoinAll stops at that slot, leaving the slots to its left
// un-joined.
func logThreadArrayJoinError(index int, cause error) {
	l := logger()
	if l == nil {
		return
	}
	l.Err().Str("component", "thread_array").Int("index", index).
		Err(cause).
		Log("join failed")
}

// logAllocatorFailure logs an allocation failure at the point a primitive's
// constructor gives up and returns [NoMem].
func logAllocatorFailure(op string, cause error) {
	l := logger()
	if l == nil {
		return
	}
	l.Err().Str("component", "allocator").Str("op", op).Err(cause).
		Log("allocation failed")
}
