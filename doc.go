// Package amp provides portable concurrency primitives: mutexes, condition
// variables, counting semaphores, reusable barriers, threads, thread-local
// storage slots, and a thread array orchestrator, all built atop a thin
// per-OS host adapter ([internal/host]).
//
// # Architecture
//
// Every primitive follows the same lifecycle shape: a constructor that takes
// an [Allocator] and returns (handle, [ReturnCode]), operations that return
// a [ReturnCode] (or wrap one in an error for idiomatic callers), and a
// destructor that releases host resources. The condition variable
// ([CondVar]) is the one non-trivial algorithm: on hosts without a native
// condition variable it falls back to the emulated algorithm described in
// condvar_emulated.go, built from a mutex, a counting semaphore, and an
// auto-reset event.
//
// # Host Models
//
// [internal/host] supplies three structurally different backings:
//   - Linux: raw futex syscalls (native condition variable).
//   - Windows: kernel HANDLE objects (Mutex/Semaphore/Event), condition
//     variable emulated.
//   - Darwin and any other GOOS: buffered-channel-based mutex/semaphore/
//     event, condition variable emulated.
//
// # Thread Safety
//
// [Mutex], [Semaphore], and [Barrier] are safe for concurrent use by
// multiple goroutines. [Thread] and [ThreadArray] values are not safe for
// concurrent configuration, but their host-visible operations (Launch,
// Join) synchronize correctly with the underlying OS thread.
//
// # Usage
//
//	mu, rc := amp.NewMutex()
//	if rc != amp.Success {
//	    log.Fatal(rc)
//	}
//	defer mu.Destroy()
//
//	mu.Lock()
//	defer mu.Unlock()
//
// Pass [amp.WithAllocator] to use a custom [Allocator] instead of
// [DefaultAllocator]:
//
//	mu, rc := amp.NewMutex(amp.WithAllocator(myAllocator))
//
// # Error Types
//
// The package provides a [ReturnCode] taxonomy mirroring the historical C
// return-code convention ([Success], [NoMem], [Busy], [Timeout],
// [Unsupported], [Error]), plus a [CodeError] wrapper so callers preferring
// idiomatic Go error handling can use [errors.Is] against the package's
// sentinel errors ([ErrBusy], [ErrNoMem], [ErrTimeout], [ErrUnsupported]).
package amp
