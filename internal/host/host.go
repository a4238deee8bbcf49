// Package host is the per-OS adapter seam: every GOOS gets exactly one
// concrete mutex/semaphore/condition-variable/thread-local-slot backing,
// selected at compile time via build tags, following the teacher event
// loop's poller_linux.go/poller_darwin.go/poller_windows.go/fd_unix.go/
// fd_windows.go per-OS file organization.
package host

import (
	"sync"
)

// SemaphoreCountMax bounds the value a counting semaphore may reach,
// mirroring spec §4.5. Chosen to fit comfortably within every backing
// implementation's native limit (Linux futex counts, Windows semaphore
// LONG, and this package's buffered-channel fallback).
const SemaphoreCountMax = 1<<31 - 1

// ThreadLocalSlotMinAvailable is the minimum number of distinct
// thread-local slots a host is guaranteed to support concurrently, per
// spec §4.8.
const ThreadLocalSlotMinAvailable = 64

// Mutex is the host-native non-recursive mutex contract.
type Mutex interface {
	Lock()
	TryLock() bool
	Unlock()
}

// Sem is the host-native counting semaphore contract. Post reports whether
// the increment succeeded; it returns false if the count is already at
// [SemaphoreCountMax], per spec §4.5's signal-overflow behaviour.
type Sem interface {
	Post() bool
	Wait()
	TryWait() bool
}

// Event is a single-use-per-cycle auto-reset event: Wait blocks until Set
// is called, then Wait's caller (exactly one, if only one is waiting)
// returns and the event resets. Used as a building block for the emulated
// condition variable (spec §4.4).
type Event interface {
	Set()
	Wait()
}

// HasNativeCondVar reports whether this host provides a true native
// condition variable (Linux, via futex generation counters) as opposed to
// needing the emulated algorithm (spec §4.4).
func HasNativeCondVar() bool {
	return hasNativeCondVar
}

// NativeCondVar is implemented by hosts with HasNativeCondVar() == true.
type NativeCondVar interface {
	Wait(mu Mutex)
	Signal()
	Broadcast()
}

// tlsRegistry emulates thread-local storage keyed by the calling
// goroutine's ID. Real OS-level TLS isn't exposed by the Go runtime, so
// this is the idiomatic substitute: a Thread in this library pins its
// goroutine to an OS thread via runtime.LockOSThread, so goroutine ID and
// OS thread identity coincide for the lifetime of that thread.
type tlsRegistry struct {
	mu   sync.RWMutex
	data map[int64]any
}

// TLSKey is a thread-local slot handle.
type TLSKey struct {
	reg *tlsRegistry
}

// NewTLSKey allocates a new thread-local slot.
func NewTLSKey() *TLSKey {
	return &TLSKey{reg: &tlsRegistry{data: make(map[int64]any)}}
}

// Get returns the value stored for goroutineID, or nil if none.
func (k *TLSKey) Get(goroutineID int64) any {
	k.reg.mu.RLock()
	defer k.reg.mu.RUnlock()
	return k.reg.data[goroutineID]
}

// Set stores a value for goroutineID.
func (k *TLSKey) Set(goroutineID int64, val any) {
	k.reg.mu.Lock()
	defer k.reg.mu.Unlock()
	k.reg.data[goroutineID] = val
}

// Delete removes goroutineID's entry, e.g. when its owning thread exits.
func (k *TLSKey) Delete(goroutineID int64) {
	k.reg.mu.Lock()
	defer k.reg.mu.Unlock()
	delete(k.reg.data, goroutineID)
}
