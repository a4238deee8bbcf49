//go:build linux

package host

import (
	"sync/atomic"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Linux host model: raw futex syscalls, the same primitive glibc/NPTL build
// their own mutex/semaphore/condvar on top of. Grounded on
// xyproto-flapc/parallel.go's FutexWait/FutexWake/GetTID, reproduced here
// as the futex building blocks for Mutex, Sem, and a genuinely native
// condition variable (generation-counter based, so no emulation is needed
// on this host).

const hasNativeCondVar = true

const (
	futexWaitPrivate = 0 | 128
	futexWakePrivate = 1 | 128
)

func futexWait(addr *int32, val int32) {
	_, _, errno := syscall.Syscall6(
		syscall.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(futexWaitPrivate),
		uintptr(val),
		0, 0, 0,
	)
	_ = errno // EAGAIN (value already changed) and EINTR are both fine to ignore: caller rechecks.
}

func futexWake(addr *int32, count int) {
	syscall.Syscall6(
		syscall.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(futexWakePrivate),
		uintptr(count),
		0, 0, 0,
	)
}

// Gettid returns the calling OS thread's kernel thread ID.
func Gettid() int64 {
	return int64(unix.Gettid())
}

// futexMutex is a two-state (unlocked=0, locked=1) futex mutex, the
// standard "fast userspace mutex" construction.
type futexMutex struct {
	state int32
}

// NewMutex constructs the Linux futex-backed [Mutex].
func NewMutex() Mutex {
	return &futexMutex{}
}

func (m *futexMutex) Lock() {
	if atomic.CompareAndSwapInt32(&m.state, 0, 1) {
		return
	}
	for {
		// Mark contended (2) so the unlocker knows to wake a waiter.
		if atomic.SwapInt32(&m.state, 2) == 0 {
			return
		}
		futexWait(&m.state, 2)
	}
}

func (m *futexMutex) TryLock() bool {
	return atomic.CompareAndSwapInt32(&m.state, 0, 1)
}

func (m *futexMutex) Unlock() {
	if atomic.AddInt32(&m.state, -1) != 0 {
		atomic.StoreInt32(&m.state, 0)
		futexWake(&m.state, 1)
	}
}

// futexSem is a futex-backed counting semaphore.
type futexSem struct {
	count int32
}

// NewSem constructs a Linux futex-backed [Sem] with the given initial
// count.
func NewSem(initial int) Sem {
	return &futexSem{count: int32(initial)}
}

func (s *futexSem) Post() bool {
	for {
		cur := atomic.LoadInt32(&s.count)
		if cur >= SemaphoreCountMax {
			return false
		}
		if atomic.CompareAndSwapInt32(&s.count, cur, cur+1) {
			futexWake(&s.count, 1)
			return true
		}
	}
}

func (s *futexSem) Wait() {
	for {
		cur := atomic.LoadInt32(&s.count)
		if cur > 0 {
			if atomic.CompareAndSwapInt32(&s.count, cur, cur-1) {
				return
			}
			continue
		}
		futexWait(&s.count, 0)
	}
}

func (s *futexSem) TryWait() bool {
	for {
		cur := atomic.LoadInt32(&s.count)
		if cur <= 0 {
			return false
		}
		if atomic.CompareAndSwapInt32(&s.count, cur, cur-1) {
			return true
		}
	}
}

// futexEvent is an auto-reset event built on a futex word: 1 while set,
// 0 once a waiter has consumed the set. A Set that happens before Wait is
// kept until Wait consumes it.
type futexEvent struct {
	state int32
}

// NewEvent constructs a Linux futex-backed auto-reset [Event].
func NewEvent() Event {
	return &futexEvent{}
}

func (e *futexEvent) Set() {
	atomic.StoreInt32(&e.state, 1)
	futexWake(&e.state, 1)
}

func (e *futexEvent) Wait() {
	for !atomic.CompareAndSwapInt32(&e.state, 1, 0) {
		futexWait(&e.state, 0)
	}
}

// futexCondVar is a native condition variable using the classic
// generation-counter-plus-futex technique: Wait records the current
// generation, releases mu, sleeps on the futex until the generation
// changes, then reacquires mu.
type futexCondVar struct {
	gen int32
}

// NewNativeCondVar constructs the Linux native [NativeCondVar].
func NewNativeCondVar() NativeCondVar {
	return &futexCondVar{}
}

func (c *futexCondVar) Wait(mu Mutex) {
	g := atomic.LoadInt32(&c.gen)
	mu.Unlock()
	futexWait(&c.gen, g)
	mu.Lock()
}

func (c *futexCondVar) Signal() {
	atomic.AddInt32(&c.gen, 1)
	futexWake(&c.gen, 1)
}

func (c *futexCondVar) Broadcast() {
	atomic.AddInt32(&c.gen, 1)
	futexWake(&c.gen, 1<<30)
}
