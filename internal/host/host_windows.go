//go:build windows

package host

import (
	"golang.org/x/sys/windows"
)

// Windows host model: kernel HANDLE objects (Mutex, Semaphore, Event),
// via golang.org/x/sys/windows. Windows has no portable userspace futex
// equivalent in this pack, so primitives are backed directly by kernel
// synchronization objects; the condition variable runs the emulated
// algorithm (condvar_emulated.go) on top of them, demonstrating that
// algorithm's portability to a structurally different host model than
// Linux's native futex condvar.

const hasNativeCondVar = false

// Gettid returns the calling OS thread's kernel thread ID.
func Gettid() int64 {
	return int64(windows.GetCurrentThreadId())
}

// winMutex wraps a Windows kernel mutex HANDLE.
type winMutex struct {
	h windows.Handle
}

// NewMutex constructs the Windows kernel-mutex-backed [Mutex].
func NewMutex() Mutex {
	h, err := windows.CreateMutex(nil, false, nil)
	if err != nil {
		panic(err)
	}
	return &winMutex{h: h}
}

func (m *winMutex) Lock() {
	windows.WaitForSingleObject(m.h, windows.INFINITE)
}

func (m *winMutex) TryLock() bool {
	ev, err := windows.WaitForSingleObject(m.h, 0)
	return err == nil && ev == windows.WAIT_OBJECT_0
}

func (m *winMutex) Unlock() {
	releaseMutex(m.h)
}

// winSem wraps a Windows kernel semaphore HANDLE.
type winSem struct {
	h windows.Handle
}

// NewSem constructs the Windows kernel-semaphore-backed [Sem].
func NewSem(initial int) Sem {
	h, err := windows.CreateSemaphore(nil, int32(initial), SemaphoreCountMax, nil)
	if err != nil {
		panic(err)
	}
	return &winSem{h: h}
}

func (s *winSem) Post() bool {
	return releaseSemaphore(s.h, 1)
}

func (s *winSem) Wait() {
	windows.WaitForSingleObject(s.h, windows.INFINITE)
}

func (s *winSem) TryWait() bool {
	ev, err := windows.WaitForSingleObject(s.h, 0)
	return err == nil && ev == windows.WAIT_OBJECT_0
}

// winEvent wraps a Windows kernel auto-reset event HANDLE.
type winEvent struct {
	h windows.Handle
}

// NewEvent constructs the Windows kernel-event-backed auto-reset [Event].
func NewEvent() Event {
	h, err := windows.CreateEvent(nil, 0 /* manual reset */, 0 /* initial state */, nil)
	if err != nil {
		panic(err)
	}
	return &winEvent{h: h}
}

func (e *winEvent) Set() {
	windows.SetEvent(e.h)
}

func (e *winEvent) Wait() {
	windows.WaitForSingleObject(e.h, windows.INFINITE)
}

func releaseMutex(h windows.Handle) {
	_ = windows.ReleaseMutex(h)
}

// releaseSemaphore reports success; ReleaseSemaphore fails (ERROR_TOO_MANY_POSTS)
// if releasing count would exceed the semaphore's maximum count.
func releaseSemaphore(h windows.Handle, count int32) bool {
	return windows.ReleaseSemaphore(h, count, nil) == nil
}
