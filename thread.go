package amp

import "runtime"

// Thread is a single thread of execution (spec §4.7): configure a function
// and context, Launch it, then Join to wait for completion. A Thread backs
// its goroutine with a dedicated OS thread for its entire lifetime via
// runtime.LockOSThread, the idiomatic Go substitute for the "owns one OS
// thread" requirement without cgo.
//
// State machine: {pre-launch, joinable, joined}, enforced by fastState
// (state.go), adapted from the teacher event loop's FastState.
type Thread struct {
	alloc *Allocator
	buf   []byte

	fn  func(ctx any)
	ctx any

	state *fastState
	done  chan struct{}
}

// NewThread constructs a [Thread] in the pre-launch state. Call
// [Thread.SetFunction] before [Thread.Launch].
func NewThread(opts ...Option) (*Thread, ReturnCode) {
	cfg := resolveOptions(opts)
	buf, rc := cfg.allocator.Alloc(1)
	if rc != Success {
		logAllocatorFailure("NewThread", rc.Err())
		return nil, rc
	}
	return &Thread{
		alloc: cfg.allocator,
		buf:   buf,
		state: newFastState(),
		done:  make(chan struct{}),
	}, Success
}

// SetFunction sets the function this thread will run when launched. Must
// be called before Launch.
func (t *Thread) SetFunction(fn func(ctx any)) {
	t.fn = fn
}

// SetContext sets the opaque context value passed to the thread function.
func (t *Thread) SetContext(ctx any) {
	t.ctx = ctx
}

// Launch starts the thread's function on a dedicated OS thread. Returns
// [Busy] if the thread has already been launched, or [Error] if no
// function was configured.
func (t *Thread) Launch() ReturnCode {
	if t.fn == nil {
		return Error
	}
	if !t.state.tryTransition(statePreLaunch, stateJoinable) {
		return Busy
	}
	fn, ctx := t.fn, t.ctx
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(t.done)
		fn(ctx)
	}()
	return Success
}

// Join blocks until the thread's function returns. Returns [Busy] if the
// thread was never launched, or [Success] if it has already been joined
// (Join is idempotent once the thread has finished).
func (t *Thread) Join() ReturnCode {
	if t.state.load() == statePreLaunch {
		return Busy
	}
	<-t.done
	t.state.tryTransition(stateJoinable, stateJoined)
	return Success
}

// Destroy releases the thread's resources. Returns [Busy] without freeing
// anything if the thread is joinable, i.e. launched but not yet joined
// (spec §4.7/§7): destroying a joinable thread is a contract violation.
func (t *Thread) Destroy() ReturnCode {
	if t.state.load() == stateJoinable {
		return Busy
	}
	t.alloc.Dealloc(t.buf)
	t.buf = nil
	return Success
}

// Yield relinquishes the calling goroutine's remaining timeslice, the
// closest portable equivalent of a host yield primitive.
func Yield() {
	runtime.Gosched()
}

// CreateAndLaunch constructs a [Thread], configures it with fn and ctx, and
// launches it in one call (spec §4.7's convenience constructor).
func CreateAndLaunch(fn func(ctx any), ctx any, opts ...Option) (*Thread, ReturnCode) {
	t, rc := NewThread(opts...)
	if rc != Success {
		return nil, rc
	}
	t.SetFunction(fn)
	t.SetContext(ctx)
	if rc := t.Launch(); rc != Success {
		t.Destroy()
		return nil, rc
	}
	return t, Success
}

// JoinAndDestroy joins the thread, then destroys it regardless of the join
// outcome, returning the join's [ReturnCode].
func (t *Thread) JoinAndDestroy() ReturnCode {
	rc := t.Join()
	t.Destroy()
	return rc
}
