package amp

// BarrierSerial is the sentinel [ReturnCode] returned to exactly one
// participant of each barrier cycle (spec §4.6), distinguishing it as the
// thread responsible for any post-cycle serial work.
const BarrierSerial ReturnCode = 100

// Barrier is a reusable barrier for a fixed number of participants (spec
// §4.6): Wait blocks until that many participants have called Wait, then
// releases them all and starts a new cycle (generation).
type Barrier struct {
	alloc *Allocator
	buf   []byte

	mu   *Mutex
	cond *CondVar

	threshold int
	count     int
	gen       int
}

// NewBarrier constructs a [Barrier] for the given number of participants.
// Returns (nil, [Error]) if count is not positive.
func NewBarrier(count int, opts ...Option) (*Barrier, ReturnCode) {
	if count <= 0 {
		return nil, Error
	}
	cfg := resolveOptions(opts)
	buf, rc := cfg.allocator.Alloc(1)
	if rc != Success {
		logAllocatorFailure("NewBarrier", rc.Err())
		return nil, rc
	}
	mu, rc := NewMutex(WithAllocator(cfg.allocator))
	if rc != Success {
		cfg.allocator.Dealloc(buf)
		return nil, rc
	}
	cond, rc := NewCondVar(WithAllocator(cfg.allocator))
	if rc != Success {
		mu.Destroy()
		cfg.allocator.Dealloc(buf)
		return nil, rc
	}
	return &Barrier{
		alloc:     cfg.allocator,
		buf:       buf,
		mu:        mu,
		cond:      cond,
		threshold: count,
	}, Success
}

// Destroy releases the barrier's resources. Returns [Busy] without freeing
// anything if a cycle is currently in progress, i.e. current-count !=
// init-count (spec §4.6/§7): some participant has called Wait for the
// current cycle but the cohort hasn't yet filled and been released.
func (b *Barrier) Destroy() ReturnCode {
	b.mu.Lock()
	busy := b.count != 0
	b.mu.Unlock()
	if busy {
		return Busy
	}
	b.cond.Destroy()
	b.mu.Destroy()
	b.alloc.Dealloc(b.buf)
	b.buf = nil
	return Success
}

// Wait blocks until threshold participants have called Wait in the current
// cycle, then releases them all simultaneously and begins a new cycle.
// Exactly one caller per cycle receives [BarrierSerial]; the rest receive
// [Success].
func (b *Barrier) Wait() ReturnCode {
	b.mu.Lock()
	defer b.mu.Unlock()

	gen := b.gen
	b.count++

	if b.count == b.threshold {
		b.count = 0
		b.gen++
		b.cond.Broadcast()
		return BarrierSerial
	}

	for gen == b.gen {
		b.cond.Wait(b.mu)
	}
	return Success
}
