package amp

// constructConfig holds the configuration shared by every primitive's
// constructor: which allocator to use, and whether to enable the
// debug-mode contract checks described by spec §7.
type constructConfig struct {
	allocator *Allocator
	debug     bool
}

// Option configures a primitive constructor (NewMutex, NewCondVar,
// NewSemaphore, NewBarrier, NewThreadArray, ...). It follows the teacher
// event loop's closure-backed functional-option pattern.
type Option interface {
	apply(*constructConfig)
}

type optionImpl struct {
	applyFunc func(*constructConfig)
}

func (o *optionImpl) apply(cfg *constructConfig) {
	o.applyFunc(cfg)
}

// WithDebugChecks enables or disables the extra runtime checks described by
// spec §7: recursive-lock detection and unlock-by-non-owner detection on
// [Mutex], and wait-without-holding-the-lock detection on [CondVar]. These
// checks cost a goroutine-ID lookup per operation, so they default to off.
func WithDebugChecks(enabled bool) Option {
	return &optionImpl{func(cfg *constructConfig) {
		cfg.debug = enabled
	}}
}

// WithAllocator supplies a custom [Allocator]. Constructors that omit this
// option use [DefaultAllocator].
func WithAllocator(alloc *Allocator) Option {
	return &optionImpl{func(cfg *constructConfig) {
		cfg.allocator = alloc
	}}
}

// resolveOptions applies a slice of Option to a fresh constructConfig,
// defaulting the allocator to [DefaultAllocator] if none was supplied.
func resolveOptions(opts []Option) *constructConfig {
	cfg := &constructConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(cfg)
	}
	if cfg.allocator == nil {
		cfg.allocator = DefaultAllocator()
	}
	return cfg
}
