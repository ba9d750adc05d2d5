package spmcring

import "math"

const goschedEvery = 64 // default spins between runtime.Gosched() calls

// Option configures a ring created by New.
type Option func(*options)

type options struct {
	yieldEvery uint32
}

// WithYieldEvery sets how many failed guard attempts a spinning Write or
// Read makes before calling runtime.Gosched(). Zero spins without ever
// yielding, which suits goroutines locked to a dedicated OS thread.
// Negative values are ignored.
func WithYieldEvery(n int) Option {
	return func(o *options) {
		switch {
		case n < 0:
		case uint64(n) > math.MaxUint32:
			o.yieldEvery = math.MaxUint32
		default:
			o.yieldEvery = uint32(n)
		}
	}
}

func applyOptions(opts ...Option) options {
	o := options{
		yieldEvery: goschedEvery,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
