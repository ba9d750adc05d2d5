// Package spmcring implements a bounded, overwriting, single-producer /
// multi-consumer ring buffer.
//
// The writer never waits for readers. It overwrites the oldest element once
// the ring is full, and readers that fall more than one lap behind notice it
// on their next Read, which returns Dropout together with the oldest element
// still available. Readers are cheap to Clone and each keeps its own cursor.
//
// Neither side allocates after New. The only waiting anywhere is a short spin
// on one slot while the other side copies a single element in or out.
package spmcring

import "fmt"

// New allocates a ring of the given capacity and returns its only Writer and
// a first Reader positioned at the start. More readers are made with
// Reader.Clone.
func New[T any](capacity int, opts ...Option) (*Writer[T], *Reader[T], error) {
	if capacity <= 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	buf := newBuffer[T](uint64(capacity), applyOptions(opts...))

	return &Writer[T]{buf: buf}, &Reader[T]{buf: buf}, nil
}

// MustNew is like New but panics if capacity is invalid.
func MustNew[T any](capacity int, opts ...Option) (*Writer[T], *Reader[T]) {
	w, r, err := New[T](capacity, opts...)
	if err != nil {
		panic(err)
	}
	return w, r
}
