package spmcring

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// buffer is the storage shared by the writer and every reader. Handles
// keep it alive; it is released once the last one is unreachable.
type buffer[T any] struct {
	_       cpu.CacheLinePad
	written atomic.Uint64 // elements ever published, stored only by the writer
	_       cpu.CacheLinePad

	capacity   uint64
	mask       uint64 // capacity-1 when capacity is a power of two, else 0
	yieldEvery uint32
	slots      []slot[T]
}

func newBuffer[T any](capacity uint64, o options) *buffer[T] {
	b := &buffer[T]{
		capacity:   capacity,
		yieldEvery: o.yieldEvery,
		slots:      make([]slot[T], capacity),
	}
	if capacity&(capacity-1) == 0 {
		b.mask = capacity - 1
	}
	return b
}

// slot returns the physical slot for logical position pos.
func (b *buffer[T]) slot(pos uint64) *slot[T] {
	if b.mask != 0 {
		return &b.slots[pos&b.mask]
	}
	return &b.slots[pos%b.capacity]
}
