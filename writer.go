package spmcring

import "sync/atomic"

// noCopy makes go vet's copylocks check report copies of a Writer.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Writer is the producing end of a ring. There is exactly one per ring,
// handed out by New, and it must be driven by one goroutine at a time.
type Writer[T any] struct {
	noCopy noCopy

	buf   *buffer[T]
	next  uint64 // mirrors buf.written
	spins atomic.Uint64
}

// Write publishes v, overwriting the oldest element once the ring is full.
// It never fails and never waits for readers to catch up. It may spin
// briefly if readers are copying out of the very slot being reused.
func (w *Writer[T]) Write(v T) {
	pos := w.next

	if spins := w.buf.slot(pos).store(pos, v, w.buf.yieldEvery); spins != 0 {
		w.spins.Add(uint64(spins))
	}

	// publish only after the slot is released with its new contents
	w.buf.written.Store(pos + 1)
	w.next = pos + 1
}

// Position returns the number of elements published so far.
func (w *Writer[T]) Position() uint64 {
	return w.buf.written.Load()
}

// Capacity returns the fixed ring capacity.
func (w *Writer[T]) Capacity() int {
	return int(w.buf.capacity)
}

// Stats returns a snapshot of the writer's counters. Safe to call from any
// goroutine.
func (w *Writer[T]) Stats() WriterStats {
	return WriterStats{
		Writes: w.buf.written.Load(),
		Spins:  w.spins.Load(),
	}
}
