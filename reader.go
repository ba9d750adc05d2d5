package spmcring

import "sync/atomic"

// Reader is a consuming end of a ring. Each reader owns its cursor, so
// readers never affect each other or the writer. A single Reader must be
// driven by one goroutine at a time; use Clone to read from several.
//
// TODO: readers cannot tell that the Writer was dropped; a caught-up reader
// keeps receiving Empty. Add a Close on Writer and a Closed status.
type Reader[T any] struct {
	buf   *buffer[T]
	next  atomic.Uint64 // next logical position to read, never > buf.written
	stats readerCounters
}

// Read receives the next element if one is available.
//
// It returns OK with the next element in order while the reader is within
// one lap of the writer, and Dropout with the oldest element still stored if
// the writer has overwritten the reader's position. If nothing new was
// published it returns the zero value and Empty.
//
// Read may spin briefly if the writer is storing into the slot being read.
func (r *Reader[T]) Read() (T, Status) {
	for retries := uint32(0); ; retries++ {
		if retries != 0 {
			r.stats.spins.Add(1)
			relax(retries, r.buf.yieldEvery)
		}

		written := r.buf.written.Load()
		next := r.next.Load()

		if next == written {
			r.stats.empty.Add(1)
			var zero T
			return zero, Empty
		}

		pos, status := next, OK
		if written-next > r.buf.capacity {
			// lapped: jump to the oldest element that still exists
			pos, status = written-r.buf.capacity, Dropout
		}

		v, tag, spins := r.buf.slot(pos).load(r.buf.yieldEvery)
		if spins != 0 {
			r.stats.spins.Add(uint64(spins))
		}
		if tag != pos {
			// the slot was reused after written was loaded; it may hold a
			// position that is not published yet, so load written again
			continue
		}

		if status == Dropout {
			r.stats.dropouts.Add(1)
			r.stats.lost.Add(pos - next)
		} else {
			r.stats.ok.Add(1)
		}
		r.next.Store(pos + 1)
		return v, status
	}
}

// SkipAhead moves the reader to the writer's current position, discarding
// everything unread. The next Read follows the usual rules from there:
// Empty if nothing was written since, OK if at most a lap was written, and
// Dropout otherwise.
func (r *Reader[T]) SkipAhead() {
	written := r.buf.written.Load()
	if next := r.next.Load(); written > next {
		r.stats.lost.Add(written - next)
	}
	r.stats.skipAheads.Add(1)
	r.next.Store(written)
}

// Clone returns an independent reader over the same ring, positioned where r
// is now. The clone starts with zeroed statistics.
func (r *Reader[T]) Clone() *Reader[T] {
	c := &Reader[T]{buf: r.buf}
	c.next.Store(r.next.Load())
	return c
}

// Position returns the logical position the reader will consume next.
func (r *Reader[T]) Position() uint64 {
	return r.next.Load()
}

// Lag returns the number of published elements the reader has not
// consumed. A lag above Capacity means the next Read is a Dropout.
func (r *Reader[T]) Lag() uint64 {
	next := r.next.Load()
	written := r.buf.written.Load()
	if written < next {
		return 0
	}
	return written - next
}

// Capacity returns the fixed ring capacity.
func (r *Reader[T]) Capacity() int {
	return int(r.buf.capacity)
}

// Stats returns a snapshot of the reader's counters. Safe to call from any
// goroutine.
func (r *Reader[T]) Stats() ReaderStats {
	return r.stats.snapshot()
}
