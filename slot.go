package spmcring

import (
	"runtime"
	"sync/atomic"
)

const (
	guardFree    int32 = 0
	guardWriting int32 = -1
)

// slot is one cell of the ring. tag and val are only touched while guard is
// held: exclusively by the writer (-1) or shared by n readers (n > 0).
type slot[T any] struct {
	guard atomic.Int32 // 0 free, -1 writer, n > 0 readers copying out
	tag   uint64       // logical position of val
	val   T            // actual value stored in this slot
}

// store copies v into the slot as logical position pos. It spins only while
// readers are copying the previous value out.
// Returns the number of failed guard attempts.
func (s *slot[T]) store(pos uint64, v T, yieldEvery uint32) uint32 {
	var spins uint32
	for !s.guard.CompareAndSwap(guardFree, guardWriting) {
		spins++
		relax(spins, yieldEvery)
	}

	s.val = v
	s.tag = pos

	if !s.guard.CompareAndSwap(guardWriting, guardFree) {
		panic("spmcring: slot guard changed while writing")
	}
	return spins
}

// load copies the value and its tag out of the slot. Any number of readers
// may load the same slot at once; they spin only while the writer stores.
func (s *slot[T]) load(yieldEvery uint32) (v T, tag uint64, spins uint32) {
	for {
		n := s.guard.Load()
		if n >= guardFree && s.guard.CompareAndSwap(n, n+1) {
			break
		}
		spins++
		relax(spins, yieldEvery)
	}

	v = s.val
	tag = s.tag

	if s.guard.Add(-1) < guardFree {
		panic("spmcring: slot guard released below zero")
	}
	return v, tag, spins
}

// relax yields the processor every yieldEvery spins. yieldEvery == 0 keeps
// the loop spinning.
func relax(spins, yieldEvery uint32) {
	if yieldEvery != 0 && spins%yieldEvery == 0 {
		runtime.Gosched()
	}
}
