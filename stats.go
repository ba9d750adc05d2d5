package spmcring

import "sync/atomic"

// WriterStats is a snapshot of a Writer's counters.
type WriterStats struct {
	Writes uint64 // elements published
	Spins  uint64 // failed guard attempts against readers copying out
}

// ReaderStats is a snapshot of a Reader's counters.
type ReaderStats struct {
	OK         uint64
	Dropouts   uint64
	Empty      uint64
	Lost       uint64 // positions jumped over by dropouts and skip-aheads
	SkipAheads uint64
	Spins      uint64 // failed guard attempts against the writer
}

// Reads returns the number of Read calls, whatever their outcome.
func (s ReaderStats) Reads() uint64 {
	return s.OK + s.Dropouts + s.Empty
}

// readerCounters are written by the goroutine driving the reader and may be
// snapshotted from any other.
type readerCounters struct {
	ok         atomic.Uint64
	dropouts   atomic.Uint64
	empty      atomic.Uint64
	lost       atomic.Uint64
	skipAheads atomic.Uint64
	spins      atomic.Uint64
}

func (c *readerCounters) snapshot() ReaderStats {
	return ReaderStats{
		OK:         c.ok.Load(),
		Dropouts:   c.dropouts.Load(),
		Empty:      c.empty.Load(),
		Lost:       c.lost.Load(),
		SkipAheads: c.skipAheads.Load(),
		Spins:      c.spins.Load(),
	}
}
