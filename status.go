package spmcring

// Status is the outcome of Reader.Read.
type Status uint8

const (
	// Empty means the reader is caught up with the writer and nothing new
	// was published. The value returned alongside it is the zero value.
	Empty Status = iota

	// OK means the next element in order was received.
	OK

	// Dropout means the reader was overtaken and elements were lost. The
	// returned value is the oldest element still in the ring. Calling
	// SkipAhead right after a Dropout trades more loss for lower latency.
	Dropout
)

// HasValue reports whether a value was returned with s.
func (s Status) HasValue() bool {
	return s == OK || s == Dropout
}

func (s Status) String() string {
	switch s {
	case Empty:
		return "empty"
	case OK:
		return "ok"
	case Dropout:
		return "dropout"
	default:
		return "unknown"
	}
}
