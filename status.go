package unbounded

// Status tags the outcome of a non-blocking read.
//
// It exists because a channel of T has no spare value of T to mean
// "nothing here": the tag is carried next to the value instead.
type Status uint8

const (
	// Empty means the channel is open but holds no buffered value.
	Empty Status = iota

	// Ready means a value was returned.
	Ready

	// Closed means the channel is closed and every buffered value has
	// been consumed. No value will ever arrive again.
	Closed
)

func (s Status) String() string {
	switch s {
	case Empty:
		return "empty"
	case Ready:
		return "ready"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}
