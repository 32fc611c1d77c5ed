package unbounded

// Stats is a point-in-time snapshot of a [Channel] or [Receiver].
// The fields are read under one lock, so they are consistent with each
// other, but may be stale by the time the caller looks at them.
type Stats struct {
	// Enqueued counts values accepted into the buffer. For a Receiver
	// this includes the history replayed at fork time.
	Enqueued uint64

	// Dequeued counts values handed to consumers.
	Dequeued uint64

	// Buffered is the number of values waiting to be consumed.
	Buffered int

	// Waiting is the number of receive calls currently blocked.
	Waiting int

	Closed bool
}

// HubStats is a point-in-time snapshot of a [MultiChannel].
type HubStats struct {
	// Sent counts broadcast values; it equals the length of the history
	// a new Receiver is primed with.
	Sent uint64

	// Subscribers is the number of receivers that will see future sends.
	Subscribers int

	Closed bool
}
