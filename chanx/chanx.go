package chanx

import "context"

// Source is the receiving side of an unbounded channel. Recv blocks until
// a value is available; ok is false once the source is closed and drained.
type Source[T any] interface {
	Recv(ctx context.Context) (v T, ok bool, err error)
}

// Sink is the sending side of an unbounded channel. Send must not block.
type Sink[T any] interface {
	Send(v T) error
}
