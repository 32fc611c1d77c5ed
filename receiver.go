package unbounded

import (
	"context"
	"iter"

	"github.com/google/uuid"
)

// Receiver is one subscriber of a [MultiChannel], created by
// [MultiChannel.Fork].
//
// A Receiver owns its own buffer: it starts with the hub's history at fork
// time and then gets a copy of every later broadcast. Consuming from one
// Receiver never affects another. When the hub closes, the Receiver keeps
// its buffered values and reports closure only after they are drained.
//
// Like [Channel], a Receiver is meant for a single consumer.
type Receiver[T any] struct {
	id uuid.UUID
	q  queue[T]
}

func newReceiver[T any]() *Receiver[T] {
	return &Receiver[T]{id: uuid.New()}
}

// ID identifies the receiver within its hub.
func (r *Receiver[T]) ID() uuid.UUID {
	return r.id
}

// Recv returns the next value, blocking while the hub is open and this
// receiver is empty. ok is false once closed and drained. Cancellation
// behaves as in [Channel.Recv].
func (r *Receiver[T]) Recv(ctx context.Context) (v T, ok bool, err error) {
	return r.q.recv(ctx)
}

// RecvOrErr is like [Receiver.Recv] but reports the closed state as
// [ErrClosed].
func (r *Receiver[T]) RecvOrErr(ctx context.Context) (T, error) {
	return recvOrErr(ctx, &r.q)
}

// TryRecv dequeues the next value without blocking.
func (r *Receiver[T]) TryRecv() (T, Status) {
	return r.q.tryRecv()
}

// Peek returns the next value without removing it.
func (r *Receiver[T]) Peek() (T, Status) {
	return r.q.peek()
}

// PeekOrErr is like [Receiver.Peek] with [ErrClosed] in place of the
// [Closed] status.
func (r *Receiver[T]) PeekOrErr() (v T, ok bool, err error) {
	return peekOrErr(&r.q)
}

// Len returns the number of values buffered in this receiver.
func (r *Receiver[T]) Len() int {
	return r.q.len()
}

// IsEmpty reports whether this receiver has no buffered values.
func (r *Receiver[T]) IsEmpty() bool {
	return r.q.len() == 0
}

// IsClosed reports whether this receiver will get no further values
// beyond what it already buffers.
func (r *Receiver[T]) IsClosed() bool {
	return r.q.isClosed()
}

// Drain returns a sequence over this receiver's values; see
// [Channel.Drain].
func (r *Receiver[T]) Drain(ctx context.Context) iter.Seq[T] {
	return r.q.drain(ctx)
}

// All is Drain without a deadline.
func (r *Receiver[T]) All() iter.Seq[T] {
	return r.q.drain(context.Background())
}

// Stats returns a snapshot of this receiver's counters.
func (r *Receiver[T]) Stats() Stats {
	return r.q.stats()
}
