package unbounded

import (
	"context"
	"iter"
	"log/slog"
)

// Channel is an unbounded multi-producer, single-consumer channel.
//
// Send never blocks: values are buffered until they are received. Close
// stops further sends, but everything sent before it is still delivered;
// only then do receivers observe the closed state.
//
// Any number of goroutines may call Send and Close. Receiving is meant for
// one consumer at a time. Concurrent receivers do not corrupt the channel
// and each value goes to exactly one of them, but which one is unspecified
// beyond wake-ups going to the longest-blocked caller first.
//
// The zero value is an open, empty channel. A Channel must not be copied
// after first use.
type Channel[T any] struct {
	q   queue[T]
	cfg config
}

// New creates an open, empty [Channel].
func New[T any](opts ...Option) *Channel[T] {
	return &Channel[T]{cfg: newConfig(opts)}
}

// Send appends v to the channel and wakes the oldest blocked receiver, if
// any. It returns [ErrClosed], leaving the buffer untouched, once the
// channel has been closed.
func (c *Channel[T]) Send(v T) error {
	if !c.q.push(v) {
		c.cfg.log().Debug("send on closed channel rejected")
		return ErrClosed
	}
	return nil
}

// Close marks the channel closed and wakes every blocked receiver.
// Values already buffered remain receivable. Close is idempotent.
func (c *Channel[T]) Close() {
	buffered, ok := c.q.close()
	if !ok {
		return
	}
	c.cfg.log().Debug("channel closed", slog.Int("buffered", buffered))
}

// Recv returns the next value, blocking while the channel is open and
// empty. ok is false once the channel is closed and drained. If ctx ends
// while waiting, Recv returns ctx.Err() and consumes nothing; a value that
// is already buffered is returned even if ctx is done.
func (c *Channel[T]) Recv(ctx context.Context) (v T, ok bool, err error) {
	return c.q.recv(ctx)
}

// RecvOrErr is like [Channel.Recv] but reports the closed state as
// [ErrClosed].
func (c *Channel[T]) RecvOrErr(ctx context.Context) (T, error) {
	return recvOrErr(ctx, &c.q)
}

// TryRecv dequeues the next value without blocking.
func (c *Channel[T]) TryRecv() (T, Status) {
	return c.q.tryRecv()
}

// Peek returns the next value without removing it. The status is [Empty]
// when the channel is open with nothing buffered, and [Closed] when it is
// closed and drained.
func (c *Channel[T]) Peek() (T, Status) {
	return c.q.peek()
}

// PeekOrErr is like [Channel.Peek], with ok reporting whether a value is
// buffered and [ErrClosed] reported instead of the [Closed] status.
func (c *Channel[T]) PeekOrErr() (v T, ok bool, err error) {
	return peekOrErr(&c.q)
}

// Len returns the number of buffered values.
func (c *Channel[T]) Len() int {
	return c.q.len()
}

// IsEmpty reports whether no values are buffered.
func (c *Channel[T]) IsEmpty() bool {
	return c.q.len() == 0
}

// IsClosed reports whether Close has been called. A closed channel may
// still hold buffered values.
func (c *Channel[T]) IsClosed() bool {
	return c.q.isClosed()
}

// Drain returns a sequence that receives values until the channel is
// closed and empty, or ctx ends. It consumes from the channel, so ranging
// over it a second time continues where the first range stopped.
//
//	for v := range ch.Drain(ctx) {
//	    handle(v)
//	}
func (c *Channel[T]) Drain(ctx context.Context) iter.Seq[T] {
	return c.q.drain(ctx)
}

// All is Drain without a deadline. The range only ends once the channel
// is closed.
func (c *Channel[T]) All() iter.Seq[T] {
	return c.q.drain(context.Background())
}

// Stats returns a snapshot of the channel's counters.
func (c *Channel[T]) Stats() Stats {
	return c.q.stats()
}
