package unbounded

import (
	"context"
	"iter"
	"sync"

	"github.com/gammazero/deque"
)

// queue is the buffering and wake-up core shared by Channel and Receiver.
//
// Every waiter is a channel that gets closed exactly once: either by a push
// (oldest waiter first) or by close (all of them). A waiter is removed from
// the registry under mu before it is closed, so it can never be woken twice.
type queue[T any] struct {
	mu      sync.Mutex
	items   deque.Deque[T]
	waiters []chan struct{}
	closed  bool

	enqueued uint64
	dequeued uint64
}

func (q *queue[T]) push(v T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.items.PushBack(v)
	q.enqueued++
	q.wakeOne()
	return true
}

// prime seeds an open queue with values that precede any push.
func (q *queue[T]) prime(values []T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed || len(values) == 0 {
		return
	}
	for _, v := range values {
		q.items.PushBack(v)
	}
	q.enqueued += uint64(len(values))
}

// close marks the queue closed and releases every waiter. It reports the
// number of values still buffered and whether this call did the closing.
func (q *queue[T]) close() (int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return q.items.Len(), false
	}
	q.closed = true
	for _, w := range q.waiters {
		close(w)
	}
	q.waiters = nil
	return q.items.Len(), true
}

// wakeOne releases the oldest waiter. Caller holds mu.
func (q *queue[T]) wakeOne() {
	if len(q.waiters) == 0 {
		return
	}
	w := q.waiters[0]
	q.waiters[0] = nil
	q.waiters = q.waiters[1:]
	close(w)
}

// dropWaiter removes w from the registry. It reports false if w was
// already woken. Caller holds mu.
func (q *queue[T]) dropWaiter(w chan struct{}) bool {
	for i, x := range q.waiters {
		if x == w {
			q.waiters = append(q.waiters[:i], q.waiters[i+1:]...)
			return true
		}
	}
	return false
}

// popLocked dequeues the head. Caller holds mu.
func (q *queue[T]) popLocked() (T, bool) {
	if q.items.Len() == 0 {
		var zero T
		return zero, false
	}
	q.dequeued++
	return q.items.PopFront(), true
}

func (q *queue[T]) recv(ctx context.Context) (T, bool, error) {
	var zero T
	for {
		q.mu.Lock()
		if v, ok := q.popLocked(); ok {
			q.mu.Unlock()
			return v, true, nil
		}
		if q.closed {
			q.mu.Unlock()
			return zero, false, nil
		}
		if err := ctx.Err(); err != nil {
			q.mu.Unlock()
			return zero, false, err
		}
		w := make(chan struct{})
		q.waiters = append(q.waiters, w)
		q.mu.Unlock()

		select {
		case <-w:
			// Re-check under the lock: a close may have landed after the
			// push that woke us, and buffered values still come first.
		case <-ctx.Done():
			q.mu.Lock()
			if !q.dropWaiter(w) && q.items.Len() > 0 {
				// We were woken for a value we will not take; pass it on.
				q.wakeOne()
			}
			q.mu.Unlock()
			return zero, false, ctx.Err()
		}
	}
}

func (q *queue[T]) tryRecv() (T, Status) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if v, ok := q.popLocked(); ok {
		return v, Ready
	}
	var zero T
	if q.closed {
		return zero, Closed
	}
	return zero, Empty
}

func (q *queue[T]) peek() (T, Status) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.Len() > 0 {
		return q.items.Front(), Ready
	}
	var zero T
	if q.closed {
		return zero, Closed
	}
	return zero, Empty
}

func (q *queue[T]) drain(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok, _ := q.recv(ctx)
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (q *queue[T]) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

func (q *queue[T]) isClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

func (q *queue[T]) stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return Stats{
		Enqueued: q.enqueued,
		Dequeued: q.dequeued,
		Buffered: q.items.Len(),
		Waiting:  len(q.waiters),
		Closed:   q.closed,
	}
}

// recvOrErr maps the closed outcome of recv to ErrClosed.
func recvOrErr[T any](ctx context.Context, q *queue[T]) (T, error) {
	v, ok, err := q.recv(ctx)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, ErrClosed
	}
	return v, nil
}

// peekOrErr maps the closed outcome of peek to ErrClosed.
func peekOrErr[T any](q *queue[T]) (T, bool, error) {
	v, st := q.peek()
	switch st {
	case Ready:
		return v, true, nil
	case Closed:
		return v, false, ErrClosed
	default:
		return v, false, nil
	}
}
