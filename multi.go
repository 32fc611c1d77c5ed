package unbounded

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// MultiChannel is an unbounded broadcast channel with replay.
//
// Every value sent is recorded in the hub's history and pushed to every
// current [Receiver]. Fork creates a receiver primed with the complete
// history, so late subscribers see everything from the first send on.
// The history is never trimmed.
//
// Send, Fork and Close are serialized: a fork never misses a value and
// never sees one twice.
//
// The zero value is an open hub with no history. A MultiChannel must not
// be copied after first use.
type MultiChannel[T any] struct {
	mu        sync.Mutex
	history   []T
	receivers map[uuid.UUID]*Receiver[T]
	closed    bool

	cfg config
}

// NewMulti creates an open [MultiChannel] with no history.
func NewMulti[T any](opts ...Option) *MultiChannel[T] {
	return &MultiChannel[T]{
		receivers: make(map[uuid.UUID]*Receiver[T]),
		cfg:       newConfig(opts),
	}
}

// Send records v and delivers it to every current receiver, waking each
// one's blocked consumer. It returns [ErrClosed] after Close.
func (m *MultiChannel[T]) Send(v T) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		m.cfg.log().Debug("send on closed hub rejected")
		return ErrClosed
	}
	m.history = append(m.history, v)
	for _, r := range m.receivers {
		r.q.push(v)
	}
	m.mu.Unlock()
	return nil
}

// Close marks the hub closed, closes every current receiver and forgets
// them. Receivers keep their buffered values. Close is idempotent.
func (m *MultiChannel[T]) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	n := len(m.receivers)
	for _, r := range m.receivers {
		r.q.close()
	}
	m.receivers = nil
	m.mu.Unlock()

	m.cfg.log().Debug("hub closed", slog.Int("subscribers", n))
}

// Fork returns a new [Receiver] holding every value sent so far, in send
// order. If the hub is open, the receiver also gets all future sends;
// otherwise it is created closed and only the replayed values remain.
func (m *MultiChannel[T]) Fork() *Receiver[T] {
	r := newReceiver[T]()

	m.mu.Lock()
	r.q.prime(m.history)
	replayed := len(m.history)
	closed := m.closed
	if closed {
		r.q.close()
	} else {
		if m.receivers == nil {
			m.receivers = make(map[uuid.UUID]*Receiver[T])
		}
		m.receivers[r.id] = r
	}
	m.mu.Unlock()

	m.cfg.log().Debug("receiver forked",
		slog.String("receiver_id", r.id.String()),
		slog.Int("replayed", replayed),
		slog.Bool("closed", closed),
	)
	return r
}

// IsClosed reports whether Close has been called.
func (m *MultiChannel[T]) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Subscribers returns the number of receivers that will see future sends.
// It is zero once the hub is closed.
func (m *MultiChannel[T]) Subscribers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.receivers)
}

// Stats returns a snapshot of the hub's counters.
func (m *MultiChannel[T]) Stats() HubStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return HubStats{
		Sent:        uint64(len(m.history)),
		Subscribers: len(m.receivers),
		Closed:      m.closed,
	}
}
