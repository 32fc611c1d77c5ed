package unbounded

import (
	"context"
	"iter"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

func TestChannel_RecvInOrderThenClosed(t *testing.T) {
	ctx := testContext(t)
	ch := New[int]()

	for _, v := range []int{10, 20, 30} {
		require.NoError(t, ch.Send(v))
	}
	ch.Close()

	for _, want := range []int{10, 20, 30} {
		v, ok, err := ch.Recv(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, v)
	}

	v, ok, err := ch.Recv(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "fourth receive should report closed")
	assert.Zero(t, v)
}

func TestChannel_AllYieldsEverythingSentBeforeClose(t *testing.T) {
	ch := New[int]()
	want := make([]int, 100)
	for i := range want {
		want[i] = i
		require.NoError(t, ch.Send(i))
	}
	ch.Close()

	assert.Equal(t, want, collect(ch.All()))
	assert.True(t, ch.IsEmpty())
}

func TestChannel_SendAfterClose(t *testing.T) {
	ch := New[string]()
	require.NoError(t, ch.Send("kept"))
	ch.Close()

	err := ch.Send("dropped")
	assert.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, 1, ch.Len(), "rejected send must not change the buffer")

	v, ok, err := ch.Recv(testContext(t))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "kept", v)
}

func TestChannel_CloseIsIdempotent(t *testing.T) {
	ch := New[int]()
	require.NoError(t, ch.Send(1))

	ch.Close()
	ch.Close()

	assert.True(t, ch.IsClosed())
	assert.Equal(t, []int{1}, collect(ch.All()))
}

func TestChannel_RecvBlocksUntilSend(t *testing.T) {
	ctx := testContext(t)
	ch := New[int]()

	type result struct {
		v   int
		ok  bool
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, ok, err := ch.Recv(ctx)
		done <- result{v, ok, err}
	}()

	require.Eventually(t, func() bool { return ch.Stats().Waiting == 1 },
		time.Second, time.Millisecond)

	select {
	case <-done:
		t.Fatal("Recv returned before any send")
	default:
	}

	require.NoError(t, ch.Send(42))

	res := <-done
	require.NoError(t, res.err)
	assert.True(t, res.ok)
	assert.Equal(t, 42, res.v)
	assert.Zero(t, ch.Stats().Waiting)
}

func TestChannel_CloseWakesBlockedReceiver(t *testing.T) {
	ctx := testContext(t)
	ch := New[int]()

	done := make(chan bool, 1)
	go func() {
		_, ok, _ := ch.Recv(ctx)
		done <- ok
	}()

	require.Eventually(t, func() bool { return ch.Stats().Waiting == 1 },
		time.Second, time.Millisecond)
	ch.Close()

	assert.False(t, <-done)
}

func TestChannel_RecvOrErr(t *testing.T) {
	ctx := testContext(t)
	ch := New[int]()
	require.NoError(t, ch.Send(7))
	ch.Close()

	v, err := ch.RecvOrErr(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = ch.RecvOrErr(ctx)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestChannel_Peek(t *testing.T) {
	ch := New[int]()

	_, st := ch.Peek()
	assert.Equal(t, Empty, st)

	require.NoError(t, ch.Send(5))
	require.NoError(t, ch.Send(6))

	v, st := ch.Peek()
	assert.Equal(t, Ready, st)
	assert.Equal(t, 5, v)
	assert.Equal(t, 2, ch.Len(), "peek must not remove the head")

	ch.Close()
	v, st = ch.Peek()
	assert.Equal(t, Ready, st, "buffered values win over the closed flag")
	assert.Equal(t, 5, v)

	collect(ch.All())
	_, st = ch.Peek()
	assert.Equal(t, Closed, st)
}

func TestChannel_PeekOrErr(t *testing.T) {
	ch := New[int]()

	_, ok, err := ch.PeekOrErr()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, ch.Send(1))
	v, ok, err := ch.PeekOrErr()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	ch.Close()
	_, _ = ch.TryRecv()

	_, ok, err = ch.PeekOrErr()
	assert.ErrorIs(t, err, ErrClosed)
	assert.False(t, ok)
}

func TestChannel_TryRecv(t *testing.T) {
	ch := New[int]()

	_, st := ch.TryRecv()
	assert.Equal(t, Empty, st)

	require.NoError(t, ch.Send(3))
	v, st := ch.TryRecv()
	assert.Equal(t, Ready, st)
	assert.Equal(t, 3, v)
	assert.True(t, ch.IsEmpty())

	ch.Close()
	_, st = ch.TryRecv()
	assert.Equal(t, Closed, st)
}

func TestChannel_RecvContextCanceled(t *testing.T) {
	ch := New[int]()
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() {
		_, _, err := ch.Recv(ctx)
		errc <- err
	}()

	require.Eventually(t, func() bool { return ch.Stats().Waiting == 1 },
		time.Second, time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-errc, context.Canceled)
	assert.Zero(t, ch.Stats().Waiting, "canceled waiter must be deregistered")

	// The channel keeps working after an abandoned receive.
	require.NoError(t, ch.Send(9))
	v, ok, err := ch.Recv(testContext(t))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestChannel_RecvPrefersBufferedValueOverDoneContext(t *testing.T) {
	ch := New[int]()
	require.NoError(t, ch.Send(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, ok, err := ch.Recv(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok, err = ch.Recv(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}

func TestChannel_CanceledWaiterDoesNotStealWake(t *testing.T) {
	ch := New[int]()
	first, cancelFirst := context.WithCancel(context.Background())
	defer cancelFirst()

	firstErr := make(chan error, 1)
	go func() {
		_, _, err := ch.Recv(first)
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return ch.Stats().Waiting == 1 },
		time.Second, time.Millisecond)

	got := make(chan int, 1)
	go func() {
		v, _, _ := ch.Recv(testContext(t))
		got <- v
	}()
	require.Eventually(t, func() bool { return ch.Stats().Waiting == 2 },
		time.Second, time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	require.NoError(t, ch.Send(11))
	select {
	case v := <-got:
		assert.Equal(t, 11, v)
	case <-time.After(time.Second):
		t.Fatal("second receiver was never woken")
	}
}

func TestChannel_ManyProducers(t *testing.T) {
	const producers, perProducer = 4, 250
	ch := New[[2]int]()

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				assert.NoError(t, ch.Send([2]int{p, i}))
			}
		}()
	}
	go func() {
		wg.Wait()
		ch.Close()
	}()

	next := make([]int, producers)
	total := 0
	for v := range ch.Drain(testContext(t)) {
		p, i := v[0], v[1]
		assert.Equal(t, next[p], i, "producer %d out of order", p)
		next[p] = i + 1
		total++
	}
	assert.Equal(t, producers*perProducer, total)
}

func TestChannel_DrainStopsWhenContextEnds(t *testing.T) {
	ch := New[int]()
	require.NoError(t, ch.Send(1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.Equal(t, []int{1}, collect(ch.Drain(ctx)))
	assert.False(t, ch.IsClosed())
}

func TestChannel_DrainIsSinglePass(t *testing.T) {
	ch := New[int]()
	for i := range 4 {
		require.NoError(t, ch.Send(i))
	}
	ch.Close()

	seq := ch.All()
	var first []int
	for v := range seq {
		first = append(first, v)
		if v == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, first)
	assert.Equal(t, []int{2, 3}, collect(seq), "ranging again resumes, it does not restart")
	assert.Empty(t, collect(seq))
}

func TestChannel_ZeroValue(t *testing.T) {
	var ch Channel[string]
	require.NoError(t, ch.Send("x"))
	ch.Close()
	assert.Equal(t, []string{"x"}, collect(ch.All()))
}

func TestChannel_Stats(t *testing.T) {
	ch := New[int]()
	for i := range 3 {
		require.NoError(t, ch.Send(i))
	}
	_, _ = ch.TryRecv()
	ch.Close()

	assert.Equal(t, Stats{
		Enqueued: 3,
		Dequeued: 1,
		Buffered: 2,
		Closed:   true,
	}, ch.Stats())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "unknown", Status(42).String())
}
