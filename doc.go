// Package unbounded provides unbounded in-process channels with explicit
// close semantics.
//
// Go's built-in channels have a fixed capacity, panic on send after close,
// and offer no way to replay earlier values to a late reader. This package
// offers two primitives that never block the sender and report misuse as
// errors instead of panics.
//
// # Channel
//
// [Channel] is a multi-producer, single-consumer FIFO:
//
//	ch := unbounded.New[int]()
//	go func() {
//	    for i := range 3 {
//	        _ = ch.Send(i)
//	    }
//	    ch.Close()
//	}()
//	for v := range ch.All() {
//	    fmt.Println(v)
//	}
//
// Send buffers the value and wakes the consumer if it is blocked. Close
// wakes every blocked receiver; values sent before Close are still
// delivered, after which receives report the closed state.
//
// # MultiChannel
//
// [MultiChannel] broadcasts every value to a set of [Receiver]s created
// with [MultiChannel.Fork]. Each receiver has its own buffer and is
// consumed independently. A receiver forked late is primed with the whole
// history, so every receiver observes the same sequence from the first
// value sent:
//
//	hub := unbounded.NewMulti[string]()
//	_ = hub.Send("a")
//	r := hub.Fork() // r already holds "a"
//	_ = hub.Send("b")
//	hub.Close()
//	// r yields "a", "b", then reports closed.
//
// # Reading
//
// Both [Channel] and [Receiver] expose the same read surface:
//
//   - Recv blocks until a value arrives, the channel is closed and empty
//     (ok == false), or the context ends.
//   - RecvOrErr reports the closed state as [ErrClosed].
//   - TryRecv and Peek never block and return a [Status]: [Ready],
//     [Empty] or [Closed].
//   - PeekOrErr reports the closed state as [ErrClosed].
//   - Drain and All return an [iter.Seq] for use with range.
//
// # Errors
//
// [ErrClosed] is the only error the package defines. Send returns it after
// Close; RecvOrErr and PeekOrErr return it once nothing is left to read.
//
// # Channel Bridges
//
// The [github.com/baxromumarov/unbounded/chanx] subpackage connects these
// channels to native Go channels (Forward, Feed) and provides batch helpers
// (SendBatch, RecvBatch, Collect).
package unbounded
