// Package chanx bridges unbounded channels and native Go channels.
//
// Unbounded channels never block the sender, which makes them awkward to
// use in a select statement, and native channels cannot buffer without a
// fixed capacity. chanx connects the two:
//
//   - [Forward]: pumps a [Source] into a native channel usable in select.
//   - [Feed]: copies a native channel into a [Sink] until it closes.
//   - [SendBatch] and [RecvBatch]: send or receive several values in one
//     call, stopping at the first closed channel or cancellation.
//   - [Collect]: receives everything until the source is closed.
//
// [Source] is satisfied by *unbounded.Channel and *unbounded.Receiver;
// [Sink] by *unbounded.Channel and *unbounded.MultiChannel.
//
// Functions that spawn goroutines tie them to a [context.Context] so they
// terminate when it is canceled.
package chanx
