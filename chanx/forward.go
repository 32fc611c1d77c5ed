package chanx

import "context"

// Forward returns a native channel that yields values from src until src
// is closed and drained or ctx is canceled, whichever comes first. The
// returned channel is then closed.
//
// The internal goroutine exits promptly on cancellation. A value already
// taken from src when ctx is canceled is dropped.
func Forward[T any](ctx context.Context, src Source[T]) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for {
			v, ok, err := src.Recv(ctx)
			if err != nil || !ok {
				return
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Feed sends every value received from in to dst until in is closed. It
// returns nil once in is closed, the error from dst.Send (typically
// unbounded.ErrClosed), or the context error if ctx is canceled first.
//
// Feed does not close dst.
func Feed[T any](ctx context.Context, in <-chan T, dst Sink[T]) error {
	for {
		select {
		case v, ok := <-in:
			if !ok {
				return nil
			}
			if err := dst.Send(v); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
