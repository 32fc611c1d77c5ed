package chanx

import "context"

// SendBatch sends each value in values to dst, stopping at the first
// error. It returns nil if all values were sent.
func SendBatch[T any](dst Sink[T], values []T) error {
	for _, v := range values {
		if err := dst.Send(v); err != nil {
			return err
		}
	}
	return nil
}

// RecvBatch receives up to n values from src. It returns the collected
// values and nil on success, or the values so far and the context error
// if ctx is canceled. If src is closed before n values arrive, it returns
// what it has with a nil error.
//
// RecvBatch panics if n is not positive.
func RecvBatch[T any](ctx context.Context, src Source[T], n int) ([]T, error) {
	if n <= 0 {
		panic("chanx: RecvBatch requires n > 0")
	}
	result := make([]T, 0, n)
	for range n {
		v, ok, err := src.Recv(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil // closed
		}
		result = append(result, v)
	}
	return result, nil
}

// Collect receives from src until it is closed and drained. On
// cancellation it returns the values so far together with ctx's error.
func Collect[T any](ctx context.Context, src Source[T]) ([]T, error) {
	var result []T
	for {
		v, ok, err := src.Recv(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, v)
	}
}
