package unbounded

import "errors"

// ErrClosed is returned by Send on a closed channel, and by RecvOrErr and
// PeekOrErr once a closed channel has no buffered values left.
var ErrClosed = errors.New("unbounded: channel closed")
