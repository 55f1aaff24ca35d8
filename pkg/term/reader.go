package term

import "errors"

// Reader reads events from the terminal.
type Reader interface {
	// ReadEvent reads a single event from the terminal. End of the input
	// stream is reported as io.EOF.
	ReadEvent() (Event, error)
	// Close aborts any outstanding ReadEvent call, making it return
	// ErrStopped, and releases resources associated with the Reader. It does
	// not close the underlying file.
	Close()
}

// ErrStopped is returned by Reader when Close is called during a ReadEvent
// call.
var ErrStopped = errors.New("stopped")

var errTimeout = errors.New("timed out")
