//go:build unix

package term

import (
	"io"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/zle-sh/zle/pkg/sys"
)

// Timeout for bytes in escape sequences. Modern terminal emulators send
// escape sequences very fast, so 10ms is more than sufficient. SSH
// connections on a slow link might be problematic though.
var keySeqTimeout = 10 * time.Millisecond

// NewReader creates a new Reader on the given terminal file.
func NewReader(f *os.File) (Reader, error) {
	rStop, wStop, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	return &reader{file: f, rStop: rStop, wStop: wStop}, nil
}

type reader struct {
	file  *os.File
	rStop *os.File
	wStop *os.File
	// Held while a read is in progress, so that Close can wait for an
	// outstanding read to be aborted before releasing the stop pipe.
	mutex sync.Mutex

	d Decoder
}

func (rd *reader) ReadEvent() (Event, error) {
	timeout := time.Duration(-1)
	for {
		b, err := rd.readByte(timeout)
		if err != nil {
			if err == errTimeout {
				if ev, ok := rd.d.Timeout(); ok {
					return ev, nil
				}
				timeout = -1
				continue
			}
			return nil, err
		}
		if ev, ok := rd.d.Feed(b); ok {
			return ev, nil
		}
		if rd.d.Pending() {
			timeout = keySeqTimeout
		} else {
			// Unrecognized input, discarded by the decoder.
			timeout = -1
		}
	}
}

func (rd *reader) readByte(timeout time.Duration) (byte, error) {
	rd.mutex.Lock()
	defer rd.mutex.Unlock()
	for {
		ready, err := sys.WaitForRead(timeout, rd.file, rd.rStop)
		if err != nil {
			if err == syscall.EINTR {
				continue
			}
			return 0, err
		}
		if ready[1] {
			var b [1]byte
			rd.rStop.Read(b[:])
			return 0, ErrStopped
		}
		if !ready[0] {
			return 0, errTimeout
		}
		var b [1]byte
		nr, err := rd.file.Read(b[:])
		if err != nil {
			return 0, err
		}
		if nr != 1 {
			return 0, io.ErrNoProgress
		}
		return b[0], nil
	}
}

func (rd *reader) Close() {
	rd.wStop.Write([]byte{'q'})
	// Wait for any outstanding read to see the stop byte and return.
	rd.mutex.Lock()
	rd.mutex.Unlock()
	rd.rStop.Close()
	rd.wStop.Close()
}
