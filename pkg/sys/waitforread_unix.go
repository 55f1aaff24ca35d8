//go:build unix

package sys

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// WaitForRead blocks until any of the given files is ready to be read or
// timeout. A negative timeout means no timeout. It returns a boolean array
// indicating which files are ready to be read and any possible error.
func WaitForRead(timeout time.Duration, files ...*os.File) (ready []bool, err error) {
	pollFds := make([]unix.PollFd, len(files))
	for i, file := range files {
		pollFds[i] = unix.PollFd{Fd: int32(file.Fd()), Events: unix.POLLIN}
	}
	ms := -1
	if timeout >= 0 {
		ms = int(timeout.Milliseconds())
	}
	_, err = unix.Poll(pollFds, ms)
	if err != nil {
		return nil, err
	}
	ready = make([]bool, len(files))
	for i, fd := range pollFds {
		ready[i] = fd.Revents&(unix.POLLIN|unix.POLLHUP) != 0
	}
	return ready, nil
}
