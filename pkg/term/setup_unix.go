//go:build unix

package term

import (
	"fmt"
	"os"
	"sync"

	"github.com/zle-sh/zle/pkg/sys"
)

// Setup puts the terminal in the mode suitable for the line editor: no echo,
// no canonical line buffering, no signal generation and no flow control, with
// reads returning as soon as one byte is available.
//
// It returns a restore function that undoes the setup. The restore function
// is idempotent, so it is safe to both defer it and call it early on some
// exit path.
func Setup(in *os.File) (func() error, error) {
	// All fds pointing to the same terminal are equivalent, so the input file
	// is used for changing termios.
	fd := int(in.Fd())
	tio, err := sys.NewTermiosFromFd(fd)
	if err != nil {
		return nopRestore, fmt.Errorf("can't get terminal attribute: %w", err)
	}

	saved := tio.Copy()

	tio.SetICanon(false)
	tio.SetEcho(false)
	tio.SetISig(false)
	tio.SetIExten(false)
	tio.SetICRNL(false)
	tio.SetIXon(false)
	tio.SetVMin(1)
	tio.SetVTime(0)

	if err := tio.ApplyToFd(fd); err != nil {
		return nopRestore, fmt.Errorf("can't set terminal attribute: %w", err)
	}

	var once sync.Once
	return func() error {
		var err error
		once.Do(func() {
			err = saved.ApplyToFd(fd)
		})
		return err
	}, nil
}

func nopRestore() error { return nil }
