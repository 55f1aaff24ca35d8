//go:build unix

package sys

import "golang.org/x/sys/unix"

// Termios wraps the terminal attribute structure, providing setters for the
// handful of flags the editor cares about.
type Termios unix.Termios

// NewTermiosFromFd reads the current terminal attributes of fd.
func NewTermiosFromFd(fd int) (*Termios, error) {
	tio, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	if err != nil {
		return nil, err
	}
	return (*Termios)(tio), nil
}

// ApplyToFd applies the attributes to fd.
func (tio *Termios) ApplyToFd(fd int) error {
	return unix.IoctlSetTermios(fd, setAttrNowIOCTL, (*unix.Termios)(tio))
}

// Copy returns a copy of the attributes, suitable for later restoration.
func (tio *Termios) Copy() *Termios {
	v := *tio
	return &v
}

// SetVTime sets the timeout in deciseconds for noncanonical reads.
func (tio *Termios) SetVTime(v uint8) {
	tio.Cc[unix.VTIME] = v
}

// SetVMin sets the minimal number of characters for noncanonical reads.
func (tio *Termios) SetVMin(v uint8) {
	tio.Cc[unix.VMIN] = v
}

// SetICanon sets whether the terminal is in canonical mode.
func (tio *Termios) SetICanon(v bool) {
	setFlag(&tio.Lflag, unix.ICANON, v)
}

// SetIExten sets whether impl-defined input processing is enabled.
func (tio *Termios) SetIExten(v bool) {
	setFlag(&tio.Lflag, unix.IEXTEN, v)
}

// SetEcho sets whether input is echoed back.
func (tio *Termios) SetEcho(v bool) {
	setFlag(&tio.Lflag, unix.ECHO, v)
}

// SetISig sets whether INTR, QUIT and SUSP characters generate signals.
func (tio *Termios) SetISig(v bool) {
	setFlag(&tio.Lflag, unix.ISIG, v)
}

// SetICRNL sets whether input CR is translated to NL.
func (tio *Termios) SetICRNL(v bool) {
	setFlag(&tio.Iflag, unix.ICRNL, v)
}

// SetIXon sets whether XON/XOFF flow control is enabled on input.
func (tio *Termios) SetIXon(v bool) {
	setFlag(&tio.Iflag, unix.IXON, v)
}

// The termios flag fields are uint64 on 64-bit darwin but uint32 everywhere
// else, hence the type parameter.
func setFlag[T uint32 | uint64](flag *T, mask T, v bool) {
	if v {
		*flag |= mask
	} else {
		*flag &= ^mask
	}
}
