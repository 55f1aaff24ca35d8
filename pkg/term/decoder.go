package term

import (
	"unicode/utf8"

	"github.com/zle-sh/zle/pkg/ui"
)

// Decoder decodes a stream of terminal input bytes into Events. It is an
// explicit state machine fed one byte at a time, so it composes with both
// blocking readers and asynchronous input sources. Since a lone Escape byte
// is a prefix of every escape sequence, the caller reports expiry of the
// escape-sequence timeout by calling Timeout.
type Decoder struct {
	state decodeState
	// Bytes of a UTF-8 encoded rune that is not yet complete.
	partial []byte
	// Numerical arguments of a CSI sequence being assembled.
	nums []int
}

type decodeState int

const (
	// Not in the middle of any sequence.
	ground decodeState = iota
	// Seen ESC, awaiting the byte that selects the kind of sequence.
	escape
	// Seen ESC [, accumulating numerical arguments.
	csi
)

// Feed advances the decoder with the next input byte. It returns the decoded
// event and true if the byte completes an event; otherwise the decoder is
// either in the middle of a sequence (see Pending) or has discarded the byte
// as unrecognized input.
func (d *Decoder) Feed(b byte) (Event, bool) {
	switch d.state {
	case ground:
		if b == 0x1b {
			d.state = escape
			return nil, false
		}
		return d.feedGround(b)
	case escape:
		if b == '[' {
			d.state = csi
			d.nums = d.nums[:0]
			return nil, false
		}
		// ESC followed by anything else is taken as an Alt-modified key.
		d.state = ground
		k := ctrlModify(rune(b))
		k.Mod |= ui.Alt
		return KeyEvent(k), true
	case csi:
		return d.feedCSI(b)
	}
	panic("unreachable")
}

// Pending returns whether the decoder is in the middle of a sequence.
func (d *Decoder) Pending() bool {
	return d.state != ground || len(d.partial) > 0
}

// Timeout tells the decoder that no further byte will arrive in time to
// complete the current sequence. A dangling ESC is resolved to its key event;
// an incomplete CSI sequence or UTF-8 rune is discarded.
func (d *Decoder) Timeout() (Event, bool) {
	state := d.state
	d.state = ground
	d.partial = d.partial[:0]
	if state == escape {
		// A lone Escape. Terminals send no dedicated code for it.
		return KeyEvent(ui.K('[', ui.Ctrl)), true
	}
	return nil, false
}

func (d *Decoder) feedGround(b byte) (Event, bool) {
	if b < utf8.RuneSelf {
		d.partial = d.partial[:0]
		return KeyEvent(ctrlModify(rune(b))), true
	}
	d.partial = append(d.partial, b)
	if !utf8.FullRune(d.partial) {
		return nil, false
	}
	r, _ := utf8.DecodeRune(d.partial)
	d.partial = d.partial[:0]
	if r == utf8.RuneError {
		return nil, false
	}
	return KeyEvent(ui.K(r)), true
}

func (d *Decoder) feedCSI(b byte) (Event, bool) {
	switch {
	case b == ';':
		d.nums = append(d.nums, 0)
		return nil, false
	case '0' <= b && b <= '9':
		if len(d.nums) == 0 {
			d.nums = append(d.nums, 0)
		}
		cur := len(d.nums) - 1
		d.nums[cur] = d.nums[cur]*10 + int(b-'0')
		return nil, false
	}
	// Any other byte terminates the sequence.
	d.state = ground
	if k, ok := parseCSI(d.nums, rune(b)); ok {
		return KeyEvent(k), true
	}
	return nil, false
}

// Determines whether a rune corresponds to a Ctrl-modified key and returns
// the ui.Key the rune represents.
func ctrlModify(r rune) ui.Key {
	switch r {
	case 0x0:
		return ui.K('`', ui.Ctrl) // ^@
	case 0x0d:
		// Terminals send CR for the Enter key; NL only appears when icrnl
		// translation is left on.
		return ui.K(ui.Enter)
	case 0x1e:
		return ui.K('6', ui.Ctrl) // ^^
	case 0x1f:
		return ui.K('/', ui.Ctrl) // ^_
	case ui.Tab, ui.Enter, ui.Backspace: // ^I ^J ^?
		// Ambiguous Ctrl keys; prefer the non-Ctrl form as they are more
		// likely.
		return ui.K(r)
	default:
		if 0x1 <= r && r <= 0x1d {
			return ui.K(r+0x40, ui.Ctrl)
		}
	}
	return ui.K(r)
}

// CSI sequences identified by the final rune, e.g. ESC [ A for Up.
var csiSeqByLast = map[rune]ui.Key{
	'A': ui.K(ui.Up), 'B': ui.K(ui.Down), 'C': ui.K(ui.Right), 'D': ui.K(ui.Left),
	'H': ui.K(ui.Home), 'F': ui.K(ui.End),
	'Z': ui.K(ui.Tab, ui.Shift),
}

// CSI sequences ending in '~' and identified by the numerical argument, e.g.
// ESC [ 3 ~ for Delete. 1/4 and 7/8 are Home/End variants sent by tmux and
// urxvt respectively.
var csiSeqTilde = map[int]rune{
	1: ui.Home, 4: ui.End,
	2: ui.Insert, 3: ui.Delete,
	5: ui.PageUp, 6: ui.PageDown,
	7: ui.Home, 8: ui.End,
}

func parseCSI(nums []int, last rune) (ui.Key, bool) {
	if k, ok := csiSeqByLast[last]; ok && len(nums) == 0 {
		return k, true
	}
	if last == '~' && len(nums) == 1 {
		if r, ok := csiSeqTilde[nums[0]]; ok {
			return ui.K(r), true
		}
	}
	return ui.Key{}, false
}
