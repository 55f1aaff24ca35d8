package term

import (
	"testing"

	"github.com/zle-sh/zle/pkg/ui"
)

// feedAll feeds all bytes and returns the decoded events.
func feedAll(d *Decoder, bs []byte) []Event {
	var events []Event
	for _, b := range bs {
		if ev, ok := d.Feed(b); ok {
			events = append(events, ev)
		}
	}
	return events
}

func TestDecoder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Event
	}{
		{"printable", "ab", []Event{K('a'), K('b')}},
		{"ctrl keys", "\x01\x05\x0b\x15\x12\x04\x03",
			[]Event{K('A', ui.Ctrl), K('E', ui.Ctrl), K('K', ui.Ctrl),
				K('U', ui.Ctrl), K('R', ui.Ctrl), K('D', ui.Ctrl), K('C', ui.Ctrl)}},
		{"cr is enter", "\r", []Event{K(ui.Enter)}},
		{"nl is enter", "\n", []Event{K(ui.Enter)}},
		{"backspace byte", "\x7f", []Event{K(ui.Backspace)}},
		{"ctrl-h", "\x08", []Event{K('H', ui.Ctrl)}},
		{"tab is plain", "\t", []Event{K(ui.Tab)}},
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D",
			[]Event{K(ui.Up), K(ui.Down), K(ui.Right), K(ui.Left)}},
		{"home and end", "\x1b[H\x1b[F", []Event{K(ui.Home), K(ui.End)}},
		{"delete", "\x1b[3~", []Event{K(ui.Delete)}},
		{"tilde home end variants", "\x1b[1~\x1b[4~\x1b[7~\x1b[8~",
			[]Event{K(ui.Home), K(ui.End), K(ui.Home), K(ui.End)}},
		{"alt key", "\x1bx", []Event{K('x', ui.Alt)}},
		{"unknown csi ignored then printable", "\x1b[9999z!", []Event{K('!')}},
		{"utf8 rune", "\xc3\xa9", []Event{K('é')}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var d Decoder
			got := feedAll(&d, []byte(test.input))
			if len(got) != len(test.want) {
				t.Fatalf("decoded %d events %v, want %d events %v",
					len(got), got, len(test.want), test.want)
			}
			for i := range got {
				if got[i] != test.want[i] {
					t.Errorf("event %d = %v, want %v", i, got[i], test.want[i])
				}
			}
		})
	}
}

func TestDecoder_LoneEscapeResolvedByTimeout(t *testing.T) {
	var d Decoder
	if ev, ok := d.Feed(0x1b); ok {
		t.Fatalf("ESC alone decoded to %v, want pending", ev)
	}
	if !d.Pending() {
		t.Fatal("decoder not pending after ESC")
	}
	ev, ok := d.Timeout()
	if !ok || ev != Event(K('[', ui.Ctrl)) {
		t.Errorf("Timeout() = %v, %v, want %v, true", ev, ok, K('[', ui.Ctrl))
	}
	if d.Pending() {
		t.Error("decoder still pending after Timeout")
	}
}

func TestDecoder_TimeoutDiscardsIncompleteCSI(t *testing.T) {
	var d Decoder
	feedAll(&d, []byte("\x1b[1"))
	if ev, ok := d.Timeout(); ok {
		t.Errorf("Timeout() = %v, want no event", ev)
	}
	// The decoder is usable afterwards.
	got := feedAll(&d, []byte("a"))
	if len(got) != 1 || got[0] != Event(K('a')) {
		t.Errorf("decoded %v after discarded CSI, want [a]", got)
	}
}

func TestDecoder_SplitSequenceAcrossFeeds(t *testing.T) {
	var d Decoder
	if _, ok := d.Feed(0x1b); ok {
		t.Fatal("event after ESC")
	}
	if _, ok := d.Feed('['); ok {
		t.Fatal("event after ESC [")
	}
	ev, ok := d.Feed('A')
	if !ok || ev != Event(K(ui.Up)) {
		t.Errorf("Feed('A') = %v, %v, want Up, true", ev, ok)
	}
}
