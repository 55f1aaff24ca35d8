// Package term provides the terminal-facing pieces of the editor: raw mode
// setup, decoding of input bytes into key events, and rendering of the
// editor state with VT100 sequences.
package term

import "github.com/zle-sh/zle/pkg/ui"

// Event represents an event that can be read from the terminal.
type Event interface{ isEvent() }

// KeyEvent represents a key press.
type KeyEvent ui.Key

func (KeyEvent) isEvent() {}

// K constructs a new KeyEvent.
func K(r rune, mods ...ui.Mod) KeyEvent {
	return KeyEvent(ui.K(r, mods...))
}
