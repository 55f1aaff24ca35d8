// Package edit implements an interactive line editor: it reads key events
// from a terminal, maintains an editable line buffer, supports browsing and
// reverse incremental search through command history, and returns the line
// on acceptance.
package edit

import (
	"errors"
	"io"
	"unicode"

	"github.com/zle-sh/zle/pkg/histutil"
	"github.com/zle-sh/zle/pkg/term"
	"github.com/zle-sh/zle/pkg/ui"
)

// ErrInterrupted is returned by ReadLine when the user interrupts the
// session with Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// TTY is the terminal dependency of the editor. The real implementation is
// term.TTY; tests use a fake.
type TTY interface {
	// Setup puts the terminal in the mode suitable for the editor. It
	// returns a function that restores the previous mode; the restore
	// function must be idempotent and non-nil even on error. A setup error
	// is not fatal: the session proceeds in whatever mode the terminal is
	// in.
	Setup() (restore func() error, err error)
	// ReadEvent reads one terminal event. End of the input stream is
	// reported as io.EOF.
	ReadEvent() (term.Event, error)
	// Render draws the prompt and buffer content with the cursor at dot.
	Render(prompt, content string, dot int) error
	// RenderSearch draws the search query and the current candidate.
	RenderSearch(query, candidate string) error
	// Newline finishes the current display line.
	Newline() error
}

// Editor is an interactive line editor. The zero value is not usable; use
// NewEditor. The history store is shared by all sessions of the editor and
// may be shared with other editors of the same process, as long as sessions
// do not run concurrently.
type Editor struct {
	tty   TTY
	store histutil.Store

	// Prompt is written before the line content.
	Prompt string
	// AfterReadline hooks are called with the line after each accepted
	// session, typically to hand the line to an interpreter.
	AfterReadline []func(string)
}

// NewEditor creates a new Editor.
func NewEditor(tty TTY, store histutil.Store) *Editor {
	return &Editor{tty: tty, store: store}
}

// ReadLine reads one line interactively. It returns the line on acceptance;
// io.EOF when the input ends or Ctrl-D is pressed on an empty line; and
// ErrInterrupted on Ctrl-C. The terminal mode is restored on every return
// path.
func (ed *Editor) ReadLine() (string, error) {
	// A setup failure is not fatal; the session proceeds in whatever mode
	// the terminal is in.
	restore, _ := ed.tty.Setup()
	defer restore()

	s := session{ed: ed, buf: &Buffer{}, nav: newHistNav(ed.store)}
	line, err := s.run()

	ed.tty.Newline()
	if err == nil {
		ed.store.Add(line)
		for _, f := range ed.AfterReadline {
			f(line)
		}
	}
	return line, err
}

// session is the state of one ReadLine interaction. It is in exactly one of
// two modes: live editing (search == nil) or reverse incremental search.
type session struct {
	ed     *Editor
	buf    *Buffer
	nav    *histNav
	search *search
}

// Outcome of handling one key.
type action int

const (
	noAction action = iota
	acceptLine
	cancelEOF
	cancelInterrupt
)

func (s *session) run() (string, error) {
	for {
		s.redraw()
		ev, err := s.ed.tty.ReadEvent()
		if err != nil {
			if err == io.EOF || err == term.ErrStopped {
				return "", io.EOF
			}
			return "", err
		}
		key, ok := ev.(term.KeyEvent)
		if !ok {
			continue
		}
		var a action
		if s.search != nil {
			a = s.handleSearchKey(ui.Key(key))
		} else {
			a = s.handleKey(ui.Key(key))
		}
		switch a {
		case acceptLine:
			return s.buf.String(), nil
		case cancelEOF:
			return "", io.EOF
		case cancelInterrupt:
			return "", ErrInterrupted
		}
	}
}

func (s *session) redraw() {
	if s.search != nil {
		candidate, _ := s.search.current()
		s.ed.tty.RenderSearch(string(s.search.query), candidate)
		return
	}
	s.ed.tty.Render(s.ed.Prompt, s.buf.String(), s.buf.Dot())
}

// handleKey dispatches a key in live-editing mode. Buffer operations are
// guarded by the boundary checks here, so their error returns are not
// consulted.
func (s *session) handleKey(key ui.Key) action {
	buf := s.buf
	switch key {
	case ui.K(ui.Enter):
		return acceptLine
	case ui.K('C', ui.Ctrl):
		return cancelInterrupt
	case ui.K('D', ui.Ctrl):
		if buf.Len() == 0 {
			return cancelEOF
		}
		if buf.Dot() < buf.Len() {
			buf.DeleteForward(1)
		}
	case ui.K('A', ui.Ctrl), ui.K(ui.Home):
		buf.MoveTo(0)
	case ui.K('E', ui.Ctrl), ui.K(ui.End):
		buf.MoveTo(buf.Len())
	case ui.K('K', ui.Ctrl):
		buf.DeleteForward(buf.Len() - buf.Dot())
	case ui.K('U', ui.Ctrl):
		buf.MoveTo(0)
		buf.DeleteForward(buf.Len())
	case ui.K(ui.Backspace), ui.K('H', ui.Ctrl):
		if buf.Dot() > 0 {
			buf.DeleteBackward(1)
		}
	case ui.K(ui.Delete):
		if buf.Dot() < buf.Len() {
			buf.DeleteForward(1)
		}
	case ui.K(ui.Left):
		if buf.Dot() > 0 {
			buf.MoveTo(buf.Dot() - 1)
		}
	case ui.K(ui.Right):
		if buf.Dot() < buf.Len() {
			buf.MoveTo(buf.Dot() + 1)
		}
	case ui.K(ui.Up):
		s.nav.up(buf)
	case ui.K(ui.Down):
		s.nav.down(buf)
	case ui.K('R', ui.Ctrl):
		s.search = newSearch(s.ed.store)
	default:
		if key.Mod == 0 && unicode.IsGraphic(key.Rune) {
			buf.Insert(key.Rune)
		}
	}
	return noAction
}

// handleSearchKey dispatches a key in search mode. Enter accepts the current
// match into the buffer and returns to live editing; it does not accept the
// line. Escape and Ctrl-G cancel the search, leaving the buffer as it was.
// Ctrl-C cancels the whole session, search state included.
func (s *session) handleSearchKey(key ui.Key) action {
	switch key {
	case ui.K(ui.Enter):
		if line, ok := s.search.current(); ok {
			s.buf.SetContent(line)
		}
		s.search = nil
	case ui.K('R', ui.Ctrl):
		s.search.again()
	case ui.K(ui.Backspace), ui.K('H', ui.Ctrl):
		s.search.backspace()
	case ui.K('[', ui.Ctrl), ui.K('G', ui.Ctrl):
		s.search = nil
	case ui.K('C', ui.Ctrl):
		return cancelInterrupt
	default:
		if key.Mod == 0 && unicode.IsGraphic(key.Rune) {
			s.search.insert(key.Rune)
		}
	}
	return noAction
}
