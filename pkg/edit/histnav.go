package edit

import "github.com/zle-sh/zle/pkg/histutil"

// histNav implements browsing through history with Up and Down during one
// read session. Its position ranges over [0, store.Len()], where store.Len()
// means "not browsing, editing the live line". The live line is snapshotted
// when browsing starts and restored when browsing returns to the live
// position.
type histNav struct {
	store histutil.Store
	pos   int
	saved string
}

func newHistNav(store histutil.Store) *histNav {
	return &histNav{store: store, pos: store.Len()}
}

// up moves to the previous (older) entry, loading it into buf. Moving away
// from the live line saves its content first. No-op at the oldest entry.
func (n *histNav) up(buf *Buffer) {
	if n.pos == 0 {
		return
	}
	if n.pos == n.store.Len() {
		n.saved = buf.String()
	}
	n.pos--
	line, err := n.store.At(n.pos)
	if err != nil {
		return
	}
	buf.SetContent(line)
}

// down moves to the next (newer) entry, loading it into buf; moving past the
// newest entry restores the saved live line. No-op when not browsing.
func (n *histNav) down(buf *Buffer) {
	if n.pos == n.store.Len() {
		return
	}
	n.pos++
	if n.pos == n.store.Len() {
		buf.SetContent(n.saved)
		return
	}
	line, err := n.store.At(n.pos)
	if err != nil {
		return
	}
	buf.SetContent(line)
}
