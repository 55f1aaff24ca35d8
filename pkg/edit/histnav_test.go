package edit

import (
	"testing"

	"github.com/zle-sh/zle/pkg/histutil"
)

func TestHistNav_UpDown(t *testing.T) {
	store := histutil.NewMemStore(100, "ls -la", "cd /tmp", "echo test")
	var b Buffer
	n := newHistNav(store)

	n.up(&b)
	checkBuffer(t, &b, "echo test", 9)
	n.up(&b)
	checkBuffer(t, &b, "cd /tmp", 7)
	n.down(&b)
	checkBuffer(t, &b, "echo test", 9)
	n.down(&b)
	checkBuffer(t, &b, "", 0)
}

func TestHistNav_SavesAndRestoresLiveLine(t *testing.T) {
	store := histutil.NewMemStore(100, "ls")
	var b Buffer
	b.SetContent("partial line")
	n := newHistNav(store)

	n.up(&b)
	checkBuffer(t, &b, "ls", 2)
	n.down(&b)
	checkBuffer(t, &b, "partial line", 12)
}

func TestHistNav_NoOpAtBounds(t *testing.T) {
	store := histutil.NewMemStore(100, "ls")
	var b Buffer
	n := newHistNav(store)

	n.down(&b)
	checkBuffer(t, &b, "", 0)
	n.up(&b)
	n.up(&b)
	checkBuffer(t, &b, "ls", 2)
}

func TestHistNav_EmptyHistory(t *testing.T) {
	store := histutil.NewMemStore(100)
	var b Buffer
	b.SetContent("live")
	n := newHistNav(store)

	n.up(&b)
	checkBuffer(t, &b, "live", 4)
	n.down(&b)
	checkBuffer(t, &b, "live", 4)
}
