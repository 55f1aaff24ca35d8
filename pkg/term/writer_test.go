package term

import (
	"bytes"
	"testing"
)

func TestWriter_Render(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		content string
		dot     int
		want    string
	}{
		{"empty line", "> ", "", 0, "\r\033[K> "},
		{"dot at end", "> ", "echo hi", 7, "\r\033[K> echo hi"},
		{"dot in middle", "> ", "echo hi", 4, "\r\033[K> echo hi\033[3D"},
		{"dot at start", "> ", "ab", 0, "\r\033[K> ab\033[2D"},
		{"multibyte content", "> ", "héllo", 5, "\r\033[K> héllo"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			if err := w.Render(test.prompt, test.content, test.dot); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != test.want {
				t.Errorf("Render wrote %q, want %q", got, test.want)
			}
		})
	}
}

func TestWriter_RenderSearch(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.RenderSearch("mak", "make test"); err != nil {
		t.Fatal(err)
	}
	want := "\r\033[K(reverse-i-search)'mak': make test"
	if got := buf.String(); got != want {
		t.Errorf("RenderSearch wrote %q, want %q", got, want)
	}
}

func TestWriter_Newline(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Newline(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\r\n" {
		t.Errorf("Newline wrote %q, want %q", got, "\r\n")
	}
}
