package engine

import "testing"

func TestCleanHTML(t *testing.T) {
	cases := []struct{ in, want string }{
		{"<p>Backend <b>Engineer</b></p>", "Backend Engineer"},
		{"  plain text  ", "plain text"},
		{"", ""},
	}
	for _, c := range cases {
		if got := CleanHTML(c.in); got != c.want {
			t.Errorf("CleanHTML(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("hello world", 5, "..."); got != "hello..." {
		t.Errorf("got %q", got)
	}
	if got := TruncateRunes("short", 10, "..."); got != "short" {
		t.Errorf("got %q", got)
	}
	// Rune-safe for multibyte text.
	if got := TruncateRunes("привет мир", 6, ""); got != "привет" {
		t.Errorf("got %q", got)
	}
	if got := TruncateRunes("anything", 0, "..."); got != "" {
		t.Errorf("got %q", got)
	}
}
