package toolutil

import "testing"

func TestNormLimit(t *testing.T) {
	cases := []struct{ n, def, max, want int }{
		{0, 50, 200, 50},
		{-1, 50, 200, 50},
		{30, 50, 200, 30},
		{500, 50, 200, 50},
	}
	for _, c := range cases {
		if got := NormLimit(c.n, c.def, c.max); got != c.want {
			t.Errorf("NormLimit(%d, %d, %d) = %d, want %d", c.n, c.def, c.max, got, c.want)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "", "x", "y"); got != "x" {
		t.Errorf("got %q", got)
	}
	if got := FirstNonEmpty(); got != "" {
		t.Errorf("got %q", got)
	}
}
