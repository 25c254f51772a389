package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateWithEllipsis(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		max   int
		want  string
		runes int
	}{
		{"short kept", "hello", 200, "hello", 5},
		{"at limit truncated", strings.Repeat("a", 200), 200, strings.Repeat("a", 197) + "...", 200},
		{"over limit truncated", strings.Repeat("a", 300), 200, strings.Repeat("a", 197) + "...", 200},
		{"one under kept", strings.Repeat("a", 199), 200, strings.Repeat("a", 199), 199},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TruncateWithEllipsis(tc.in, tc.max)
			if got != tc.want {
				t.Errorf("got %d runes, want %d", utf8.RuneCountInString(got), tc.runes)
			}
		})
	}
}

func TestTruncateWithEllipsisMultibyte(t *testing.T) {
	in := strings.Repeat("日", 250)
	got := TruncateWithEllipsis(in, 200)
	if utf8.RuneCountInString(got) != 200 {
		t.Errorf("rune count = %d, want 200", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("missing ellipsis")
	}
	if !utf8.ValidString(got) {
		t.Error("truncation split a rune")
	}
}
