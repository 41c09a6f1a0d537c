package textutil

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"hello", "hello"},
		{"  hello   world  ", "hello world"},
		{"a\t\tb\nc", "a b c"},
		{" x ", "x"},
	}
	for _, tc := range tests {
		if got := NormalizeWhitespace(tc.in); got != tc.want {
			t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeWhitespace_Idempotent(t *testing.T) {
	inputs := []string{"", " a  b ", "\tx\n\ny\t", "already normal", "  lead", "trail  "}
	for _, in := range inputs {
		once := NormalizeWhitespace(in)
		twice := NormalizeWhitespace(once)
		if once != twice {
			t.Errorf("NormalizeWhitespace not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"cat", "cat", 0},
		{"cat", "cats", 1},
		{"cat", "cut", 1},
		{"cat", "at", 1},
		{"cat", "dogs", 4},
		{"kitten", "sitting", 3},
	}
	for _, tc := range tests {
		if got := EditDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
