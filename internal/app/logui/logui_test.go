package logui

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in    string
		lines []string
	}{
		{"", nil},
		{"\n", []string{"\n"}},
		{"one\n", []string{"one\n"}},
		{"one\ntwo\n", []string{"one\n", "two\n"}},
		{"one\ntwo", []string{"one\n", "two"}},
	}

	for _, test := range tests {
		lines := splitLines(test.in)
		if !reflect.DeepEqual(lines, test.lines) {
			t.Errorf("splitLines(%q) = %q, want %q", test.in, lines, test.lines)
		}
	}
}

func TestIsErrorLine(t *testing.T) {
	tests := []struct {
		line  string
		error bool
	}{
		{"error: cannot save theme\n", true},
		{"2026/10/19 09:14:02 error: cannot save theme: not a directory\n", true},
		{"2026/10/19 09:14:02 theme: color scheme changed to dark\n", false},
		{"2026/10/19 09:14:02 kvstate: cannot save state: error: disk\n", false},
		{"terror: nothing\n", false},
	}

	for _, test := range tests {
		if got := isErrorLine(test.line); got != test.error {
			t.Errorf("isErrorLine(%q) = %v, want %v", test.line, got, test.error)
		}
	}
}
