package tui

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"short stays whole", "ring road closed", 30, "ring road closed"},
		{"long ascii", "waiting two hours at the terminal gate", 20, "waiting two hours..."},
		{"multi-byte runes", "vertraagd door file bij Liège, omgereden", 20, "vertraagd door fi..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateRunes(tt.input, tt.max)
			if got != tt.want {
				t.Fatalf("truncateRunes(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("truncation produced invalid UTF-8: %q", got)
			}
		})
	}
}
