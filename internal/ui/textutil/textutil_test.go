package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Hydration", 20, "Hydration"},
		{"exact", "abc", 3, "abc"},
		{"cut", "Weekly stats", 8, "Weekly …"},
		{"zero", "abc", 0, ""},
		{"one column", "abc", 1, "…"},
		{"wide runes", "水分補給", 5, "水分…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, Width(got), max(tt.width, 0))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "ab", PadRight("ab", 2))
	assert.Equal(t, "abc…", PadRight("abcdef", 4))
	assert.Equal(t, 6, Width(PadRight("水分", 6)))
}
