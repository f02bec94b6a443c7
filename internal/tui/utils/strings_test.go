package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "Console", width: 10, want: "Console"},
		{name: "cut", in: "Environment", width: 3, want: "Env"},
		{name: "zero width", in: "App", width: 0, want: ""},
		{name: "wide runes", in: "日本語", width: 4, want: "日本"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.in, tt.width))
		})
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "Packages", TruncateWithEllipsis("Packages", 8))
	assert.Equal(t, "Pack...", TruncateWithEllipsis("Packages", 7))
	assert.Equal(t, "..", TruncateWithEllipsis("Packages", 2))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "App  ", PadRight("App", 5))
}
