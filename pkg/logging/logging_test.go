package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"ERROR", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitForCLI_WritesSubsystem(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Error("Launcher", errors.New("boom"), "launch of %s failed", "maya")

	out := buf.String()
	assert.Contains(t, out, "launch of maya failed")
	assert.Contains(t, out, "subsystem=Launcher")
	assert.Contains(t, out, "error=boom")
}

func TestInitForTUI_SendsEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	Debug("Window", "filtered")
	Info("Window", "State: %s", "ready")

	select {
	case entry := <-ch:
		assert.Equal(t, LevelInfo, entry.Level)
		assert.Equal(t, "Window", entry.Subsystem)
		assert.Equal(t, "State: ready", entry.Message)
	default:
		t.Fatal("expected an entry on the TUI channel")
	}
	assert.Len(t, ch, 0)
}

func TestInitForTUI_FullChannelDoesNotBlock(t *testing.T) {
	ch := Initcommon("tui", LevelDebug, nil, 1)
	defer CloseTUIChannel()

	before := Dropped()
	Info("Window", "first")
	Info("Window", "second")

	assert.Len(t, ch, 1)
	assert.Equal(t, before+1, Dropped())
}
