package model

import (
	"fmt"

	"launchapp/pkg/logging"
)

// AddConsoleLine appends a line to the console, dropping the oldest lines
// beyond MaxConsoleLines.
func (m *Model) AddConsoleLine(text string, level logging.LogLevel) {
	m.Console = append(m.Console, ConsoleLine{Text: text, Level: level})
	if len(m.Console) > MaxConsoleLines {
		m.Console = m.Console[len(m.Console)-MaxConsoleLines:]
	}
	m.ConsoleDirty = true
}

// AddLogEntry formats a log entry for the console.
func (m *Model) AddLogEntry(entry logging.LogEntry) {
	line := fmt.Sprintf("%s [%s] %s",
		entry.Timestamp.Format("15:04:05"),
		entry.Subsystem,
		entry.Message)
	if entry.Err != nil {
		line = fmt.Sprintf("%s: %v", line, entry.Err)
	}
	m.AddConsoleLine(line, entry.Level)
}
