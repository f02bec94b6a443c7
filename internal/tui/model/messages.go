package model

import (
	"launchapp/internal/launcher"
	"launchapp/pkg/logging"
)

// NewLogEntryMsg carries one entry of the log channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// LauncherEventMsg carries one event of the launcher.
type LauncherEventMsg struct {
	Event launcher.Event
}

// LauncherResultMsg reports the outcome of a launcher call made in the
// background.
type LauncherResultMsg struct {
	Op  string
	Err error
}

// PrefsChangedMsg reports that the preferences file changed on disk.
type PrefsChangedMsg struct{}

// ClearStatusBarMsg clears the status bar message with the same sequence
// number.
type ClearStatusBarMsg struct {
	Seq int
}
