package model

import (
	"context"
	"time"

	"launchapp/internal/launcher"
	"launchapp/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const launcherTimeout = 30 * time.Second

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once
// the channel is closed.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// ListenForLauncherEventsCmd waits for the next launcher event.
func ListenForLauncherEventsCmd(ch <-chan launcher.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return LauncherEventMsg{Event: ev}
	}
}

// ListenForPrefsCmd waits for the next change of the preferences file.
func ListenForPrefsCmd(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return PrefsChangedMsg{}
	}
}

// LauncherCmd runs fn in the background and reports its error as a
// LauncherResultMsg.
func LauncherCmd(op string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return LauncherResultMsg{Op: op, Err: fn()}
	}
}

// BootCmd boots the launcher with the stored startup project.
func BootCmd(l *launcher.Controller, startupProject string) tea.Cmd {
	return LauncherCmd("boot", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), launcherTimeout)
		defer cancel()
		return l.Boot(ctx, startupProject)
	})
}

// LaunchCmd starts the selected application.
func LaunchCmd(l *launcher.Controller) tea.Cmd {
	return LauncherCmd("launch", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), launcherTimeout)
		defer cancel()
		return l.Launch(ctx)
	})
}

// ResetCmd boots the launcher again.
func ResetCmd(l *launcher.Controller) tea.Cmd {
	return LauncherCmd("reset", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), launcherTimeout)
		defer cancel()
		return l.Reset(ctx)
	})
}
