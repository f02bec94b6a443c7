package model

import (
	"fmt"
	"time"

	"launchapp/internal/config"
	"launchapp/internal/prefs"
	"launchapp/internal/tui/components"
	"launchapp/internal/tui/dockarea"
	"launchapp/internal/window"
	"launchapp/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// Preferences returns the current preference snapshot.
func (m *Model) Preferences() window.Preferences {
	if m.Prefs == nil {
		return window.Preferences{}
	}
	return m.Prefs.Snapshot()
}

// Env returns what the state machine needs for a transition.
func (m *Model) Env() window.Env {
	return window.Env{
		Project: m.Launcher.CurrentProject(),
		Prefs:   m.Preferences(),
	}
}

// Input bundles the modifier state with the preferences.
func (m *Model) Input(modifier bool) window.Input {
	return window.Input{Modifier: modifier, Prefs: m.Preferences()}
}

// Dock returns the dock registered under id.
func (m *Model) Dock(id string) *window.Dock {
	d, _ := m.Docks.Lookup(id)
	return d
}

// DockAt returns the dock bound to number key n, counting from 1.
func (m *Model) DockAt(n int) *window.Dock {
	i := 1
	for d := range m.Docks.All() {
		if i == n {
			return d
		}
		i++
	}
	return nil
}

// ToggleDock flips the dock bound to number key n. Hidden toggles do
// nothing.
func (m *Model) ToggleDock(n int, modifier bool) {
	d := m.DockAt(n)
	if d == nil || d.Toggle().IsHidden() {
		return
	}
	m.Coordinator.OnToggleClicked(d, m.Input(modifier))
	if d.IsVisible() {
		m.Area.Focus(d)
		m.PageFocused = false
	}
}

// ShowDock makes the dock visible and brings it to the front.
func (m *Model) ShowDock(id string) {
	d := m.Dock(id)
	if d == nil {
		return
	}
	m.Events.SetVisible(d, true)
	m.Coordinator.Activate(d, m.Input(false))
	if d.IsVisible() {
		m.Area.Focus(d)
		m.PageFocused = false
	}
}

// ActiveDock returns the dock with keyboard focus, or nil when the page
// has it.
func (m *Model) ActiveDock() *window.Dock {
	if m.PageFocused {
		return nil
	}
	return m.Area.Active()
}

// FocusNext cycles the focus through the page and every pane.
func (m *Model) FocusNext(delta int) {
	panes := m.Area.Panes()
	if len(panes) == 0 {
		m.PageFocused = true
		return
	}
	if m.PageFocused {
		m.PageFocused = false
		if delta < 0 {
			m.Area.Focus(panes[len(panes)-1].Current)
		} else {
			m.Area.Focus(panes[0].Current)
		}
		return
	}
	active := m.Area.Active()
	first, last := panes[0].Current, panes[len(panes)-1].Current
	if (delta > 0 && active == last) || (delta < 0 && active == first) {
		m.PageFocused = true
		return
	}
	m.Area.FocusNextPane(delta)
}

// WindowTitle returns the title followed by the current project.
func (m *Model) WindowTitle() string {
	if p := m.Launcher.CurrentProject(); p != "" {
		return fmt.Sprintf("%s - %s", m.Title, p)
	}
	return m.Title
}

// SelectedApp returns the application under the cursor of the home page.
func (m *Model) SelectedApp() (config.ApplicationDefinition, bool) {
	apps := m.Launcher.Apps()
	if m.AppCursor < 0 || m.AppCursor >= len(apps) {
		return config.ApplicationDefinition{}, false
	}
	return apps[m.AppCursor], true
}

// SelectStartupApp moves the cursor to the stored startup application or
// to the first row. It returns the selected application's name.
func (m *Model) SelectStartupApp() (string, bool) {
	apps := m.Launcher.Apps()
	if len(apps) == 0 {
		m.AppCursor = 0
		return "", false
	}
	m.AppCursor = 0
	if m.Prefs != nil {
		if startup := m.Prefs.String(prefs.KeyStartupApplication); startup != "" {
			for i, a := range apps {
				if a.Name == startup {
					m.AppCursor = i
					m.AddConsoleLine(fmt.Sprintf("Using startup application %s", startup), logging.LevelInfo)
					break
				}
			}
		}
	}
	return apps[m.AppCursor].Name, true
}

// SaveLayout stores the current arrangement in the preferences.
func (m *Model) SaveLayout() error {
	encoded, err := m.Area.Snapshot().Encode()
	if err != nil {
		return err
	}
	if m.Prefs == nil {
		return nil
	}
	return m.Prefs.Set(prefs.KeyLayout, encoded)
}

// ResetLayout restores the arrangement captured at startup and forgets the
// stored one.
func (m *Model) ResetLayout() error {
	if err := m.RestoreLayout(m.DefaultLayout); err != nil {
		return err
	}
	m.PageFocused = m.Area.Active() == nil
	if m.Prefs != nil {
		return m.Prefs.Set(prefs.KeyLayout, "")
	}
	return nil
}

// RestoreLayout applies a layout, then hides whatever the preferences do
// not allow. Without allowMultipleDocks only the focused dock stays up.
func (m *Model) RestoreLayout(l dockarea.Layout) error {
	if err := m.Area.Restore(l); err != nil {
		return err
	}
	m.Machine.ApplyAdvanced(m.Preferences())
	if !m.Preferences().AllowMultipleDocks {
		if d := m.Area.Active(); d != nil {
			m.Coordinator.Activate(d, m.Input(false))
		}
	}
	return nil
}

func (m *Model) setPref(key string, value any) {
	if m.Prefs == nil {
		return
	}
	if err := m.Prefs.Set(key, value); err != nil {
		logging.Error(subsystem, err, "Failed to store %s", key)
	}
}

// SetPreference stores a preference and tells the user about it.
func (m *Model) SetPreference(key string, value any) tea.Cmd {
	m.setPref(key, value)
	return m.Tell(fmt.Sprintf("Storing %s = %v", key, value))
}

// Tell shows message in the console and, for a moment, in the status bar.
func (m *Model) Tell(message string) tea.Cmd {
	m.AddConsoleLine(message, logging.LevelInfo)
	return m.SetStatusMessage(message, components.MessageInfo, TellDuration)
}

// SetStatusMessage shows a transient message in the status bar. Only the
// latest message is cleared when its time is up.
func (m *Model) SetStatusMessage(message string, msgType components.MessageType, clearAfter time.Duration) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType
	return tea.Tick(clearAfter, func(time.Time) tea.Msg {
		return ClearStatusBarMsg{Seq: seq}
	})
}

// ClearStatusMessage removes the message set with sequence number seq,
// unless a newer one replaced it.
func (m *Model) ClearStatusMessage(seq int) {
	if seq == m.statusSeq {
		m.StatusBarMessage = ""
	}
}
