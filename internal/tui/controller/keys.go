package controller

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"launchapp/internal/prefs"
	"launchapp/internal/tui/components"
	"launchapp/internal/tui/model"
	"launchapp/internal/window"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg routes a key press according to the mode and the focus.
func handleKeyMsg(m *model.Model, msg tea.KeyMsg) tea.Cmd {
	switch m.Mode {
	case model.ModeHelpOverlay:
		if key.Matches(msg, m.Keys.Help) || key.Matches(msg, m.Keys.Esc) {
			m.Mode = model.ModeMain
		}
		if key.Matches(msg, m.Keys.Quit) {
			return quit(m)
		}
		return nil
	case model.ModeProjectMenu:
		return handleProjectMenuKey(m, msg)
	case model.ModeQuitting:
		return nil
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return quit(m)

	case key.Matches(msg, m.Keys.Help):
		m.Mode = model.ModeHelpOverlay
		return nil

	case key.Matches(msg, m.Keys.ToggleDock), key.Matches(msg, m.Keys.SoloDock):
		n, err := strconv.Atoi(strings.TrimPrefix(msg.String(), "alt+"))
		if err == nil {
			m.ToggleDock(n, msg.Alt)
			if m.ActiveDock() == nil {
				m.PageFocused = true
			}
		}
		return nil

	case key.Matches(msg, m.Keys.Tab):
		m.FocusNext(1)
		return nil

	case key.Matches(msg, m.Keys.ShiftTab):
		m.FocusNext(-1)
		return nil

	case key.Matches(msg, m.Keys.PrevTab):
		m.Area.CycleTab(-1)
		return nil

	case key.Matches(msg, m.Keys.NextTab):
		m.Area.CycleTab(1)
		return nil

	case key.Matches(msg, m.Keys.MoveDock):
		if d := m.ActiveDock(); d != nil {
			m.Area.MoveToNextGroup(d)
		}
		return nil

	case key.Matches(msg, m.Keys.FloatDock):
		if d := m.ActiveDock(); d != nil {
			m.Area.SetFloating(d, !m.Area.IsFloating(d))
			m.Area.Focus(d)
		}
		return nil

	case key.Matches(msg, m.Keys.Up):
		return moveCursor(m, msg, -1)

	case key.Matches(msg, m.Keys.Down):
		return moveCursor(m, msg, 1)

	case key.Matches(msg, m.Keys.Enter):
		return handleEnter(m)

	case key.Matches(msg, m.Keys.ProjectMenu):
		if !m.Machine.Controls().ProjectButton.Enabled {
			return nil
		}
		m.ProjectCursor = max(slices.Index(m.Launcher.Projects(), m.Launcher.CurrentProject()), 0)
		m.Mode = model.ModeProjectMenu
		return nil

	case key.Matches(msg, m.Keys.ProjectVersion):
		return nextProjectVersion(m)

	case key.Matches(msg, m.Keys.Continue):
		if m.Machine.Page() == window.PageErrored {
			m.Launcher.ToReady()
		}
		return nil

	case key.Matches(msg, m.Keys.Reset):
		m.Console = nil
		m.ConsoleDirty = true
		return model.ResetCmd(m.Launcher)

	case key.Matches(msg, m.Keys.ToggleAdvanced):
		return togglePref(m, prefs.KeyShowAdvancedControls)

	case key.Matches(msg, m.Keys.ToggleMultiple):
		return togglePref(m, prefs.KeyAllowMultipleDocks)

	case key.Matches(msg, m.Keys.CopyConsole):
		return copyConsole(m)

	case key.Matches(msg, m.Keys.ResetLayout):
		return resetLayout(m)

	case key.Matches(msg, m.Keys.DisablePackage):
		return togglePackage(m)

	case key.Matches(msg, m.Keys.OverridePackage):
		return overridePackage(m)
	}
	return nil
}

func quit(m *model.Model) tea.Cmd {
	if err := m.SaveLayout(); err != nil {
		LogError(err, "Failed to store layout")
	} else {
		LogInfo("Stored layout")
	}
	m.QuittingMessage = "Goodbye"
	m.Mode = model.ModeQuitting
	return tea.Quit
}

func handleProjectMenuKey(m *model.Model, msg tea.KeyMsg) tea.Cmd {
	projects := m.Launcher.Projects()
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return quit(m)
	case key.Matches(msg, m.Keys.Esc), key.Matches(msg, m.Keys.ProjectMenu):
		m.Mode = model.ModeMain
	case key.Matches(msg, m.Keys.Up):
		m.ProjectCursor = clamp(m.ProjectCursor-1, len(projects))
	case key.Matches(msg, m.Keys.Down):
		m.ProjectCursor = clamp(m.ProjectCursor+1, len(projects))
	case key.Matches(msg, m.Keys.Enter):
		m.Mode = model.ModeMain
		if m.ProjectCursor < 0 || m.ProjectCursor >= len(projects) {
			return nil
		}
		name := projects[m.ProjectCursor]
		return tea.Batch(
			m.SetPreference(prefs.KeyStartupProject, name),
			model.LauncherCmd("change project", func() error {
				return m.Launcher.SelectProject(name)
			}),
		)
	}
	return nil
}

// moveCursor moves the cursor of whatever has the focus.
func moveCursor(m *model.Model, msg tea.KeyMsg, delta int) tea.Cmd {
	d := m.ActiveDock()
	if d == nil {
		if !m.Machine.Controls().Apps.Enabled {
			return nil
		}
		apps := m.Launcher.Apps()
		next := clamp(m.AppCursor+delta, len(apps))
		if next == m.AppCursor || len(apps) == 0 {
			return nil
		}
		m.AppCursor = next
		return selectApp(m, apps[next].Name)
	}

	switch d.ID {
	case model.DockPackages:
		m.PackageCursor = clamp(m.PackageCursor+delta, len(m.Launcher.Packages()))
	case model.DockPreferences:
		m.PrefCursor = nextOption(m.PrefCursor, delta)
	case model.DockConsole:
		var cmd tea.Cmd
		m.ConsoleViewport, cmd = m.ConsoleViewport.Update(msg)
		return cmd
	}
	return nil
}

// selectApp resolves the application in the background and remembers it
// as the startup application.
func selectApp(m *model.Model, name string) tea.Cmd {
	if m.Prefs != nil {
		if err := m.Prefs.Set(prefs.KeyStartupApplication, name); err != nil {
			LogError(err, "Failed to store startup application")
		}
	}
	return model.LauncherCmd("select application", func() error {
		return m.Launcher.SelectApplication(name)
	})
}

// nextOption steps through the preferences dock, skipping separators.
func nextOption(cursor, delta int) int {
	options := prefs.Options()
	for i := cursor + delta; i >= 0 && i < len(options); i += delta {
		if options[i].Kind != prefs.KindSeparator {
			return i
		}
	}
	return cursor
}

func handleEnter(m *model.Model) tea.Cmd {
	d := m.ActiveDock()
	if d == nil {
		if m.Machine.Page() == window.PageHome {
			m.ShowDock(model.DockApp)
		}
		return nil
	}
	switch d.ID {
	case model.DockApp:
		if !d.IsEnabled() || !m.Machine.Controls().Launch.Enabled {
			return nil
		}
		app, ok := m.SelectedApp()
		if !ok {
			return nil
		}
		return tea.Batch(
			m.Tell(fmt.Sprintf("Launching %s", app.DisplayName())),
			model.LaunchCmd(m.Launcher),
		)
	case model.DockPreferences:
		return editOption(m)
	}
	return nil
}

func editOption(m *model.Model) tea.Cmd {
	options := prefs.Options()
	if m.PrefCursor < 0 || m.PrefCursor >= len(options) {
		return nil
	}
	o := options[m.PrefCursor]
	if !o.Editable() {
		return nil
	}
	switch o.Kind {
	case prefs.KindButton:
		if o.Name == prefs.KeyResetLayout {
			return resetLayout(m)
		}
	case prefs.KindBoolean:
		return togglePref(m, o.Name)
	}
	return nil
}

func togglePref(m *model.Model, name string) tea.Cmd {
	if m.Prefs == nil {
		return nil
	}
	cmd := m.SetPreference(name, !m.Prefs.Bool(name))
	if name == prefs.KeyShowAdvancedControls {
		m.Machine.ApplyAdvanced(m.Preferences())
		if m.ActiveDock() == nil {
			m.PageFocused = true
		}
	}
	return cmd
}

func resetLayout(m *model.Model) tea.Cmd {
	if err := m.ResetLayout(); err != nil {
		LogError(err, "Failed to reset layout")
		return m.SetStatusMessage("Layout reset failed", components.MessageError, errorMessageDuration)
	}
	return m.Tell("Restoring layout..")
}

func copyConsole(m *model.Model) tea.Cmd {
	lines := make([]string, len(m.Console))
	for i, l := range m.Console {
		lines[i] = l.Text
	}
	if err := clipboard.WriteAll(strings.Join(lines, "\n")); err != nil {
		LogError(err, "Failed to copy console")
		return m.SetStatusMessage("Copy failed", components.MessageError, errorMessageDuration)
	}
	return m.SetStatusMessage("Console copied to clipboard", components.MessageSuccess, model.TellDuration)
}

func nextProjectVersion(m *model.Model) tea.Cmd {
	if !m.Machine.Controls().ProjectVersions.Visible || !m.Machine.Controls().ProjectVersions.Enabled {
		return nil
	}
	versions := m.Launcher.Versions()
	if len(versions) < 2 {
		return nil
	}
	i := slices.Index(versions, m.Launcher.CurrentVersion())
	next := versions[(i+1)%len(versions)]
	return tea.Batch(
		m.Tell(fmt.Sprintf("Project version %s", next)),
		model.LauncherCmd("change version", func() error {
			return m.Launcher.SetProjectVersion(next)
		}),
	)
}

func togglePackage(m *model.Model) tea.Cmd {
	if d := m.ActiveDock(); d == nil || d.ID != model.DockPackages {
		return nil
	}
	pkgs := m.Launcher.Packages()
	if m.PackageCursor >= len(pkgs) {
		return nil
	}
	p := pkgs[m.PackageCursor]
	return model.LauncherCmd("disable package", func() error {
		return m.Launcher.SetPackageDisabled(p.Name, !p.Disabled)
	})
}

// overridePackage pins the package under the cursor to its next available
// version. Past the last version the override is removed.
func overridePackage(m *model.Model) tea.Cmd {
	if d := m.ActiveDock(); d == nil || d.ID != model.DockPackages {
		return nil
	}
	pkgs := m.Launcher.Packages()
	if m.PackageCursor >= len(pkgs) {
		return nil
	}
	p := pkgs[m.PackageCursor]
	if len(p.Versions) == 0 {
		return nil
	}
	next := p.Versions[0]
	if p.Override != "" {
		i := slices.Index(p.Versions, p.Override)
		if i == len(p.Versions)-1 {
			next = ""
		} else {
			next = p.Versions[i+1]
		}
	}
	return model.LauncherCmd("override package", func() error {
		return m.Launcher.SetPackageOverride(p.Name, next)
	})
}
