package controller

import (
	"fmt"

	"launchapp/internal/launcher"
	"launchapp/internal/lifecycle"
	"launchapp/internal/tui/components"
	"launchapp/internal/tui/model"
	"launchapp/internal/tui/view"
	"launchapp/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const errorMessageDuration = 5 * model.TellDuration

// mainControllerDispatch is the top-level update function.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.ConsoleDirty = true

	case tea.KeyMsg:
		cmds = append(cmds, handleKeyMsg(m, msg))

	case model.NewLogEntryMsg:
		m.AddLogEntry(msg.Entry)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case model.LauncherEventMsg:
		cmds = append(cmds, handleLauncherEvent(m, msg.Event))
		cmds = append(cmds, model.ListenForLauncherEventsCmd(m.Launcher.Events()))

	case model.LauncherResultMsg:
		if msg.Err != nil {
			LogDebug("%s finished with error: %v", msg.Op, msg.Err)
			cmds = append(cmds, m.SetStatusMessage(
				fmt.Sprintf("%s: %v", msg.Op, msg.Err), components.MessageError, errorMessageDuration))
		}

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage(msg.Seq)

	case model.PrefsChangedMsg:
		m.ApplyTheme()
		m.Machine.ApplyAdvanced(m.Preferences())
		if m.ActiveDock() == nil {
			m.PageFocused = true
		}
		cmds = append(cmds, model.ListenForPrefsCmd(m.PrefsChanged))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	syncConsole(m)
	return m, tea.Batch(cmds...)
}

// handleLauncherEvent keeps the window in step with the launcher.
func handleLauncherEvent(m *model.Model, ev launcher.Event) tea.Cmd {
	switch ev := ev.(type) {
	case launcher.StateChanged:
		m.Machine.Apply(ev.State, m.Env())
		if m.ActiveDock() == nil {
			m.PageFocused = true
		}
		if ev.State == lifecycle.Errored || ev.State == lifecycle.PkgNotFound {
			if reason := m.Launcher.CurrentError(); reason != "" {
				m.AddConsoleLine(reason, logging.LevelError)
			}
		}
		return m.Tell(fmt.Sprintf("State: %s", ev.State))

	case launcher.ProjectChanged:
		m.ProjectCursor = 0
		if ev.Before == ev.After {
			return m.Tell(fmt.Sprintf("Refreshing %s", ev.After))
		}
		return m.Tell(fmt.Sprintf("Changing project %s -> %s", ev.Before, ev.After))

	case launcher.AppsReset:
		name, ok := m.SelectStartupApp()
		if !ok {
			return nil
		}
		return model.LauncherCmd("select application", func() error {
			return m.Launcher.SelectApplication(name)
		})

	case launcher.PackagesChanged:
		m.PackageCursor = clamp(m.PackageCursor, len(m.Launcher.Packages()))

	case launcher.CommandsChanged:
		// Rendered from the launcher on the next frame.
	}
	return nil
}

// syncConsole fits the console viewport to its pane and refreshes the
// content when lines were added.
func syncConsole(m *model.Model) {
	w, h, ok := view.ConsoleSize(m)
	if !ok {
		return
	}
	vp := &m.ConsoleViewport
	if vp.Width == w && vp.Height == h && !m.ConsoleDirty {
		return
	}
	atBottom := vp.AtBottom() || vp.TotalLineCount() == 0
	vp.Width = w
	vp.Height = h
	vp.SetContent(view.PrepareConsoleContent(m.Console, w))
	if atBottom {
		vp.GotoBottom()
	}
	m.ConsoleDirty = false
}

func clamp(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
