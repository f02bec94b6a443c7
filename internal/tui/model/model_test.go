package model

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"launchapp/internal/config"
	"launchapp/internal/launcher"
	"launchapp/internal/lifecycle"
	"launchapp/internal/prefs"
	"launchapp/internal/tui/components"
	"launchapp/internal/tui/design"
	"launchapp/pkg/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *prefs.Store {
	t.Helper()
	s, err := prefs.Open(filepath.Join(t.TempDir(), "preferences.yaml"))
	require.NoError(t, err)
	return s
}

func newTestModel(t *testing.T, store *prefs.Store) *Model {
	t.Helper()
	l := launcher.New(config.LaunchConfig{
		Projects: []config.ProjectDefinition{{
			Name: "alpha",
			Applications: []config.ApplicationDefinition{
				{Name: "maya"}, {Name: "nuke"},
			},
		}},
	})
	m, err := New(Config{Launcher: l, Prefs: store})
	require.NoError(t, err)
	return m
}

func visible(m *Model) []string {
	var out []string
	for d := range m.Docks.All() {
		if d.IsVisible() {
			out = append(out, d.ID)
		}
	}
	return out
}

func TestNew_RequiresLauncher(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestNew_DefaultLayout(t *testing.T) {
	store := newStore(t)
	m := newTestModel(t, store)

	assert.Equal(t, "Launch App 2.0", m.Title)
	assert.Equal(t, []string{DockApp}, visible(m))
	assert.Equal(t, m.Dock(DockApp), m.Area.Active())
	assert.True(t, m.PageFocused)
	assert.NotEmpty(t, store.String(prefs.KeyDefaultLayout))

	for _, id := range []string{DockPackages, DockContext, DockEnvironment, DockCommands} {
		assert.True(t, m.Dock(id).Toggle().IsHidden(), id)
	}
}

func TestNew_RestoresStoredLayout(t *testing.T) {
	store := newStore(t)
	first := newTestModel(t, store)
	first.ShowDock(DockPreferences)
	require.NoError(t, first.SaveLayout())

	second := newTestModel(t, store)
	assert.Equal(t, []string{DockPreferences}, visible(second))
}

func TestNew_IgnoresBrokenLayout(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set(prefs.KeyLayout, `{"groups":[["ghost"]]}`))

	m := newTestModel(t, store)
	assert.Equal(t, []string{DockApp}, visible(m))
}

func TestNew_SingleDockUntilReady(t *testing.T) {
	m := newTestModel(t, newStore(t))
	require.False(t, m.Preferences().AllowMultipleDocks)

	for _, state := range []lifecycle.State{lifecycle.Booting, lifecycle.Loading, lifecycle.Ready} {
		m.Machine.Apply(state, m.Env())
		assert.LessOrEqual(t, len(visible(m)), 1, state)
	}
}

func TestNew_StoredLayoutKeepsOneDock(t *testing.T) {
	tests := []struct {
		name     string
		multiple bool
		want     []string
	}{
		{name: "single dock", multiple: false, want: []string{DockConsole}},
		{name: "multiple docks allowed", multiple: true, want: []string{DockApp, DockConsole}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(t)
			require.NoError(t, store.Set(prefs.KeyAllowMultipleDocks, tt.multiple))
			layout := `{"groups":[["app"],["console"]],"current":["app","console"],"visible":["app","console"],"focus":"console"}`
			require.NoError(t, store.Set(prefs.KeyLayout, layout))

			m := newTestModel(t, store)
			assert.Equal(t, tt.want, visible(m))
		})
	}
}

func TestResetLayout(t *testing.T) {
	store := newStore(t)
	m := newTestModel(t, store)
	m.ShowDock(DockPreferences)
	require.NoError(t, m.SaveLayout())

	require.NoError(t, m.ResetLayout())
	assert.Equal(t, []string{DockApp}, visible(m))
	assert.Empty(t, store.String(prefs.KeyLayout))
}

func TestDockAt(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Equal(t, m.Dock(DockApp), m.DockAt(1))
	assert.Equal(t, m.Dock(DockPreferences), m.DockAt(7))
	assert.Nil(t, m.DockAt(0))
	assert.Nil(t, m.DockAt(8))
}

func TestToggleDock_HiddenToggleIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m.ToggleDock(2, false)
	assert.False(t, m.Dock(DockPackages).IsVisible())
	assert.True(t, m.PageFocused)
}

func TestFocusNext(t *testing.T) {
	m := newTestModel(t, nil)
	m.FocusNext(-1)
	assert.False(t, m.PageFocused)
	assert.Equal(t, m.Dock(DockApp), m.ActiveDock())

	m.FocusNext(-1)
	assert.True(t, m.PageFocused)
	assert.Nil(t, m.ActiveDock())
}

func TestWindowTitle(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Equal(t, "Launch App 2.0", m.WindowTitle())
	require.NoError(t, m.Launcher.SelectProject("alpha"))
	assert.Equal(t, "Launch App 2.0 - alpha", m.WindowTitle())
}

func TestSelectStartupApp(t *testing.T) {
	store := newStore(t)
	m := newTestModel(t, store)

	_, ok := m.SelectStartupApp()
	assert.False(t, ok, "no project yet")

	require.NoError(t, m.Launcher.SelectProject("alpha"))
	name, ok := m.SelectStartupApp()
	require.True(t, ok)
	assert.Equal(t, "maya", name)

	require.NoError(t, store.Set(prefs.KeyStartupApplication, "nuke"))
	name, _ = m.SelectStartupApp()
	assert.Equal(t, "nuke", name)
	assert.Equal(t, 1, m.AppCursor)
}

func TestStatusMessage_OnlyLatestIsCleared(t *testing.T) {
	m := newTestModel(t, nil)
	m.SetStatusMessage("first", components.MessageInfo, time.Second)
	firstSeq := m.statusSeq
	m.SetStatusMessage("second", components.MessageWarning, time.Second)

	m.ClearStatusMessage(firstSeq)
	assert.Equal(t, "second", m.StatusBarMessage)
	assert.Equal(t, components.MessageWarning, m.StatusBarMessageType)

	m.ClearStatusMessage(m.statusSeq)
	assert.Empty(t, m.StatusBarMessage)
}

func TestSetPreferenceTells(t *testing.T) {
	store := newStore(t)
	m := newTestModel(t, store)
	cmd := m.SetPreference(prefs.KeySmallIcons, true)
	assert.NotNil(t, cmd)
	assert.True(t, store.Bool(prefs.KeySmallIcons))
	assert.Equal(t, "Storing smallIcons = true", m.StatusBarMessage)
	assert.Equal(t, "Storing smallIcons = true", m.Console[len(m.Console)-1].Text)
}

func TestConsoleIsCapped(t *testing.T) {
	m := newTestModel(t, nil)
	for i := range MaxConsoleLines + 10 {
		m.AddConsoleLine(fmt.Sprintf("line %d", i), logging.LevelInfo)
	}
	require.Len(t, m.Console, MaxConsoleLines)
	assert.Equal(t, "line 10", m.Console[0].Text)
	assert.True(t, m.ConsoleDirty)
}

func TestAddLogEntry(t *testing.T) {
	m := newTestModel(t, nil)
	ts := time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC)
	m.AddLogEntry(logging.LogEntry{
		Timestamp: ts,
		Level:     logging.LevelError,
		Subsystem: "Launcher",
		Message:   "launch failed",
		Err:       fmt.Errorf("boom"),
	})
	last := m.Console[len(m.Console)-1]
	assert.Equal(t, "13:04:05 [Launcher] launch failed: boom", last.Text)
	assert.Equal(t, logging.LevelError, last.Level)
}

func TestListenersHandleNilChannels(t *testing.T) {
	assert.Nil(t, ListenForLogEntriesCmd(nil))
	assert.Nil(t, ListenForLauncherEventsCmd(nil))
	assert.Nil(t, ListenForPrefsCmd(nil))

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Message: "hi"}
	msg := ListenForLogEntriesCmd(ch)()
	assert.Equal(t, NewLogEntryMsg{Entry: logging.LogEntry{Message: "hi"}}, msg)

	close(ch)
	assert.Nil(t, ListenForLogEntriesCmd(ch)())
}

func TestAppModeString(t *testing.T) {
	assert.Equal(t, "ProjectMenu", ModeProjectMenu.String())
	assert.Equal(t, "Unknown", AppMode(42).String())
}

func TestApplyTheme(t *testing.T) {
	primary, secondary := design.ColorPrimary, design.ColorSecondary
	t.Cleanup(func() { design.ApplyAccent(primary, secondary) })

	store := newStore(t)
	m := newTestModel(t, store)
	assert.Equal(t, lipgloss.Color("#4682b4"), design.ColorSecondary)

	require.NoError(t, store.Set(prefs.KeyPrimaryColor, "#123456"))
	m.ApplyTheme()
	assert.Equal(t, lipgloss.Color("#123456"), design.ColorPrimary)

	require.NoError(t, store.Set(prefs.KeyPrimaryColor, "blurple"))
	m.ApplyTheme()
	assert.Equal(t, lipgloss.Color("#123456"), design.ColorPrimary)
}
