package model

import (
	"fmt"

	"launchapp/internal/color"
	"launchapp/internal/launcher"
	"launchapp/internal/lifecycle"
	"launchapp/internal/prefs"
	"launchapp/internal/tui/design"
	"launchapp/internal/tui/dockarea"
	"launchapp/internal/window"
	"launchapp/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const subsystem = "TUI"

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "move down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous pane"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/launch/edit"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "toggle help"),
		),
		ToggleDock: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "toggle dock"),
		),
		SoloDock: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7"),
			key.WithHelp("alt+1-7", "show only this dock"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next tab"),
		),
		MoveDock: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move dock to next group"),
		),
		FloatDock: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "float/dock"),
		),
		ProjectMenu: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "change project"),
		),
		ProjectVersion: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "next project version"),
		),
		Continue: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "continue"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset"),
		),
		ToggleAdvanced: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "toggle advanced controls"),
		),
		ToggleMultiple: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "toggle multiple docks"),
		),
		CopyConsole: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy console"),
		),
		ResetLayout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "reset layout"),
		),
		DisablePackage: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "disable package"),
		),
		OverridePackage: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "override package version"),
		),
	}
}

// Config is what the model needs from the outside.
type Config struct {
	WindowTitle string
	Launcher    *launcher.Controller
	Prefs       *prefs.Store
	LogChannel  <-chan logging.LogEntry
}

// dockSpecs lists every dock in registration order. The order is also the
// order of the toggles and their number keys.
var dockSpecs = []struct {
	id       string
	title    string
	advanced bool
}{
	{DockApp, "Application", false},
	{DockPackages, "Packages", true},
	{DockContext, "Context", true},
	{DockEnvironment, "Environment", true},
	{DockConsole, "Console", false},
	{DockCommands, "Commands", true},
	{DockPreferences, "Preferences", false},
}

// New builds the window: docks, dock area, coordinator and state machine.
// The stored layout is restored when there is one.
func New(cfg Config) (*Model, error) {
	if cfg.Launcher == nil {
		return nil, fmt.Errorf("model requires a launcher")
	}

	reg := window.NewRegistry()
	for _, ds := range dockSpecs {
		if err := reg.Register(window.NewDock(ds.id, ds.title, ds.advanced)); err != nil {
			return nil, err
		}
	}
	events := window.NewDispatcher()
	area := dockarea.New(reg, events)
	coord := window.NewCoordinator(reg, area, events)
	machine := window.NewStateMachine(reg, coord, events, window.Layout{
		AppDock:     DockApp,
		ConsoleDock: DockConsole,
	})

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = design.IconPrimaryStyle

	title := cfg.WindowTitle
	if title == "" {
		title = "Launch App 2.0"
	}

	m := &Model{
		Mode:            ModeMain,
		Title:           title,
		Docks:           reg,
		Events:          events,
		Area:            area,
		Coordinator:     coord,
		Machine:         machine,
		Launcher:        cfg.Launcher,
		Prefs:           cfg.Prefs,
		LogChannel:      cfg.LogChannel,
		PrefsChanged:    make(chan struct{}, 1),
		PageFocused:     true,
		ConsoleViewport: viewport.New(0, 0),
		Keys:            DefaultKeyMap(),
		Help:            help.New(),
		Spinner:         s,
	}

	settingsPath := ""
	if cfg.Prefs != nil {
		settingsPath = cfg.Prefs.Path()
	}
	m.System = prefs.SystemInfo(cfg.Launcher.PackagePaths(), settingsPath)

	m.setupDocks()
	m.DefaultLayout = area.Snapshot()
	if encoded, err := m.DefaultLayout.Encode(); err == nil {
		m.setPref(prefs.KeyDefaultLayout, encoded)
	}
	m.restoreLayout()

	if m.Prefs != nil {
		m.Prefs.OnChange(func() {
			select {
			case m.PrefsChanged <- struct{}{}:
			default:
			}
		})
	}

	m.ApplyTheme()
	m.Machine.Apply(lifecycle.Booting, m.Env())
	return m, nil
}

// ApplyTheme recolours the accents from the colour preferences.
func (m *Model) ApplyTheme() {
	if m.Prefs == nil {
		return
	}
	primary := m.Prefs.String(prefs.KeyPrimaryColor)
	secondary := m.Prefs.String(prefs.KeySecondaryColor)
	if err := color.ApplyTheme(primary, secondary); err != nil {
		logging.Warn(subsystem, "Ignoring colour preferences: %v", err)
	}
}

// setupDocks stacks every dock into one group and shows the application
// dock only.
func (m *Model) setupDocks() {
	m.Area.TabifyAll()
	for d := range m.Docks.All() {
		m.Events.SetVisible(d, false)
	}
	if d, ok := m.Docks.Lookup(DockApp); ok {
		m.Events.SetVisible(d, true)
		m.Area.Focus(d)
	}
}

func (m *Model) restoreLayout() {
	if m.Prefs == nil {
		return
	}
	stored := m.Prefs.String(prefs.KeyLayout)
	if stored == "" {
		return
	}
	m.AddConsoleLine("Restoring layout..", logging.LevelInfo)
	layout, err := dockarea.ParseLayout(stored)
	if err == nil {
		err = m.RestoreLayout(layout)
	}
	if err != nil {
		logging.Warn(subsystem, "Ignoring stored layout: %v", err)
		m.setupDocks()
	}
}

// Init returns the commands that start the window: the spinner, the
// listeners and the boot of the launcher.
func (m *Model) Init() tea.Cmd {
	startup := ""
	if m.Prefs != nil {
		startup = m.Prefs.String(prefs.KeyStartupProject)
	}
	return tea.Batch(
		m.Spinner.Tick,
		ListenForLogEntriesCmd(m.LogChannel),
		ListenForLauncherEventsCmd(m.Launcher.Events()),
		ListenForPrefsCmd(m.PrefsChanged),
		BootCmd(m.Launcher, startup),
	)
}
