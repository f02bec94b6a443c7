package model

import (
	"time"

	"launchapp/internal/launcher"
	"launchapp/internal/prefs"
	"launchapp/internal/tui/components"
	"launchapp/internal/tui/dockarea"
	"launchapp/internal/window"
	"launchapp/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeHelpOverlay
	ModeProjectMenu
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeProjectMenu:
		return "ProjectMenu"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Dock identifiers, in registration order.
const (
	DockApp         = "app"
	DockPackages    = "packages"
	DockContext     = "context"
	DockEnvironment = "environment"
	DockConsole     = "console"
	DockCommands    = "commands"
	DockPreferences = "preferences"
)

// Constants for UI
const (
	MaxConsoleLines = 1000
	TellDuration    = 2 * time.Second
)

// ConsoleLine is one line of the console dock.
type ConsoleLine struct {
	Text  string
	Level logging.LogLevel
}

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	Tab             key.Binding
	ShiftTab        key.Binding
	Enter           key.Binding
	Esc             key.Binding
	Quit            key.Binding
	Help            key.Binding
	ToggleDock      key.Binding
	SoloDock        key.Binding
	PrevTab         key.Binding
	NextTab         key.Binding
	MoveDock        key.Binding
	FloatDock       key.Binding
	ProjectMenu     key.Binding
	ProjectVersion  key.Binding
	Continue        key.Binding
	Reset           key.Binding
	ToggleAdvanced  key.Binding
	ToggleMultiple  key.Binding
	CopyConsole     key.Binding
	ResetLayout     key.Binding
	DisablePackage  key.Binding
	OverridePackage key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleDock, k.Enter, k.ProjectMenu, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab, k.ShiftTab, k.Enter, k.Esc},
		{k.ToggleDock, k.SoloDock, k.PrevTab, k.NextTab, k.MoveDock, k.FloatDock, k.ResetLayout},
		{k.ProjectMenu, k.ProjectVersion, k.Continue, k.Reset, k.DisablePackage, k.OverridePackage},
		{k.ToggleAdvanced, k.ToggleMultiple, k.CopyConsole, k.Help, k.Quit},
	}
}

// Model is the state of the launcher window.
type Model struct {
	// UI dimensions
	Width  int
	Height int

	Mode     AppMode
	Title    string
	Subtitle string

	// Window core
	Docks         *window.Registry
	Events        *window.Dispatcher
	Area          *dockarea.Area
	Coordinator   *window.Coordinator
	Machine       *window.StateMachine
	DefaultLayout dockarea.Layout

	// Collaborators
	Launcher     *launcher.Controller
	Prefs        *prefs.Store
	LogChannel   <-chan logging.LogEntry
	PrefsChanged chan struct{}

	// Read-only values shown in the System section of the preferences.
	System map[string]any

	// The central page has the focus instead of a dock.
	PageFocused bool

	// Cursors
	AppCursor     int
	PackageCursor int
	PrefCursor    int
	ProjectCursor int

	// Console
	Console         []ConsoleLine
	ConsoleDirty    bool
	ConsoleViewport viewport.Model

	// Status bar
	StatusBarMessage     string
	StatusBarMessageType components.MessageType
	statusSeq            int

	QuittingMessage string

	// UI Components
	Keys    KeyMap
	Help    help.Model
	Spinner spinner.Model
}
