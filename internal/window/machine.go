package window

import (
	"fmt"

	"launchapp/internal/lifecycle"
	"launchapp/pkg/logging"
)

// Page is one of the full-window pages.
type Page string

const (
	PageHome    Page = "home"
	PageBooting Page = "booting"
	PageErrored Page = "errored"
	PageNoApps  Page = "noapps"
)

// Labels shown on the launch control.
const (
	LaunchLabel          = "Launch"
	PackageNotFoundLabel = "Package not found"
	NotResolvedLabel     = "Failed to resolve"
)

// Control is the presentation state of a single widget.
type Control struct {
	Enabled bool
	Visible bool
	Text    string
}

// Controls groups the top-level widgets whose state follows the lifecycle.
type Controls struct {
	Apps            Control
	ProjectButton   Control
	ProjectVersions Control
	Launch          Control
	NoAppsMessage   Control
	StateIndicator  Control
}

// Env carries what a transition needs to know about the outside world.
type Env struct {
	Project string
	Prefs   Preferences
}

// Layout names the docks the state machine addresses directly.
type Layout struct {
	AppDock     string
	ConsoleDock string
}

var statePages = map[lifecycle.State]Page{
	lifecycle.Booting:     PageBooting,
	lifecycle.Home:        PageHome,
	lifecycle.Errored:     PageErrored,
	lifecycle.PkgNotFound: PageErrored,
	lifecycle.NoApps:      PageNoApps,
	lifecycle.NotResolved: PageHome,
	lifecycle.Launching:   PageHome,
	lifecycle.Ready:       PageHome,
}

// StateMachine maps lifecycle states to pages and control enablement.
// Transitions are driven only from the outside through Apply.
type StateMachine struct {
	docks  *Registry
	coord  *Coordinator
	events *Dispatcher
	layout Layout

	state    lifecycle.State
	page     Page
	controls Controls
}

// NewStateMachine returns a machine in the booting state. Nothing is applied
// until the first call to Apply.
func NewStateMachine(docks *Registry, coord *Coordinator, events *Dispatcher, layout Layout) *StateMachine {
	return &StateMachine{
		docks:  docks,
		coord:  coord,
		events: events,
		layout: layout,
		state:  lifecycle.Booting,
		page:   PageBooting,
	}
}

// State returns the last applied lifecycle state.
func (m *StateMachine) State() lifecycle.State { return m.state }

// Page returns the page on display.
func (m *StateMachine) Page() Page { return m.page }

// Controls returns the current control states.
func (m *StateMachine) Controls() Controls { return m.controls }

// Apply enters state. Every control is derived from scratch so nothing set
// by an earlier state can leak into this one.
func (m *StateMachine) Apply(state lifecycle.State, env Env) {
	page, known := statePages[state]
	switch {
	case state == lifecycle.Loading:
		page = m.page
	case !known:
		logging.Debug(subsystem, "no page for state %q, showing home", state)
		page = PageHome
	}

	ready := state == lifecycle.Ready
	c := Controls{
		Apps:            Control{Enabled: ready, Visible: true},
		ProjectButton:   Control{Enabled: ready, Visible: true},
		ProjectVersions: Control{Enabled: ready, Visible: true},
		Launch:          Control{Enabled: true, Visible: true, Text: LaunchLabel},
		NoAppsMessage:   Control{Enabled: true, Visible: true, Text: "No applications found"},
		StateIndicator:  Control{Enabled: true, Visible: true, Text: string(state)},
	}

	for d := range m.docks.All() {
		d.enabled = true
	}

	if page == PageNoApps {
		c.ProjectButton.Enabled = true
		c.NoAppsMessage.Text = fmt.Sprintf("No applications found for %s", env.Project)
	}

	switch state {
	case lifecycle.Launching:
		if app, ok := m.docks.Lookup(m.layout.AppDock); ok {
			app.enabled = false
		}

	case lifecycle.Loading:
		for d := range m.docks.All() {
			d.enabled = false
		}

	case lifecycle.Errored, lifecycle.PkgNotFound:
		if console, ok := m.docks.Lookup(m.layout.ConsoleDock); ok {
			m.events.SetVisible(console, true)
			m.coord.Activate(console, Input{Prefs: env.Prefs})
		}
		page = PageErrored
		c.Apps.Enabled = false
		c.Launch.Enabled = false
		c.Launch.Text = PackageNotFoundLabel

	case lifecycle.NotResolved:
		c.Apps.Enabled = false
		c.Launch.Enabled = false
		c.Launch.Text = NotResolvedLabel
	}

	m.state = state
	m.page = page
	m.controls = c
	m.ApplyAdvanced(env.Prefs)
}

// ApplyAdvanced shows or hides everything reserved for advanced users. It
// runs after every transition and whenever the preference changes.
func (m *StateMachine) ApplyAdvanced(prefs Preferences) {
	shown := prefs.ShowAdvancedControls
	m.controls.ProjectVersions.Visible = shown

	for d := range m.docks.All() {
		hide := d.Advanced && !shown
		d.toggle.hidden = hide
		if hide {
			m.events.SetVisible(d, false)
		}
	}
}
