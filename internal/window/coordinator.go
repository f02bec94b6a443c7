package window

import (
	"launchapp/pkg/logging"
)

const subsystem = "Window"

// Coordinator decides which docks are visible and which tab is in front.
type Coordinator struct {
	docks    *Registry
	resolver *TabGroupResolver
	host     TabHost
	events   *Dispatcher
}

// NewCoordinator wires a coordinator to the registry, the host and the
// dispatcher. It subscribes itself to visibility changes so toggles follow
// docks that are closed by the host.
func NewCoordinator(docks *Registry, host TabHost, events *Dispatcher) *Coordinator {
	c := &Coordinator{
		docks:    docks,
		resolver: NewTabGroupResolver(host),
		host:     host,
		events:   events,
	}
	events.Subscribe(c.OnDockVisibilityChanged)
	return c
}

// OnToggleClicked flips the visibility of d and activates it when it was
// shown.
func (c *Coordinator) OnToggleClicked(d *Dock, in Input) {
	if suppressed(d, in.Prefs) {
		logging.Debug(subsystem, "ignoring toggle of advanced dock %s", d.ID)
		return
	}
	c.events.SetVisible(d, !d.visible)
	if d.visible {
		c.Activate(d, in)
	}
}

// Activate brings d to the user's attention.
//
// When the modifier is held, or multiple docks are not allowed, every other
// dock is hidden. Otherwise d is made the front tab of the strip it shares
// with other docks, without changing anyone's visibility. A dock that is not
// part of any strip needs nothing further.
func (c *Coordinator) Activate(d *Dock, in Input) {
	if c.events.Busy() {
		logging.Warn(subsystem, "refusing to activate %s from inside a visibility notification", d.ID)
		return
	}
	if suppressed(d, in.Prefs) {
		c.events.SetVisible(d, false)
		return
	}

	if in.Modifier || !in.Prefs.AllowMultipleDocks {
		for other := range c.docks.All() {
			c.events.SetVisible(other, other == d)
		}
		return
	}

	c.events.SetVisible(d, true)

	group, ok := c.resolver.FindGroupContaining(d)
	if !ok {
		return
	}
	if !c.host.SelectTab(group.ID, d.Title) {
		logging.Debug(subsystem, "tab %q vanished from group %s before it could be selected", d.Title, group.ID)
	}
}

// OnDockVisibilityChanged keeps the toggle of d in sync with the dock. It
// must never activate anything.
func (c *Coordinator) OnDockVisibilityChanged(d *Dock, visible bool) {
	d.toggle.checked = visible
}
