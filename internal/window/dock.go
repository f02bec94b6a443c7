package window

// Dock is a dockable panel of the main window.
type Dock struct {
	ID       string
	Title    string
	Advanced bool

	visible bool
	enabled bool
	toggle  *Toggle
}

// Toggle is the checkable control that shows and hides a Dock.
type Toggle struct {
	checked bool
	hidden  bool
	dock    *Dock
}

// NewDock creates a hidden, enabled dock together with its toggle.
func NewDock(id, title string, advanced bool) *Dock {
	d := &Dock{
		ID:       id,
		Title:    title,
		Advanced: advanced,
		enabled:  true,
	}
	d.toggle = &Toggle{dock: d}
	return d
}

// IsVisible reports whether the dock is currently shown.
func (d *Dock) IsVisible() bool { return d.visible }

// IsEnabled reports whether the dock accepts input.
func (d *Dock) IsEnabled() bool { return d.enabled }

// Toggle returns the control bound to this dock.
func (d *Dock) Toggle() *Toggle { return d.toggle }

// Dock returns the dock this toggle controls.
func (t *Toggle) Dock() *Dock { return t.dock }

// IsChecked mirrors the visibility of the dock.
func (t *Toggle) IsChecked() bool { return t.checked }

// IsHidden reports whether the toggle is withheld from the user, which is
// the case for advanced docks while advanced controls are switched off.
func (t *Toggle) IsHidden() bool { return t.hidden }

// suppressed reports whether prefs forbid showing d at all.
func suppressed(d *Dock, prefs Preferences) bool {
	return d.Advanced && !prefs.ShowAdvancedControls
}
