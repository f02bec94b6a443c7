package components

import (
	"launchapp/internal/lifecycle"
	"launchapp/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// StateIndicator shows the lifecycle state with an icon.
type StateIndicator struct {
	State    lifecycle.State
	Text     string
	ShowIcon bool
}

// NewStateIndicator creates an indicator for state. Text defaults to the
// state name.
func NewStateIndicator(state lifecycle.State) *StateIndicator {
	return &StateIndicator{State: state, Text: state.String(), ShowIcon: true}
}

// WithText overrides the text next to the icon.
func (s *StateIndicator) WithText(text string) *StateIndicator {
	s.Text = text
	return s
}

// TextOnly hides the icon.
func (s *StateIndicator) TextOnly() *StateIndicator {
	s.ShowIcon = false
	return s
}

// Render returns the styled indicator
func (s *StateIndicator) Render() string {
	style := design.GetStateStyle(s.State.String())
	if !s.ShowIcon {
		return style.Render(s.Text)
	}
	return style.Render(design.IconText(stateIcon(s.State), s.Text))
}

func stateIcon(state lifecycle.State) string {
	switch state {
	case lifecycle.Ready:
		return design.IconCheck
	case lifecycle.Errored, lifecycle.PkgNotFound, lifecycle.NotResolved:
		return design.IconCross
	case lifecycle.Booting, lifecycle.Loading:
		return design.IconHourglass
	case lifecycle.Launching:
		return design.IconPlay
	case lifecycle.NoApps:
		return design.IconWarning
	case lifecycle.Home:
		return design.IconHome
	default:
		return design.IconQuestion
	}
}

// Button renders a one-line push button.
func Button(label string, enabled bool) string {
	var style lipgloss.Style
	if enabled {
		style = design.ButtonStyle
	} else {
		style = design.ButtonDisabledStyle
	}
	return style.Render(label)
}
