package view

import (
	"launchapp/internal/lifecycle"
	"launchapp/internal/tui/components"
	"launchapp/internal/tui/model"
)

func renderStatusBar(m *model.Model) string {
	c := m.Machine.Controls().StateIndicator
	indicator := components.NewStateIndicator(lifecycle.State(c.Text)).Render()

	return components.NewStatusBar(m.Width).
		WithLeftText(indicator).
		WithRightText(m.Help.ShortHelpView(m.Keys.ShortHelp())).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()
}
