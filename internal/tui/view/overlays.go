package view

import (
	"strings"

	"launchapp/internal/tui/design"
	"launchapp/internal/tui/model"
)

func renderHelpOverlay(m *model.Model) string {
	h := m.Help
	h.ShowAll = true
	content := design.HelpTitleStyle.Render("Keyboard shortcuts") + "\n" +
		h.FullHelpView(m.Keys.FullHelp()) + "\n\n" +
		design.TextTertiaryStyle.Render("esc or h to close")
	return design.CenteredOverlayContainerStyle.Render(content)
}

func renderProjectMenu(m *model.Model) string {
	projects := m.Launcher.Projects()
	current := m.Launcher.CurrentProject()

	lines := []string{design.HelpTitleStyle.Render("Change project")}
	if len(projects) == 0 {
		lines = append(lines, design.TextTertiaryStyle.Render("No projects configured"))
	}
	for i, p := range projects {
		mark := "  "
		if p == current {
			mark = design.IconDot + " "
		}
		line := mark + p
		if i == m.ProjectCursor {
			line = design.ListItemSelectedStyle.Render(design.IconPointer + " " + line)
		} else {
			line = design.ListItemStyle.Render("  " + line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", design.TextTertiaryStyle.Render("enter select • esc cancel"))
	return design.CenteredOverlayContainerStyle.Render(strings.Join(lines, "\n"))
}
