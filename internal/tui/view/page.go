package view

import (
	"fmt"
	"strings"

	"launchapp/internal/tui/components"
	"launchapp/internal/tui/design"
	"launchapp/internal/tui/model"
	"launchapp/internal/window"
)

func renderPage(m *model.Model, width, height int) string {
	var (
		title   string
		content string
		kind    = components.PanelTypeDefault
	)

	switch m.Machine.Page() {
	case window.PageBooting:
		title = "Booting"
		content = m.Spinner.View() + " Booting..."
	case window.PageErrored:
		title = "Error"
		kind = components.PanelTypeError
		content = renderErroredPage(m)
	case window.PageNoApps:
		title = "No applications"
		kind = components.PanelTypeWarning
		content = renderNoAppsPage(m)
	default:
		title = "Applications"
		content = renderHomePage(m, height-panelChrome)
	}

	return components.NewPanel(title).
		WithIcon(design.IconHome).
		WithType(kind).
		WithContent(content).
		WithDimensions(width, height).
		SetFocused(m.PageFocused).
		Render()
}

func renderHomePage(m *model.Model, height int) string {
	c := m.Machine.Controls()
	var b strings.Builder
	rows := 2

	project := m.Launcher.CurrentProject()
	if project == "" {
		project = "(none)"
	}
	fmt.Fprintf(&b, "%s %s\n",
		design.SubtitleStyle.Render("Project"),
		components.Button(project, c.ProjectButton.Enabled))

	if c.ProjectVersions.Visible {
		version := m.Launcher.CurrentVersion()
		if version == "" {
			version = "-"
		}
		style := design.TextStyle
		if !c.ProjectVersions.Enabled {
			style = design.TextTertiaryStyle
		}
		fmt.Fprintf(&b, "%s %s\n", design.SubtitleStyle.Render("Version"), style.Render(version))
		rows++
	}
	b.WriteString("\n")

	apps := m.Launcher.Apps()
	if len(apps) == 0 {
		b.WriteString(design.TextTertiaryStyle.Render("No applications"))
		return b.String()
	}
	current := m.Launcher.CurrentApp()
	start, end := visibleRange(len(apps), m.AppCursor, height-rows)
	for i := start; i < end; i++ {
		app := apps[i]
		line := design.IconText(app.Icon, app.DisplayName())
		if app.Name == current {
			line += design.TextTertiaryStyle.Render(" " + design.IconDot)
		}
		switch {
		case !c.Apps.Enabled:
			line = design.ListItemDisabledStyle.Render("  " + line)
		case i == m.AppCursor:
			line = design.ListItemSelectedStyle.Render(design.IconPointer + " " + line)
		default:
			line = design.ListItemStyle.Render("  " + line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderErroredPage(m *model.Model) string {
	var lines []string
	lines = append(lines, design.TextErrorStyle.Render("Something went wrong"))
	if msg := m.Launcher.CurrentError(); msg != "" {
		lines = append(lines, "", msg)
	}
	lines = append(lines, "",
		components.Button("c Continue", true)+" "+components.Button("R Reset", true))
	return strings.Join(lines, "\n")
}

func renderNoAppsPage(m *model.Model) string {
	c := m.Machine.Controls()
	return strings.Join([]string{
		c.NoAppsMessage.Text,
		"",
		components.Button("p Change project", c.ProjectButton.Enabled),
	}, "\n")
}
