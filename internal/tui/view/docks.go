package view

import (
	"fmt"
	"slices"
	"strings"

	"launchapp/internal/launcher"
	"launchapp/internal/prefs"
	"launchapp/internal/tui/components"
	"launchapp/internal/tui/design"
	"launchapp/internal/tui/dockarea"
	"launchapp/internal/tui/model"
	"launchapp/internal/tui/utils"
	"launchapp/internal/window"
	"launchapp/pkg/logging"
)

// panelChrome is the border plus the title line of a panel.
const panelChrome = 3

var dockIcons = map[string]string{
	model.DockApp:         design.IconPlay,
	model.DockPackages:    design.IconPackage,
	model.DockConsole:     ">",
	model.DockPreferences: design.IconGear,
}

func renderDockArea(m *model.Model, f Frame) string {
	panes := m.Area.Panes()
	active := m.ActiveDock()
	rendered := make([]string, 0, len(panes))
	for i, pane := range panes {
		rendered = append(rendered, renderPane(m, pane, active, f.DocksWidth, f.PaneHeights[i]))
	}
	return components.JoinVertical(rendered...)
}

func renderPane(m *model.Model, pane dockarea.Pane, active *window.Dock, width, height int) string {
	d := pane.Current
	inner := max(height-panelChrome, 1)

	p := components.NewPanel(d.Title).
		WithIcon(dockIcons[d.ID]).
		WithContent(DockContent(m, d, width-4, inner)).
		WithDimensions(width, height).
		SetFocused(d == active).
		SetFloating(pane.Floating).
		SetDisabled(!d.IsEnabled())

	if len(pane.Tabs) > 1 {
		titles := make([]string, len(pane.Tabs))
		for i, t := range pane.Tabs {
			titles[i] = t.Title
		}
		p.WithTabs(components.NewTabStrip(titles, slices.Index(pane.Tabs, d)).Render())
	}
	return p.Render()
}

// DockContent renders the body of a dock for a panel of the given inner
// size.
func DockContent(m *model.Model, d *window.Dock, width, height int) string {
	switch d.ID {
	case model.DockApp:
		return renderAppDock(m)
	case model.DockPackages:
		return renderPackagesDock(m, height)
	case model.DockContext:
		return renderContextDock(m)
	case model.DockEnvironment:
		return renderEnvironmentDock(m)
	case model.DockConsole:
		return renderConsoleDock(m, width, height)
	case model.DockCommands:
		return renderCommandsDock(m)
	case model.DockPreferences:
		return renderPreferencesDock(m, height)
	}
	return ""
}

// visibleRange returns the slice bounds of a list of n rows that keeps
// cursor on screen within height rows.
func visibleRange(n, cursor, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := max(cursor-height+1, 0)
	return start, min(start+height, n)
}

func renderAppDock(m *model.Model) string {
	c := m.Machine.Controls()
	name := m.Launcher.CurrentApp()
	if name == "" {
		return design.TextTertiaryStyle.Render("No application selected")
	}

	var b strings.Builder
	for _, app := range m.Launcher.Apps() {
		if app.Name != name {
			continue
		}
		fmt.Fprintf(&b, "%s\n", design.TitleStyle.Render(design.IconText(app.Icon, app.DisplayName())))
		fmt.Fprintf(&b, "%s %s\n", design.SubtitleStyle.Render("Command"), strings.Join(app.Command, " "))
		if len(app.Requires) > 0 {
			fmt.Fprintf(&b, "%s %s\n", design.SubtitleStyle.Render("Requires"), strings.Join(app.Requires, ", "))
		}
	}
	enabled := c.Launch.Enabled && m.Dock(model.DockApp).IsEnabled()
	b.WriteString("\n" + components.Button(c.Launch.Text, enabled))
	return b.String()
}

// PackagesSummary is the status line of the packages dock.
func PackagesSummary(pkgs []launcher.Package) string {
	overridden, disabled := 0, 0
	for _, p := range pkgs {
		if p.Override != "" {
			overridden++
		}
		if p.Disabled {
			disabled++
		}
	}
	return fmt.Sprintf("%d Packages, %d Overridden, %d Disabled", len(pkgs), overridden, disabled)
}

func renderPackagesDock(m *model.Model, height int) string {
	pkgs := m.Launcher.Packages()
	lines := []string{design.SubtitleStyle.Render(PackagesSummary(pkgs))}

	start, end := visibleRange(len(pkgs), m.PackageCursor, height-1)
	for i := start; i < end; i++ {
		p := pkgs[i]
		line := utils.PadRight(p.Name, 16) + " " + p.Version
		switch {
		case p.Disabled:
			line = design.TextTertiaryStyle.Render(line + " (disabled)")
		case !p.Found:
			line = design.TextErrorStyle.Render(line + " (not found)")
		case p.Override != "":
			line = design.TextWarningStyle.Render(line + " (override)")
		}
		line = packageIcon(p) + " " + line
		if i == m.PackageCursor && m.ActiveDock() == m.Dock(model.DockPackages) {
			line = design.IconPointer + " " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func packageIcon(p launcher.Package) string {
	switch {
	case p.Disabled:
		return design.IconInfoStyle.Render(design.IconDot)
	case !p.Found:
		return design.IconErrorStyle.Render(design.IconCross)
	case p.Override != "":
		return design.IconWarningStyle.Render(design.IconWarning)
	default:
		return design.IconSuccessStyle.Render(design.IconCheck)
	}
}

func renderContextDock(m *model.Model) string {
	pkgs := m.Launcher.Context()
	if len(pkgs) == 0 {
		return design.TextTertiaryStyle.Render("Nothing resolved")
	}
	lines := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		lines = append(lines, fmt.Sprintf("%s-%s %s", p.Name, p.Version, design.TextTertiaryStyle.Render(p.Root)))
	}
	return strings.Join(lines, "\n")
}

func renderEnvironmentDock(m *model.Model) string {
	vars := m.Launcher.Environment()
	if len(vars) == 0 {
		return design.TextTertiaryStyle.Render("Empty environment")
	}
	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		lines = append(lines, design.SubtitleStyle.Render(v.Key+"=")+v.Value)
	}
	return strings.Join(lines, "\n")
}

func renderConsoleDock(m *model.Model, width, height int) string {
	vp := m.ConsoleViewport
	if vp.Width != width || vp.Height != height {
		vp.Width = width
		vp.Height = height
		vp.SetContent(PrepareConsoleContent(m.Console, width))
		vp.GotoBottom()
	}
	return vp.View()
}

// PrepareConsoleContent colours console lines by level. Warnings and
// errors are red.
func PrepareConsoleContent(lines []model.ConsoleLine, width int) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		style := design.LogInfoStyle
		switch l.Level {
		case logging.LevelDebug:
			style = design.LogDebugStyle
		case logging.LevelWarn:
			style = design.LogWarnStyle
		case logging.LevelError:
			style = design.LogErrorStyle
		}
		if width > 0 {
			style = style.Width(width)
		}
		out = append(out, style.Render(l.Text))
	}
	return strings.Join(out, "\n")
}

func renderCommandsDock(m *model.Model) string {
	cmds := m.Launcher.Commands()
	if len(cmds) == 0 {
		return design.TextTertiaryStyle.Render("Nothing launched yet")
	}
	lines := make([]string, 0, len(cmds))
	for _, c := range cmds {
		status := string(c.Status)
		style := design.TextStyle
		switch c.Status {
		case launcher.CommandRunning:
			style = design.TextSuccessStyle
		case launcher.CommandFailed:
			style = design.TextErrorStyle
		}
		lines = append(lines, fmt.Sprintf("%s %-12s pid %-7d %s",
			design.TextTertiaryStyle.Render(utils.TruncateString(c.ID, 8)), c.App, c.PID, style.Render(status)))
	}
	return strings.Join(lines, "\n")
}

func renderPreferencesDock(m *model.Model, height int) string {
	options := prefs.Options()
	focused := m.ActiveDock() == m.Dock(model.DockPreferences)

	var lines []string
	start, end := visibleRange(len(options), m.PrefCursor, height-1)
	for i := start; i < end; i++ {
		lines = append(lines, renderOption(m, options[i], focused && i == m.PrefCursor))
	}
	if m.PrefCursor >= 0 && m.PrefCursor < len(options) {
		lines = append(lines, design.TextTertiaryStyle.Render(options[m.PrefCursor].Help))
	}
	return strings.Join(lines, "\n")
}

func renderOption(m *model.Model, o prefs.Option, selected bool) string {
	var value any
	switch {
	case o.System:
		value = m.System[o.Name]
		if paths, ok := value.([]string); ok {
			value = strings.Join(paths, ", ")
		}
	case m.Prefs != nil:
		value = m.Prefs.Get(o.Name)
	}

	var line string
	switch o.Kind {
	case prefs.KindSeparator:
		return design.TitleStyle.Render(o.Name)
	case prefs.KindBoolean:
		mark := "[ ]"
		if v, _ := value.(bool); v {
			mark = "[x]"
		}
		line = fmt.Sprintf("%s %s", mark, o.Name)
	case prefs.KindButton:
		line = fmt.Sprintf("[ %s ]", o.Name)
	default:
		line = fmt.Sprintf("%s: %v", o.Name, valueOrDash(value))
	}

	switch {
	case !o.Editable():
		line = design.ListItemDisabledStyle.Render("  " + line)
	case selected:
		line = design.ListItemSelectedStyle.Render(design.IconPointer + " " + line)
	default:
		line = design.ListItemStyle.Render("  " + line)
	}
	return line
}

func valueOrDash(v any) any {
	if v == nil || v == "" {
		return "-"
	}
	return v
}
