package view

import (
	"launchapp/internal/tui/components"
	"launchapp/internal/tui/design"
	"launchapp/internal/tui/model"
)

// Frame holds the sizes of the window regions for the current terminal.
type Frame struct {
	PageWidth   int
	DocksWidth  int
	BodyHeight  int
	PaneHeights []int
}

const (
	headerHeight    = 1
	statusBarHeight = 1
)

// ComputeFrame splits the terminal between the page and the dock panes.
// Without visible panes the page takes the full width.
func ComputeFrame(m *model.Model) Frame {
	layout := components.NewLayout(m.Width, m.Height)
	f := Frame{BodyHeight: layout.CalculateContentArea(headerHeight, statusBarHeight)}

	panes := m.Area.Panes()
	if len(panes) == 0 {
		f.PageWidth = m.Width
		return f
	}
	f.PageWidth, f.DocksWidth = components.NewLayout(m.Width, f.BodyHeight).SplitVertical(design.PageWidthPercent)
	f.PaneHeights = components.NewLayout(f.DocksWidth, f.BodyHeight).Stack(len(panes))
	return f
}

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch {
	case m.Mode == model.ModeQuitting:
		return design.TextSecondaryStyle.Render(m.QuittingMessage)
	case m.Width == 0 || m.Height == 0:
		return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
	}

	frame := ComputeFrame(m)
	header := renderHeader(m)
	status := renderStatusBar(m)

	page := renderPage(m, frame.PageWidth, frame.BodyHeight)
	body := page
	if frame.DocksWidth > 0 {
		body = components.JoinHorizontal(page, renderDockArea(m, frame))
	}

	main := components.JoinVertical(header, body, status)

	switch m.Mode {
	case model.ModeHelpOverlay:
		return overlay(m, renderHelpOverlay(m))
	case model.ModeProjectMenu:
		return overlay(m, renderProjectMenu(m))
	}
	return main
}

func overlay(m *model.Model, content string) string {
	return components.CenterContent(m.Width, m.Height, content)
}

// ConsoleSize returns the inner size of the console pane, or false when
// the console is not the front dock of any pane.
func ConsoleSize(m *model.Model) (int, int, bool) {
	if m.Width == 0 || m.Height == 0 {
		return 0, 0, false
	}
	f := ComputeFrame(m)
	for i, pane := range m.Area.Panes() {
		if pane.Current.ID == model.DockConsole {
			return f.DocksWidth - 4, max(f.PaneHeights[i]-panelChrome, 1), true
		}
	}
	return 0, 0, false
}
