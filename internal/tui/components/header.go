package components

import (
	"strings"

	"launchapp/internal/tui/design"
	"launchapp/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// ToggleItem is one dock toggle in the header.
type ToggleItem struct {
	Key     string
	Label   string
	Checked bool
	Enabled bool
}

// Header shows the window title on the left and the dock toggles on the
// right.
type Header struct {
	Title       string
	Subtitle    string
	SpinnerView string
	Toggles     []ToggleItem
	SmallIcons  bool
	Width       int
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: 80,
	}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithSpinner shows a spinner before the title
func (h *Header) WithSpinner(spinnerView string) *Header {
	h.SpinnerView = spinnerView
	return h
}

// WithToggles sets the toggles shown on the right.
func (h *Header) WithToggles(toggles []ToggleItem, small bool) *Header {
	h.Toggles = toggles
	h.SmallIcons = small
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// RenderToggles draws the toggle strip on its own.
func (h *Header) RenderToggles() string {
	parts := make([]string, 0, len(h.Toggles))
	for _, t := range h.Toggles {
		text := t.Key
		if !h.SmallIcons {
			text = t.Key + " " + t.Label
		}
		style := design.ToggleStyle
		switch {
		case !t.Enabled:
			style = design.ToggleDisabledStyle
		case t.Checked:
			style = design.ToggleCheckedStyle
		}
		parts = append(parts, style.Render(text))
	}
	return strings.Join(parts, "")
}

// Render returns the styled header
func (h *Header) Render() string {
	var leftParts []string
	if h.SpinnerView != "" {
		leftParts = append(leftParts, h.SpinnerView)
	}
	leftParts = append(leftParts, h.Title)
	if h.Subtitle != "" {
		leftParts = append(leftParts, design.TextSecondaryStyle.Render(h.Subtitle))
	}
	left := strings.Join(leftParts, " ")

	available := h.Width - design.HeaderStyle.GetHorizontalFrameSize()
	right := h.RenderToggles()

	content := left
	if right != "" {
		leftWidth := lipgloss.Width(left)
		rightWidth := lipgloss.Width(right)
		if leftWidth+rightWidth+1 <= available {
			content = left + strings.Repeat(" ", available-leftWidth-rightWidth) + right
		} else {
			// Toggles win over the title on narrow terminals.
			content = utils.TruncateString(right, available)
		}
	}

	return design.HeaderStyle.
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}
