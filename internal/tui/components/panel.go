package components

import (
	"strings"

	"launchapp/internal/tui/design"
	"launchapp/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeSuccess
	PanelTypeError
	PanelTypeWarning
	PanelTypeInfo
)

// Panel is a bordered box holding one dock. When Tabs is set the tab strip
// replaces the title line. Content taller than the panel keeps its last
// lines.
type Panel struct {
	Title    string
	Tabs     string
	Content  string
	Width    int
	Height   int
	Focused  bool
	Floating bool
	Disabled bool
	Type     PanelType
	Icon     string
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title:  title,
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
		Type:   PanelTypeDefault,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithTabs shows a rendered tab strip instead of the title.
func (p *Panel) WithTabs(tabs string) *Panel {
	p.Tabs = tabs
	return p
}

// WithDimensions sets the outer panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// WithIcon sets an icon shown before the title
func (p *Panel) WithIcon(icon string) *Panel {
	p.Icon = icon
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// SetFloating draws the panel as undocked.
func (p *Panel) SetFloating(floating bool) *Panel {
	p.Floating = floating
	return p
}

// SetDisabled greys the content out.
func (p *Panel) SetDisabled(disabled bool) *Panel {
	p.Disabled = disabled
	return p
}

// Render returns the styled panel
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := p.getStyle()

	// Width and Height on a lipgloss style exclude the border.
	innerWidth := max(p.Width-style.GetHorizontalFrameSize(), 1)
	innerHeight := max(p.Height-style.GetVerticalFrameSize(), 1)

	var lines []string
	if head := p.renderTitle(innerWidth); head != "" {
		lines = append(lines, head)
	}

	if p.Content != "" {
		contentLines := strings.Split(p.Content, "\n")
		available := innerHeight - len(lines)
		if available > 0 && len(contentLines) > available {
			contentLines = contentLines[len(contentLines)-available:]
		}
		for _, line := range contentLines {
			if lipgloss.Width(line) > innerWidth {
				line = utils.TruncateWithEllipsis(line, innerWidth)
			}
			if p.Disabled {
				line = design.TextTertiaryStyle.Render(line)
			}
			lines = append(lines, line)
		}
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Height(p.Height - style.GetVerticalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

func (p *Panel) getStyle() lipgloss.Style {
	base := design.PanelStyle
	switch {
	case p.Focused:
		base = design.PanelFocusedStyle
	case p.Floating:
		base = design.PanelFloatingStyle
	}

	switch p.Type {
	case PanelTypeSuccess:
		return base.BorderForeground(design.ColorSuccess)
	case PanelTypeError:
		return base.BorderForeground(design.ColorError)
	case PanelTypeWarning:
		return base.BorderForeground(design.ColorWarning)
	case PanelTypeInfo:
		return base.BorderForeground(design.ColorInfo)
	default:
		return base
	}
}

// renderTitle renders the tab strip, or the title with its icon.
func (p *Panel) renderTitle(width int) string {
	if p.Tabs != "" {
		return utils.TruncateString(p.Tabs, width)
	}
	if p.Title == "" {
		return ""
	}

	titleStyle := design.TitleStyle
	if p.Focused {
		titleStyle = titleStyle.Foreground(design.ColorPrimary)
	}
	title := titleStyle.Render(p.Title)
	if p.Icon != "" {
		title = design.IconDefaultStyle.Render(design.SafeIcon(p.Icon)) + title
	}
	if p.Floating {
		title += design.TextTertiaryStyle.Render(" (floating)")
	}
	return utils.TruncateWithEllipsis(title, width)
}
