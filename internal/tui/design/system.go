package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
// Following 4px base unit for consistent spacing
const (
	// Spacing units (based on 4px)
	SpaceNone = 0
	SpaceXS   = 1 // 4px
	SpaceSM   = 2 // 8px

	// Component dimensions
	MinPanelHeight = 5
	MinPanelWidth  = 20

	// Width of the central page next to the dock area
	PageWidthPercent = 0.4
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	// Brand Colors
	ColorPrimary lipgloss.TerminalColor = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}
	ColorSecondary lipgloss.TerminalColor = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}

	// State Colors
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	// Neutral Colors
	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1A1A1A",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
	ColorBorderFocus = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	// Text Colors
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextTertiary = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}

	ColorBackgroundOverlay = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E1E",
	}
)

// Base Styles - Foundation for all components
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	TextTertiaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextTertiary)

	TextSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	TextWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	SurfaceStyle = lipgloss.NewStyle().
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(SpaceNone, SpaceXS)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)
)

// Component Styles - Reusable component definitions
var (
	// Panel Styles
	PanelStyle = SurfaceStyle.
			Inherit(BorderStyle).
			Margin(0)

	PanelFocusedStyle = PanelStyle.
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorBorderFocus)

	PanelFloatingStyle = PanelStyle.
				Border(lipgloss.DoubleBorder()).
				BorderForeground(ColorSecondary)

	// Header Styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceSM)

	// Status Bar Styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(ColorBackground)

	// List Item Styles
	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(SpaceXS)

	ListItemSelectedStyle = ListItemStyle.
				Foreground(ColorPrimary).
				Bold(true)

	ListItemDisabledStyle = ListItemStyle.
				Foreground(ColorTextTertiary)

	// Button Styles
	ButtonStyle = lipgloss.NewStyle().
			Padding(0, SpaceSM).
			Background(ColorPrimary).
			Foreground(ColorBackground).
			Bold(true)

	ButtonDisabledStyle = ButtonStyle.
				Background(ColorTextTertiary).
				Foreground(ColorSurfaceAlt)

	// Tab strip styles
	TabStyle = lipgloss.NewStyle().
			Padding(0, SpaceXS).
			Foreground(ColorTextSecondary)

	TabActiveStyle = TabStyle.
			Foreground(ColorPrimary).
			Bold(true).
			Underline(true)

	// Dock toggle styles
	ToggleStyle = lipgloss.NewStyle().
			Padding(0, SpaceXS).
			Foreground(ColorTextTertiary)

	ToggleCheckedStyle = ToggleStyle.
				Foreground(ColorPrimary).
				Bold(true)

	ToggleDisabledStyle = ToggleStyle.
				Foreground(ColorBorder).
				Strikethrough(true)

	// Title Styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	// Overlay styles
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorBackgroundOverlay).
					Foreground(ColorText).
					Padding(1, 2)
)

// Icon Styles - Consistent icon coloring
var (
	IconDefaultStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	IconSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	IconErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	IconWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	IconInfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	IconPrimaryStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)
)

// Console line styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorError)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextTertiary).Italic(true)
)

// QuitKeyStyle highlights the quit binding in the help overlay.
var QuitKeyStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

// GetStateStyle colours a lifecycle state name.
func GetStateStyle(state string) lipgloss.Style {
	switch state {
	case "ready":
		return TextSuccessStyle
	case "errored", "pkgnotfound", "notresolved":
		return TextErrorStyle
	case "booting", "loading", "launching":
		return TextWarningStyle
	case "noapps", "home":
		return TextSecondaryStyle
	default:
		return TextStyle
	}
}

// CenterHorizontal pads content so it sits in the middle of width.
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	padding := (width - contentWidth) / 2
	return lipgloss.NewStyle().
		PaddingLeft(padding).
		Width(width).
		Render(content)
}

// CenterVertical pads content so it sits in the middle of height.
func CenterVertical(height int, content string) string {
	contentHeight := lipgloss.Height(content)
	if contentHeight >= height {
		return content
	}
	padding := (height - contentHeight) / 2
	return lipgloss.NewStyle().
		PaddingTop(padding).
		Height(height).
		Render(content)
}

// Initialize sets up the design system
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// ApplyAccent recolours the styles that carry the brand colours. primary
// marks selection and focus; secondary marks floating panels and subtitles.
func ApplyAccent(primary, secondary lipgloss.TerminalColor) {
	ColorPrimary = primary
	ColorSecondary = secondary

	PanelFocusedStyle = PanelFocusedStyle.BorderForeground(primary)
	PanelFloatingStyle = PanelFloatingStyle.BorderForeground(secondary)
	ListItemSelectedStyle = ListItemSelectedStyle.Foreground(primary)
	ButtonStyle = ButtonStyle.Background(primary)
	TabActiveStyle = TabActiveStyle.Foreground(primary)
	ToggleCheckedStyle = ToggleCheckedStyle.Foreground(primary)
	IconPrimaryStyle = IconPrimaryStyle.Foreground(primary)
	SubtitleStyle = SubtitleStyle.Foreground(secondary)
}
