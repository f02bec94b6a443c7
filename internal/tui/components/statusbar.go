package components

import (
	"strings"

	"launchapp/internal/tui/design"
	"launchapp/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// MessageType selects the colour of a transient status message.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageError
	MessageWarning
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType MessageType
	LeftText    string
	RightText   string
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a status message
func (s *StatusBar) WithMessage(message string, msgType MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar. A message replaces the left text
// while it is set.
func (s *StatusBar) Render() string {
	style := s.getStyle()
	available := s.Width - style.GetHorizontalFrameSize()

	left := s.LeftText
	if s.Message != "" {
		left = s.Message
	}

	var content string
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(s.RightText)
	switch {
	case s.RightText == "":
		content = utils.TruncateString(left, available)
	case leftWidth+rightWidth+1 <= available:
		content = left + strings.Repeat(" ", available-leftWidth-rightWidth) + s.RightText
	default:
		content = utils.TruncateString(left, available)
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

func (s *StatusBar) getStyle() lipgloss.Style {
	if s.Message == "" {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case MessageSuccess:
		return design.StatusBarSuccessStyle
	case MessageError:
		return design.StatusBarErrorStyle
	case MessageWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarInfoStyle
	}
}
