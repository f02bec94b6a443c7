package components

import (
	"launchapp/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Layout helps organize the window into sections
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a new layout manager
func NewLayout(width, height int) *Layout {
	return &Layout{
		Width:  width,
		Height: height,
	}
}

// SplitVertical splits the area into a left and a right column by
// percentage. Both columns keep at least MinPanelWidth.
func (l *Layout) SplitVertical(leftPercent float64) (leftWidth, rightWidth int) {
	if leftPercent <= 0 || leftPercent >= 1 {
		leftPercent = 0.5
	}

	leftWidth = int(float64(l.Width) * leftPercent)
	rightWidth = l.Width - leftWidth

	if leftWidth < design.MinPanelWidth {
		leftWidth = design.MinPanelWidth
		rightWidth = l.Width - leftWidth
	}
	if rightWidth < design.MinPanelWidth {
		rightWidth = design.MinPanelWidth
		leftWidth = max(l.Width-rightWidth, design.MinPanelWidth)
	}
	return leftWidth, rightWidth
}

// Stack divides the height between n panels. The remainder goes to the
// last panel.
func (l *Layout) Stack(n int) []int {
	if n <= 0 {
		return nil
	}
	heights := make([]int, n)
	each := l.Height / n
	for i := range heights {
		heights[i] = each
	}
	heights[n-1] += l.Height - each*n
	return heights
}

// CalculateContentArea returns the available content area after accounting for header and status bar
func (l *Layout) CalculateContentArea(headerHeight, statusBarHeight int) int {
	return max(l.Height-headerHeight-statusBarHeight, 0)
}

// JoinHorizontal joins components horizontally
func JoinHorizontal(components ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, components...)
}

// JoinVertical joins components vertically
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

// CenterContent centers content within the given dimensions
func CenterContent(width, height int, content string) string {
	return design.CenterVertical(height, design.CenterHorizontal(width, content))
}
