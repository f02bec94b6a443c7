package components

import (
	"strings"

	"launchapp/internal/tui/design"
)

// TabStrip renders the titles of docks sharing a pane, highlighting the
// one in front.
type TabStrip struct {
	Titles []string
	Active int
}

// NewTabStrip creates a strip with the tab at index active in front.
func NewTabStrip(titles []string, active int) *TabStrip {
	return &TabStrip{Titles: titles, Active: active}
}

// Render returns the styled strip
func (t *TabStrip) Render() string {
	parts := make([]string, len(t.Titles))
	for i, title := range t.Titles {
		if i == t.Active {
			parts[i] = design.TabActiveStyle.Render(title)
		} else {
			parts[i] = design.TabStyle.Render(title)
		}
	}
	return strings.Join(parts, design.TextTertiaryStyle.Render("│"))
}
