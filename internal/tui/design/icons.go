package design

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconCheck     = "✔" // U+2714
	IconCross     = "✘" // U+2718
	IconWarning   = "⚠" // U+26A0 without VS16
	IconHourglass = "⏳" // U+23F3
	IconPlay      = "▶" // U+25B6 without VS16
	IconGear      = "⚙" // U+2699 without VS16
	IconPackage   = "📦" // U+1F4E6
	IconHome      = "⌂" // U+2302
	IconQuestion  = "?"
	IconDot       = "•"
	IconPointer   = "›"
)

// SafeIcon wraps an icon with proper spacing to prevent rendering issues.
// Wide icons get two trailing spaces so at least one stays visible.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly
func IconText(icon string, text string) string {
	if icon == "" {
		return text
	}
	return SafeIcon(icon) + text
}
