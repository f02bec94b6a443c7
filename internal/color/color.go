package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"launchapp/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

var hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// named covers the colour names users put into their preferences.
var named = map[string]string{
	"black":          "#000000",
	"white":          "#ffffff",
	"gray":           "#808080",
	"grey":           "#808080",
	"darkgray":       "#a9a9a9",
	"lightgray":      "#d3d3d3",
	"silver":         "#c0c0c0",
	"red":            "#ff0000",
	"darkred":        "#8b0000",
	"crimson":        "#dc143c",
	"orange":         "#ffa500",
	"darkorange":     "#ff8c00",
	"gold":           "#ffd700",
	"yellow":         "#ffff00",
	"green":          "#008000",
	"lime":           "#00ff00",
	"seagreen":       "#2e8b57",
	"olive":          "#808000",
	"teal":           "#008080",
	"cyan":           "#00ffff",
	"turquoise":      "#40e0d0",
	"blue":           "#0000ff",
	"navy":           "#000080",
	"royalblue":      "#4169e1",
	"steelblue":      "#4682b4",
	"dodgerblue":     "#1e90ff",
	"deepskyblue":    "#00bfff",
	"skyblue":        "#87ceeb",
	"lightsteelblue": "#b0c4de",
	"slateblue":      "#6a5acd",
	"purple":         "#800080",
	"mediumpurple":   "#9370db",
	"violet":         "#ee82ee",
	"magenta":        "#ff00ff",
	"hotpink":        "#ff69b4",
	"pink":           "#ffc0cb",
	"brown":          "#a52a2a",
	"chocolate":      "#d2691e",
	"tomato":         "#ff6347",
	"coral":          "#ff7f50",
	"salmon":         "#fa8072",
}

// Initialize tells lipgloss which background to adapt colours to.
func Initialize(isDarkMode bool) {
	design.Initialize(isDarkMode)
}

// Resolve returns the terminal colour for a preference value.
func Resolve(value string) (lipgloss.Color, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "", fmt.Errorf("empty colour")
	}
	if hex, ok := named[v]; ok {
		return lipgloss.Color(hex), nil
	}
	if hexPattern.MatchString(v) {
		if len(v) == 4 {
			v = "#" + strings.Repeat(v[1:2], 2) + strings.Repeat(v[2:3], 2) + strings.Repeat(v[3:4], 2)
		}
		return lipgloss.Color(v), nil
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 255 {
		return lipgloss.Color(v), nil
	}
	return "", fmt.Errorf("unknown colour %q", value)
}

// ApplyTheme recolours the design accents. The styles are left alone when
// either value cannot be resolved.
func ApplyTheme(primary, secondary string) error {
	p, err := Resolve(primary)
	if err != nil {
		return fmt.Errorf("primary colour: %w", err)
	}
	s, err := Resolve(secondary)
	if err != nil {
		return fmt.Errorf("secondary colour: %w", err)
	}
	design.ApplyAccent(p, s)
	return nil
}
