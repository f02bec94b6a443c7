package components

import (
	"testing"

	"launchapp/internal/lifecycle"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHeader_Render(t *testing.T) {
	h := NewHeader("Launch App 2.0 - alpha").
		WithToggles([]ToggleItem{
			{Key: "1", Label: "Application", Checked: true, Enabled: true},
			{Key: "5", Label: "Console", Enabled: true},
		}, false).
		WithWidth(100)

	out := h.Render()
	assert.Contains(t, out, "Launch App 2.0 - alpha")
	assert.Contains(t, out, "1 Application")
	assert.Contains(t, out, "5 Console")
	assert.Equal(t, 100, lipgloss.Width(out))
}

func TestHeader_SmallIcons(t *testing.T) {
	h := NewHeader("Launch App").WithToggles([]ToggleItem{{Key: "1", Label: "Application", Enabled: true}}, true)
	assert.NotContains(t, h.RenderToggles(), "Application")
}

func TestStatusBar_MessageReplacesLeftText(t *testing.T) {
	bar := NewStatusBar(60).WithLeftText("ready").WithRightText("h help")
	assert.Contains(t, bar.Render(), "ready")

	bar.WithMessage("Launching maya", MessageInfo)
	out := bar.Render()
	assert.Contains(t, out, "Launching maya")
	assert.NotContains(t, out, "ready")
	assert.Contains(t, out, "h help")
}

func TestStateIndicator_Render(t *testing.T) {
	for _, s := range lifecycle.Known() {
		assert.Contains(t, NewStateIndicator(s).Render(), s.String())
	}
	assert.Contains(t, NewStateIndicator(lifecycle.State("banana")).Render(), "banana")
}

func TestLayout_Stack(t *testing.T) {
	l := NewLayout(80, 20)
	assert.Equal(t, []int{6, 6, 8}, l.Stack(3))
	assert.Nil(t, l.Stack(0))
}

func TestLayout_SplitVertical(t *testing.T) {
	left, right := NewLayout(100, 20).SplitVertical(0.4)
	assert.Equal(t, 40, left)
	assert.Equal(t, 60, right)
}

func TestTabStrip_Render(t *testing.T) {
	out := NewTabStrip([]string{"Application", "Console"}, 0).Render()
	assert.Contains(t, out, "Application")
	assert.Contains(t, out, "Console")
}
