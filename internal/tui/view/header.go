package view

import (
	"strconv"

	"launchapp/internal/lifecycle"
	"launchapp/internal/prefs"
	"launchapp/internal/tui/components"
	"launchapp/internal/tui/model"
)

func renderHeader(m *model.Model) string {
	var toggles []components.ToggleItem
	n := 0
	for d := range m.Docks.All() {
		n++
		t := d.Toggle()
		if t.IsHidden() {
			continue
		}
		toggles = append(toggles, components.ToggleItem{
			Key:     strconv.Itoa(n),
			Label:   d.Title,
			Checked: t.IsChecked(),
			Enabled: d.IsEnabled(),
		})
	}

	small := false
	if m.Prefs != nil {
		small = m.Prefs.Bool(prefs.KeySmallIcons)
	}

	h := components.NewHeader(m.WindowTitle()).
		WithToggles(toggles, small).
		WithWidth(m.Width)
	if v := m.Launcher.CurrentVersion(); v != "" {
		h.WithSubtitle(v)
	}

	switch m.Machine.State() {
	case lifecycle.Booting, lifecycle.Loading, lifecycle.Launching:
		h.WithSpinner(m.Spinner.View())
	}
	return h.Render()
}
