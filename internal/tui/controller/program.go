package controller

import (
	"launchapp/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the launcher window.
func NewProgram(cfg model.Config) (*tea.Program, error) {
	m, err := model.New(cfg)
	if err != nil {
		return nil, err
	}
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen()), nil
}
