package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"launchapp/internal/color"
	"launchapp/internal/prefs"
	"launchapp/internal/tui/controller"
	"launchapp/internal/tui/model"
	"launchapp/pkg/logging"
)

// runCLIMode boots the launcher and prints the projects with their
// applications and the resolved state of the startup project.
func runCLIMode(ctx context.Context, config *Config, services *Services, out io.Writer) error {
	logging.Debug("CLI", "Running in no-TUI mode.")

	l := services.Launcher
	startup := config.Project
	if startup == "" {
		startup = services.Prefs.String(prefs.KeyStartupProject)
	}
	if err := l.Boot(ctx, startup); err != nil {
		logging.Error("CLI", err, "Failed to boot launcher")
		return err
	}

	current := l.CurrentProject()
	for _, name := range l.Projects() {
		if config.Project != "" && name != config.Project {
			continue
		}
		project, _ := config.LaunchConfig.Project(name)
		mark := " "
		if name == current {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %s", mark, name)
		if len(project.Versions) > 0 {
			fmt.Fprintf(out, " (%s)", strings.Join(project.Versions, ", "))
		}
		fmt.Fprintln(out)
		if len(project.Applications) == 0 {
			fmt.Fprintln(out, "    no applications")
		}
		for _, a := range project.Applications {
			fmt.Fprintf(out, "    %-16s %s\n", a.DisplayName(), strings.Join(a.Requires, " "))
		}
	}
	fmt.Fprintf(out, "state: %s\n", l.State())
	return nil
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Debug("CLI", "Starting TUI mode...")

	color.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(config.LogLevel())
	defer logging.CloseTUIChannel()

	if err := services.Prefs.Watch(); err != nil {
		logging.Warn("TUI-Lifecycle", "Preference edits made outside launchapp will not be picked up: %v", err)
	} else {
		defer services.Prefs.Close()
	}

	p, err := controller.NewProgram(model.Config{
		WindowTitle: config.LaunchConfig.GlobalSettings.WindowTitle,
		Launcher:    services.Launcher,
		Prefs:       services.Prefs,
		LogChannel:  logChan,
	})
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}
