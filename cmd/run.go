package cmd

import (
	"context"
	"fmt"

	"launchapp/internal/app"

	"github.com/spf13/cobra"
)

var (
	runProject   string
	runDebugTUI  bool
	listProjects string
)

// runCmd starts the interactive window.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the launcher window",
	Long: `Opens the interactive launcher window.

The window boots into the stored startup project, or the one given with
--project, and resolves the startup application. Docks are toggled with the
number keys; press h inside the window for every shortcut.

The dock layout is stored in the preferences on exit and restored on the
next start.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApplication(cmd, app.NewConfig(false, runDebugTUI, runProject))
	},
}

// projectsCmd prints the configured projects without opening the window.
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects and their applications",
	Long: `Boots the launcher without a window and prints every configured project
with its versions and applications. The current project is marked with '*'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApplication(cmd, app.NewConfig(true, false, listProjects))
	},
}

func runApplication(cmd *cobra.Command, cfg *app.Config) error {
	cfg.ConfigPath = configPath

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(projectsCmd)

	runCmd.Flags().StringVar(&runProject, "project", "", "Project to open, stored as the startup project")
	runCmd.Flags().BoolVar(&runDebugTUI, "debug-tui", false, "Show debug messages in the console dock")
	projectsCmd.Flags().StringVar(&listProjects, "project", "", "Only list this project")
}
