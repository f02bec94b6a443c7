package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// configPath points at a single configuration file instead of the layered
// lookup.
var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "launchapp",
	Short: "Launch project applications with their packages resolved",
	Long: `launchapp lists the applications of your projects, resolves the packages
each one requires and starts it with the matching environment.

Run 'launchapp run' for the interactive window, or 'launchapp projects' to
print what is configured.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unknown projects, missing packages)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "launchapp version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default: layered ~/.config/launchapp and ./.launchapp)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newPrefsCmd())
}
