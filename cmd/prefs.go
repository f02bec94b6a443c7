package cmd

import (
	"fmt"
	"strconv"

	"launchapp/internal/prefs"

	"github.com/spf13/cobra"
)

// prefsPath overrides the preferences file, mostly for tests.
var prefsPath string

func newPrefsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "prefs",
		Short: "Read and change launcher preferences",
		Long: `Reads and changes the preferences the launcher window stores, such as the
startup project or whether advanced controls are shown.`,
	}
	c.PersistentFlags().StringVar(&prefsPath, "file", "", "preferences file (default ~/.config/launchapp/preferences.yaml)")

	c.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every user-facing preference with its value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openPrefs()
			if err != nil {
				return err
			}
			for _, o := range prefs.Options() {
				if o.Kind == prefs.KindSeparator || o.Kind == prefs.KindButton || o.System {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", o.Name, store.Get(o.Name))
			}
			return nil
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "get KEY",
		Short: "Print one preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openPrefs()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.Get(args[0]))
			return nil
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one preference",
		Long: `Changes one preference. Boolean preferences accept true or false. A running
window picks the change up immediately.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openPrefs()
			if err != nil {
				return err
			}
			value, err := parsePrefValue(args[0], args[1])
			if err != nil {
				return err
			}
			return store.Set(args[0], value)
		},
	})
	return c
}

func openPrefs() (*prefs.Store, error) {
	path := prefsPath
	if path == "" {
		var err error
		if path, err = prefs.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return prefs.Open(path)
}

// parsePrefValue converts value to the type of the option named key.
// Unknown keys are stored as strings.
func parsePrefValue(key, value string) (any, error) {
	for _, o := range prefs.Options() {
		if o.Name != key {
			continue
		}
		if o.System {
			return nil, fmt.Errorf("%s is read-only", key)
		}
		if o.Kind == prefs.KindBoolean {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("%s expects true or false, got %q", key, value)
			}
			return b, nil
		}
	}
	return value, nil
}
