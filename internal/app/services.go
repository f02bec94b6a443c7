package app

import (
	"fmt"

	"launchapp/internal/launcher"
	"launchapp/internal/prefs"
)

// Services holds the launcher and the preference store shared by both modes
type Services struct {
	Launcher *launcher.Controller
	Prefs    *prefs.Store
}

// InitializeServices opens the preferences and creates the launcher
func InitializeServices(cfg *Config) (*Services, error) {
	if cfg.LaunchConfig == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}

	path := cfg.LaunchConfig.GlobalSettings.PreferencesFile
	if path == "" {
		var err error
		if path, err = prefs.DefaultPath(); err != nil {
			return nil, fmt.Errorf("failed to locate preferences: %w", err)
		}
	}
	store, err := prefs.Open(path)
	if err != nil {
		return nil, err
	}

	if cfg.Project != "" {
		if _, ok := cfg.LaunchConfig.Project(cfg.Project); !ok {
			return nil, fmt.Errorf("%w: %q", launcher.ErrUnknownProject, cfg.Project)
		}
		// Only the window remembers the project for the next start.
		if !cfg.NoTUI {
			if err := store.Set(prefs.KeyStartupProject, cfg.Project); err != nil {
				return nil, err
			}
		}
	}

	return &Services{
		Launcher: launcher.New(*cfg.LaunchConfig),
		Prefs:    store,
	}, nil
}
