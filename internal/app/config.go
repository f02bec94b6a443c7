package app

import (
	"launchapp/internal/config"
	"launchapp/pkg/logging"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// Project selected on the command line. Overrides the stored startup
	// project.
	Project string

	// Optional: a single configuration file instead of the layered lookup
	ConfigPath string

	// Launcher configuration, filled in by NewApplication
	LaunchConfig *config.LaunchConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, project string) *Config {
	return &Config{
		NoTUI:   noTUI,
		Debug:   debug,
		Project: project,
	}
}

// LogLevel returns the level for the application's logging.
func (c *Config) LogLevel() logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	if c.LaunchConfig != nil {
		if level, err := logging.ParseLevel(c.LaunchConfig.GlobalSettings.LogLevel); err == nil {
			return level
		}
	}
	return logging.LevelInfo
}
