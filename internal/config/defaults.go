package config

// DefaultWindowTitle is used when no title is configured.
const DefaultWindowTitle = "Launch App 2.0"

// GetDefaultConfig returns the minimal default configuration: no projects and
// packages looked up in ~/packages.
func GetDefaultConfig() LaunchConfig {
	return LaunchConfig{
		GlobalSettings: GlobalSettings{
			WindowTitle: DefaultWindowTitle,
			LogLevel:    "info",
		},
		PackagePaths: []string{"${HOME}/packages"},
		Projects:     []ProjectDefinition{},
	}
}
